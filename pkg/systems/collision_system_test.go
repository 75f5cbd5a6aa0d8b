package systems

import (
	"testing"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/ecs"
	"github.com/decker502/lanequiz/pkg/types"
)

// newTestPlayer 创建测试用玩家实体
func newTestPlayer(em *ecs.EntityManager, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	return id
}

// newTestAnswer 创建测试用答案实体
func newTestAnswer(em *ecs.EntityManager, lane types.Lane, correct bool, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.AnswerComponent{Lane: lane, IsCorrect: correct})
	return id
}

func TestCollisionResolveHitsOwnLane(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(em, 100, 300, 80, 50)
	newTestAnswer(em, types.LaneTop, false, 100, 150, 180, 130)
	newTestAnswer(em, types.LaneMiddle, true, 100, 300, 180, 130)
	newTestAnswer(em, types.LaneBottom, false, 100, 450, 180, 130)

	cs := NewCollisionSystem(em)
	hit, ok := cs.Resolve(player)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Lane != types.LaneMiddle || !hit.IsCorrect {
		t.Errorf("hit = %+v, want middle/correct", hit)
	}
}

func TestCollisionResolveNoOverlap(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(em, 100, 300, 80, 50)
	// 答案组还在屏幕右侧
	newTestAnswer(em, types.LaneTop, false, 900, 150, 180, 130)
	newTestAnswer(em, types.LaneMiddle, true, 900, 300, 180, 130)
	newTestAnswer(em, types.LaneBottom, false, 900, 450, 180, 130)

	if hit, ok := NewCollisionSystem(em).Resolve(player); ok {
		t.Errorf("unexpected hit: %+v", hit)
	}
}

// TestCollisionPriority 测试重叠时上车道优先，绝不会报告中车道
func TestCollisionPriority(t *testing.T) {
	em := ecs.NewEntityManager()
	// 先创建下、中车道，确保优先级不依赖实体创建顺序
	newTestAnswer(em, types.LaneBottom, false, 100, 400, 180, 200)
	newTestAnswer(em, types.LaneMiddle, true, 100, 300, 180, 200)
	newTestAnswer(em, types.LaneTop, false, 100, 220, 180, 200)
	player := newTestPlayer(em, 100, 290, 10, 10)

	hit, ok := NewCollisionSystem(em).Resolve(player)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Lane != types.LaneTop {
		t.Errorf("hit lane = %v, want top", hit.Lane)
	}
	if hit.IsCorrect {
		t.Error("should report top lane correctness (false), not middle's")
	}
}

func TestCollisionMissingPlayerComponents(t *testing.T) {
	em := ecs.NewEntityManager()
	player := em.CreateEntity()
	newTestAnswer(em, types.LaneTop, true, 0, 0, 100, 100)

	if _, ok := NewCollisionSystem(em).Resolve(player); ok {
		t.Error("player without position/collision should never hit")
	}
}

// TestCheckAABBCollisionEdges 测试边界相接算作重叠、偏移生效
func TestCheckAABBCollisionEdges(t *testing.T) {
	a := &components.PositionComponent{X: 0, Y: 0}
	ac := &components.CollisionComponent{Width: 10, Height: 10}
	b := &components.PositionComponent{X: 10, Y: 0}
	bc := &components.CollisionComponent{Width: 10, Height: 10}

	if !checkAABBCollision(a, ac, b, bc) {
		t.Error("touching boxes should overlap")
	}

	bc.OffsetX = 1
	if checkAABBCollision(a, ac, b, bc) {
		t.Error("offset box should no longer overlap")
	}
}

// TestAnswerGroupSystem 测试答案组的绑定、整体移动与揭晓
func TestAnswerGroupSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	group := NewAnswerGroupSystem(em, cfg)

	if group.X() != cfg.Answers.StartX {
		t.Errorf("X() = %v, want %v", group.X(), cfg.Answers.StartX)
	}
	for _, lane := range types.AllLanes {
		if got := group.Position(lane).Y; got != cfg.LaneAnchor(lane) {
			t.Errorf("lane %v Y = %v, want %v", lane, got, cfg.LaneAnchor(lane))
		}
	}

	err := group.Bind([]AnswerBinding{{"goes", false}, {"go", true}, {"going", false}})
	if err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}
	if group.Answer(types.LaneMiddle).Text != "go" {
		t.Errorf("middle text = %q", group.Answer(types.LaneMiddle).Text)
	}
	if group.Correctness() != [types.LaneCount]bool{false, true, false} {
		t.Errorf("Correctness() = %v", group.Correctness())
	}

	group.Translate(-250)
	for _, lane := range types.AllLanes {
		if got := group.Position(lane).X; got != cfg.Answers.StartX-250 {
			t.Errorf("lane %v X = %v, want %v", lane, got, cfg.Answers.StartX-250)
		}
	}

	group.Reveal(Hit{Lane: types.LaneBottom, IsCorrect: false})
	wantStates := [types.LaneCount]components.AnswerState{
		components.AnswerStateNeutral,
		components.AnswerStateCorrect,
		components.AnswerStateWrong,
	}
	for _, lane := range types.AllLanes {
		if got := group.Answer(lane).State; got != wantStates[lane] {
			t.Errorf("lane %v state = %v, want %v", lane, got, wantStates[lane])
		}
	}

	group.Reset()
	if group.X() != cfg.Answers.StartX {
		t.Errorf("X() after Reset = %v", group.X())
	}
	if group.Answer(types.LaneBottom).State != components.AnswerStateNeutral || group.Answer(types.LaneMiddle).Text != "" {
		t.Error("Reset() should restore default answer state")
	}

	if err := group.Bind([]AnswerBinding{{"a", true}}); err == nil {
		t.Error("Bind() with too few options should fail")
	}
}
