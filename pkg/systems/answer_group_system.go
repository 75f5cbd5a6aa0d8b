package systems

import (
	"fmt"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/ecs"
	"github.com/decker502/lanequiz/pkg/types"
)

// AnswerBinding 绑定到某条车道的选项
type AnswerBinding struct {
	Text      string
	IsCorrect bool
}

// AnswerGroupSystem 管理三个答案区域实体
//
// 三个实体共享同一个 X 坐标，作为刚体整体移动；Y 坐标固定在各自车道中心。
type AnswerGroupSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	entities      [types.LaneCount]ecs.EntityID
}

// NewAnswerGroupSystem 创建答案组系统，并为每条车道创建答案实体
func NewAnswerGroupSystem(em *ecs.EntityManager, cfg *config.GameConfig) *AnswerGroupSystem {
	s := &AnswerGroupSystem{
		entityManager: em,
		config:        cfg,
	}

	for _, lane := range types.AllLanes {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: cfg.Answers.StartX,
			Y: cfg.LaneAnchor(lane),
		})
		ecs.AddComponent(em, id, &components.CollisionComponent{
			Width:  cfg.Answers.Width,
			Height: cfg.Answers.Height,
		})
		ecs.AddComponent(em, id, &components.AnswerComponent{Lane: lane})
		s.entities[lane] = id
	}
	return s
}

// Answer 返回车道对应的答案组件
func (s *AnswerGroupSystem) Answer(lane types.Lane) *components.AnswerComponent {
	answer, _ := ecs.GetComponent[*components.AnswerComponent](s.entityManager, s.entities[lane])
	return answer
}

// Position 返回车道对应答案的位置组件
func (s *AnswerGroupSystem) Position(lane types.Lane) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.entities[lane])
	return pos
}

// X 返回答案组当前的 X 坐标
func (s *AnswerGroupSystem) X() float64 {
	if pos := s.Position(types.LaneTop); pos != nil {
		return pos.X
	}
	return 0
}

// Reset 答案组回到起始位置，清空文本并恢复默认显示状态
func (s *AnswerGroupSystem) Reset() {
	for _, lane := range types.AllLanes {
		if pos := s.Position(lane); pos != nil {
			pos.X = s.config.Answers.StartX
			pos.Y = s.config.LaneAnchor(lane)
		}
		if answer := s.Answer(lane); answer != nil {
			answer.Text = ""
			answer.IsCorrect = false
			answer.State = components.AnswerStateNeutral
		}
	}
}

// Bind 按 上、中、下 顺序绑定三个选项
func (s *AnswerGroupSystem) Bind(options []AnswerBinding) error {
	if len(options) < types.LaneCount {
		return fmt.Errorf("need %d options, got %d", types.LaneCount, len(options))
	}
	for _, lane := range types.AllLanes {
		answer := s.Answer(lane)
		if answer == nil {
			return fmt.Errorf("answer entity for lane %v is missing", lane)
		}
		answer.Text = options[lane].Text
		answer.IsCorrect = options[lane].IsCorrect
		answer.State = components.AnswerStateNeutral
	}
	return nil
}

// Translate 整体水平移动所有答案实体
func (s *AnswerGroupSystem) Translate(dx float64) {
	ids := ecs.GetEntitiesWith2[*components.AnswerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X += dx
	}
}

// Reveal 作答后更新显示状态：撞上的车道显示对或错，正确答案所在车道显示为正确
func (s *AnswerGroupSystem) Reveal(hit Hit) {
	for _, lane := range types.AllLanes {
		answer := s.Answer(lane)
		if answer == nil {
			continue
		}
		switch {
		case answer.IsCorrect:
			answer.State = components.AnswerStateCorrect
		case lane == hit.Lane:
			answer.State = components.AnswerStateWrong
		default:
			answer.State = components.AnswerStateNeutral
		}
	}
}

// Correctness 返回每条车道的正误
func (s *AnswerGroupSystem) Correctness() [types.LaneCount]bool {
	var result [types.LaneCount]bool
	for _, lane := range types.AllLanes {
		if answer := s.Answer(lane); answer != nil {
			result[lane] = answer.IsCorrect
		}
	}
	return result
}
