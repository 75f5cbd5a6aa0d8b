package systems

import (
	"sort"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/ecs"
	"github.com/decker502/lanequiz/pkg/types"
)

// Hit 一次碰撞结果
type Hit struct {
	Lane      types.Lane // 撞上的答案所在车道
	IsCorrect bool       // 该答案是否正确
}

// CollisionSystem 检测玩家与哪条车道的答案区域重叠
//
// 检测顺序固定为 上、中、下，第一个重叠的区域胜出。
// 这只是优先级规则，只有在答案区域互相重叠的配置下才会起作用。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
	}
}

// checkAABBCollision 检查两个轴对齐边界框是否重叠（边界相接也算重叠）
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// 任一轴上没有重叠，则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Resolve 检测玩家实体当前撞上的答案
//
// 返回：
//   - Hit: 碰撞结果
//   - bool: 是否发生碰撞；玩家实体缺少位置或碰撞组件时返回 false
func (s *CollisionSystem) Resolve(playerID ecs.EntityID) (Hit, bool) {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return Hit{}, false
	}
	playerCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)
	if !ok {
		return Hit{}, false
	}

	answerIDs := ecs.GetEntitiesWith3[
		*components.AnswerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	type candidate struct {
		answer *components.AnswerComponent
		pos    *components.PositionComponent
		col    *components.CollisionComponent
	}
	candidates := make([]candidate, 0, len(answerIDs))
	for _, id := range answerIDs {
		answer, _ := ecs.GetComponent[*components.AnswerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		candidates = append(candidates, candidate{answer: answer, pos: pos, col: col})
	}

	// 按车道排序：上车道优先
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].answer.Lane < candidates[j].answer.Lane
	})

	for _, c := range candidates {
		if checkAABBCollision(playerPos, playerCol, c.pos, c.col) {
			return Hit{Lane: c.answer.Lane, IsCorrect: c.answer.IsCorrect}, true
		}
	}
	return Hit{}, false
}
