package systems

import "github.com/decker502/lanequiz/pkg/types"

// LaneTracker 玩家车道状态机（上、中、下，两端不循环）
// 只保存离散状态，车道对应的屏幕坐标由配置决定
type LaneTracker struct {
	current     types.Lane
	defaultLane types.Lane
}

// NewLaneTracker 创建车道状态机，初始位于 defaultLane
func NewLaneTracker(defaultLane types.Lane) *LaneTracker {
	if !defaultLane.Valid() {
		defaultLane = types.LaneMiddle
	}
	return &LaneTracker{
		current:     defaultLane,
		defaultLane: defaultLane,
	}
}

// Current 返回当前车道
func (lt *LaneTracker) Current() types.Lane {
	return lt.current
}

// MoveUp 向上移动一条车道，已在最上方时不变
func (lt *LaneTracker) MoveUp() types.Lane {
	lt.current = lt.current.Up()
	return lt.current
}

// MoveDown 向下移动一条车道，已在最下方时不变
func (lt *LaneTracker) MoveDown() types.Lane {
	lt.current = lt.current.Down()
	return lt.current
}

// Move 按方向移动：goingUp 为 true 时向上
func (lt *LaneTracker) Move(goingUp bool) types.Lane {
	if goingUp {
		return lt.MoveUp()
	}
	return lt.MoveDown()
}

// Reset 回到默认车道
func (lt *LaneTracker) Reset() types.Lane {
	lt.current = lt.defaultLane
	return lt.current
}
