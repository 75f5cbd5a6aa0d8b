package components

import "github.com/decker502/lanequiz/pkg/types"

// PlayerComponent 标识玩家车辆实体
type PlayerComponent struct {
	Lane types.Lane // 当前所在车道（与 LaneTracker 同步）
}
