package systems

import (
	"github.com/decker502/lanequiz/pkg/types"
)

// ScrollSystem 路面滚动引擎
//
// 维护两个不同数值空间的量：
//   - offset：路面纹理偏移，每个轴循环在 [0, 1) 内
//   - 横向位移：不回绕的位移量，调用方乘以倍率后用于移动答案组
type ScrollSystem struct {
	offset    types.Vector2
	direction types.Vector2
	speed     float64
	running   bool
}

// NewScrollSystem 创建滚动引擎，direction 会被归一化
// 新建的引擎处于滚动状态
func NewScrollSystem(speed float64, direction types.Vector2) *ScrollSystem {
	return &ScrollSystem{
		direction: direction.Normalized(),
		speed:     speed,
		running:   true,
	}
}

// Start 开始滚动
func (s *ScrollSystem) Start() {
	s.running = true
}

// Stop 停止滚动，偏移保持不变
func (s *ScrollSystem) Stop() {
	s.running = false
}

// Advance 按给定方向和速度推进纹理偏移，并把两个轴回绕到 [0, 1)
func (s *ScrollSystem) Advance(deltaTime float64, direction types.Vector2, speed float64) types.Vector2 {
	s.offset = s.offset.Add(direction.Scale(speed * deltaTime))
	s.offset.X = types.Repeat(s.offset.X, 1)
	s.offset.Y = types.Repeat(s.offset.Y, 1)
	return s.offset
}

// Tick 使用当前配置的方向和速度推进一帧，停止时不动
func (s *ScrollSystem) Tick(deltaTime float64) types.Vector2 {
	if !s.running {
		return s.offset
	}
	return s.Advance(deltaTime, s.direction, s.speed)
}

// LateralDisplacement 返回本帧的横向位移（direction.X * speed * dt，不回绕）
// 停止时为 0
func (s *ScrollSystem) LateralDisplacement(deltaTime float64) float64 {
	if !s.running {
		return 0
	}
	return s.direction.X * s.speed * deltaTime
}

// Offset 返回当前纹理偏移
func (s *ScrollSystem) Offset() types.Vector2 {
	return s.offset
}

// Reset 将纹理偏移归零
func (s *ScrollSystem) Reset() {
	s.offset = types.Vector2{}
}

// SetSpeed 设置滚动速度
func (s *ScrollSystem) SetSpeed(speed float64) {
	s.speed = speed
}

// Speed 返回滚动速度
func (s *ScrollSystem) Speed() float64 {
	return s.speed
}

// SetDirection 设置滚动方向（归一化；零向量保持为零，即停止滚动）
func (s *ScrollSystem) SetDirection(direction types.Vector2) {
	s.direction = direction.Normalized()
}

// Direction 返回滚动方向
func (s *ScrollSystem) Direction() types.Vector2 {
	return s.direction
}
