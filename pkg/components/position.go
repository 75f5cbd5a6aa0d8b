package components

// PositionComponent 实体在屏幕坐标系中的中心位置（像素）
type PositionComponent struct {
	X float64
	Y float64
}
