package types

import "math"

// Vector2 二维向量（滚动方向、纹理偏移）
type Vector2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 向量相加
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 向量数乘
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Length 向量长度
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized 返回单位向量；零向量原样返回
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Repeat 将 t 循环映射到 [0, length)，负数同样向正方向回绕
func Repeat(t, length float64) float64 {
	r := t - math.Floor(t/length)*length
	if r >= length || r < 0 {
		return 0
	}
	return r
}
