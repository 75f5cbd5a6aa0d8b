package config

// 游戏窗口逻辑尺寸（与 ebiten Layout 返回值一致）
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)
