package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (welcome screen, quiz road).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被切换为活动场景时调用 OnEnter()
//
// 用于在切换时刷新界面状态（例如欢迎界面重新读取题库数量和上一局得分）
type Enterable interface {
	OnEnter()
}
