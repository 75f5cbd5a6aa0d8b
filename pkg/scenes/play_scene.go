package scenes

import (
	"fmt"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayScene 答题界面：滚动路面、三条车道上的答案、玩家车辆
type PlayScene struct {
	controller *game.SessionController
	colors     palette
}

// NewPlayScene 创建答题界面
func NewPlayScene(controller *game.SessionController) *PlayScene {
	return &PlayScene{
		controller: controller,
		colors:     newPalette(controller.Config()),
	}
}

// Update 处理换道和结束输入；每帧推进由 App 负责
func (s *PlayScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.controller.EndGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.controller.ChangeLane(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.controller.ChangeLane(false)
	}
	if tapped, _, y := utils.IsJustTouchedOrClicked(); tapped {
		s.controller.ChangeLane(utils.TapSteersUp(y, s.controller.View().PlayerY))
	}
}

// Draw 绘制答题界面
func (s *PlayScene) Draw(screen *ebiten.Image) {
	cfg := s.controller.Config()
	view := s.controller.View()

	drawRoad(screen, cfg, s.colors, view.ScrollOffset)

	// 答案区域
	for _, opt := range view.Options {
		left := opt.X - opt.Width/2
		top := opt.Y - opt.Height/2
		ebitenutil.DrawRect(screen, left, top, opt.Width, opt.Height, s.colors.answerColor(opt.State))
		drawCentered(screen, opt.Text, int(opt.X), int(opt.Y)-debugLineH/2)
	}

	// 玩家车辆
	ebitenutil.DrawRect(screen,
		view.PlayerX-cfg.Player.Width/2, view.PlayerY-cfg.Player.Height/2,
		cfg.Player.Width, cfg.Player.Height, s.colors.player)

	for i, line := range hudLines(view) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*debugLineH)
	}
	drawCentered(screen, view.QuestionText, config.GameWindowWidth/2, 40)
}

// hudLines 生成答题界面顶部的状态文字
func hudLines(view game.SessionView) []string {
	lines := make([]string, 0, 2)
	status := fmt.Sprintf("Score %d/%d", view.CorrectCount, view.AnsweredCount)
	if view.ProgressLabel != "" {
		status = view.ProgressLabel + "   " + status
	}
	lines = append(lines, status)

	if view.IsAnswered {
		verdict := "Wrong!"
		if view.IsAnsweredCorrect {
			verdict = "Correct!"
		}
		lines = append(lines, fmt.Sprintf("%s  next in %.1fs", verdict, view.FeedbackRemaining))
	}
	return lines
}
