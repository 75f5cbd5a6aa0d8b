package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
	"github.com/decker502/lanequiz/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WelcomeScene 欢迎界面
//
// 显示当前难度、模式、题库数量和上一局成绩；Enter 开局，1/2/3 切换难度，M 切换模式。
type WelcomeScene struct {
	controller *game.SessionController
	settings   *game.SettingsManager
	colors     palette

	message string // 最近一次操作失败的提示
}

// NewWelcomeScene 创建欢迎界面
//
// 参数：
//   - controller: 会话控制器
//   - settings: 设置管理器，可为 nil（不保存偏好）
func NewWelcomeScene(controller *game.SessionController, settings *game.SettingsManager) *WelcomeScene {
	return &WelcomeScene{
		controller: controller,
		settings:   settings,
		colors:     newPalette(controller.Config()),
	}
}

// OnEnter 回到欢迎界面时记录上一局成绩并保存偏好
func (s *WelcomeScene) OnEnter() {
	round := s.controller.Round()
	if s.settings == nil || round.AnsweredCount == 0 {
		return
	}
	s.settings.RecordResult(round.CorrectCount, round.AnsweredCount)
	if err := s.settings.Save(); err != nil {
		log.Printf("[WelcomeScene] Warning: failed to save settings: %v", err)
	}
}

// Update 处理欢迎界面输入
func (s *WelcomeScene) Update(deltaTime float64) {
	tapped, _, _ := utils.IsJustTouchedOrClicked()
	switch {
	case tapped, inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.start()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.selectDifficulty(types.DifficultyEasy)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.selectDifficulty(types.DifficultyMedium)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.selectDifficulty(types.DifficultyHard)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.toggleMode()
	}
}

func (s *WelcomeScene) start() {
	if err := s.controller.StartGame(); err != nil {
		s.message = startErrorMessage(err)
		// 出题失败时留在欢迎界面
		s.controller.EndGame()
		return
	}
	s.message = ""
}

func (s *WelcomeScene) selectDifficulty(d types.Difficulty) {
	if err := s.controller.SetDifficulty(d); err != nil {
		s.message = startErrorMessage(err)
	} else {
		s.message = ""
	}
	if s.settings != nil {
		s.settings.SetDifficulty(d)
		s.saveSettings()
	}
}

func (s *WelcomeScene) toggleMode() {
	cfg := s.controller.Config()
	mode := types.GameModeClassroom
	if cfg.Mode == types.GameModeClassroom {
		mode = types.GameModeUnlimited
	}
	if err := s.controller.SetMode(mode, cfg.QuestionLimit); err != nil {
		s.message = err.Error()
		return
	}
	if s.settings != nil {
		s.settings.SetMode(mode)
		s.saveSettings()
	}
}

func (s *WelcomeScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[WelcomeScene] Warning: failed to save settings: %v", err)
	}
}

// startErrorMessage 将开局错误转换为界面提示
func startErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrEmptyPool):
		return "No questions for this difficulty. Press 1/2/3 to pick another."
	case errors.Is(err, game.ErrInvalidQuestion):
		return "A question in the bank is broken. Check the logs."
	case errors.Is(err, game.ErrMissingDependency):
		return "The game is not wired up correctly."
	default:
		return err.Error()
	}
}

// welcomeLines 生成欢迎界面的文字行
func welcomeLines(controller *game.SessionController, settings *game.SettingsManager) []string {
	cfg := controller.Config()
	bank := controller.Bank()

	mode := "Unlimited"
	if cfg.Mode == types.GameModeClassroom {
		mode = fmt.Sprintf("Classroom (%d questions)", cfg.QuestionLimit)
	}

	lines := []string{
		"LANE QUIZ",
		"",
		fmt.Sprintf("Difficulty: %v", cfg.Difficulty),
		fmt.Sprintf("Mode: %s", mode),
	}
	if bank != nil {
		lines = append(lines, fmt.Sprintf("Questions: Easy %d / Medium %d / Hard %d",
			bank.CountByDifficulty(types.DifficultyEasy),
			bank.CountByDifficulty(types.DifficultyMedium),
			bank.CountByDifficulty(types.DifficultyHard)))
	}
	if settings != nil && settings.GetSettings().LastAnswered > 0 {
		s := settings.GetSettings()
		lines = append(lines, fmt.Sprintf("Last game: %d/%d correct", s.LastCorrect, s.LastAnswered))
	}
	if utils.IsMobile() {
		lines = append(lines, "", "Tap to start", "Tap above or below the car to change lanes")
	} else {
		lines = append(lines,
			"",
			"ENTER start   1/2/3 difficulty   M mode   F11 fullscreen",
			"Steer with UP/DOWN or W/S, ESC ends the game",
		)
	}
	return lines
}

// Draw 绘制欢迎界面
func (s *WelcomeScene) Draw(screen *ebiten.Image) {
	drawRoad(screen, s.controller.Config(), s.colors, s.controller.View().ScrollOffset)

	cx := config.GameWindowWidth / 2
	y := 180
	for _, line := range welcomeLines(s.controller, s.settings) {
		drawCentered(screen, line, cx, y)
		y += debugLineH + 4
	}
	if s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, 20, config.GameWindowHeight-30)
	}
}
