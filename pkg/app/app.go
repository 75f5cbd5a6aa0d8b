// Package app 提供游戏应用的核心包装器
//
// 该包将启动逻辑从 main 包提取出来：Bootstrap 供 ebiten 窗口和终端界面共用，
// App 是 ebiten 窗口版的 ebiten.Game 实现。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	controller               *game.SessionController
	settings                 *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	runtime, err := Bootstrap(cfg)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	controller := game.NewSessionController(runtime.GameConfig, runtime.Bank, sceneManager)
	sceneManager.Register(game.SceneWelcome, scenes.NewWelcomeScene(controller, runtime.Settings))
	sceneManager.Register(game.ScenePlaying, scenes.NewPlayScene(controller))
	sceneManager.ShowWelcome()

	if runtime.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		controller:   controller,
		settings:     runtime.Settings,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	a.controller.Tick(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存偏好
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 窗口关闭时结束进行中的对局并保存偏好
func (a *App) Shutdown() {
	if a.controller.Phase() == game.PhasePlaying {
		a.controller.EndGame()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings on exit: %v", err)
	}
	log.Printf("[App] Shutdown on %q scene", a.sceneManager.CurrentName())
}
