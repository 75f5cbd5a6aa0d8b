package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/lanequiz/pkg/app"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "显示详细日志")
	configFlag     = flag.String("config", app.DefaultConfigPath, "游戏配置文件（data/ 开头时读取嵌入资源）")
	questionsFlag  = flag.String("questions", "", "题库文件，覆盖配置中的 questionFile")
	modeFlag       = flag.String("mode", "", "游戏模式：classroom / unlimited")
	difficultyFlag = flag.String("difficulty", "", "难度：Easy / Medium / Hard")
	limitFlag      = flag.Int("limit", 0, "课堂模式题量")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:       *verboseFlag,
		ConfigPath:    *configFlag,
		QuestionPath:  *questionsFlag,
		Mode:          *modeFlag,
		Difficulty:    *difficultyFlag,
		QuestionLimit: *limitFlag,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，启动错误直接输出到 stderr
		fmt.Fprintf(os.Stderr, "lanequiz: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Lane Quiz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// This will call Update() and Draw() repeatedly until the window is closed
	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}
