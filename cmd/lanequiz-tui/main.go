// lanequiz-tui 终端版车道答题游戏
//
// 用法：
//
//	go run ./cmd/lanequiz-tui --data . --difficulty Medium
//
// 默认从当前目录读取 data/config/game.yaml 和题库；--log 指定日志文件。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/lanequiz/internal/tui"
	"github.com/decker502/lanequiz/pkg/app"
	"github.com/decker502/lanequiz/pkg/embedded"
	"github.com/decker502/lanequiz/pkg/game"
)

var (
	dataFlag       = flag.String("data", ".", "包含 data/ 目录的根路径")
	configFlag     = flag.String("config", app.DefaultConfigPath, "游戏配置文件")
	questionsFlag  = flag.String("questions", "", "题库文件，覆盖配置中的 questionFile")
	modeFlag       = flag.String("mode", "", "游戏模式：classroom / unlimited")
	difficultyFlag = flag.String("difficulty", "", "难度：Easy / Medium / Hard")
	limitFlag      = flag.Int("limit", 0, "课堂模式题量")
	logFlag        = flag.String("log", "", "日志文件（默认丢弃日志，避免干扰终端界面）")
	noColorFlag    = flag.Bool("no-color", false, "禁用颜色")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lanequiz-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*dataFlag))

	rt, err := app.Bootstrap(app.Config{
		ConfigPath:    *configFlag,
		QuestionPath:  *questionsFlag,
		Mode:          *modeFlag,
		Difficulty:    *difficultyFlag,
		QuestionLimit: *limitFlag,
	})
	if err != nil {
		return err
	}

	controller := game.NewSessionController(rt.GameConfig, rt.Bank, nil)
	model := tui.NewModel(controller, rt.Settings, tui.Options{NoColor: *noColorFlag})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return rt.Settings.Save()
}
