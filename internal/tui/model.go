// Package tui 终端版宿主：用 Bubble Tea 驱动会话控制器，用 lipgloss 渲染路面
package tui

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
)

// maxFrameDelta 单帧时长上限（秒），终端卡顿时避免答案组一次跳过玩家
const maxFrameDelta = 0.1

// screen 记录呈现层切换（Presenter 实现）
type screen struct {
	name string
}

func (s *screen) ShowWelcome() { s.name = game.SceneWelcome }
func (s *screen) ShowPlaying() { s.name = game.ScenePlaying }

// Options 终端界面选项
type Options struct {
	NoColor       bool
	FrameInterval time.Duration // 默认 1/30 秒
	Columns       int           // 路面列数，默认 64
}

// Model 终端版游戏模型
type Model struct {
	controller *game.SessionController
	settings   *game.SettingsManager
	screen     *screen
	keys       keyMap
	help       help.Model
	styles     styles

	frame   time.Duration
	last    time.Time
	columns int
	message string
}

// NewModel 创建终端版游戏模型
//
// 参数：
//   - controller: 会话控制器；呈现层会被替换为终端界面
//   - settings: 设置管理器，可为 nil
func NewModel(controller *game.SessionController, settings *game.SettingsManager, opts Options) Model {
	frame := opts.FrameInterval
	if frame <= 0 {
		frame = time.Second / 30
	}
	columns := opts.Columns
	if columns <= 0 {
		columns = defaultColumns
	}

	s := &screen{name: game.SceneWelcome}
	controller.SetPresenter(s)

	return Model{
		controller: controller,
		settings:   settings,
		screen:     s,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     newStyles(controller.Config(), opts.NoColor),
		frame:      frame,
		columns:    columns,
	}
}

// frameMsg 帧计时消息
type frameMsg time.Time

func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init 开始帧计时
func (m Model) Init() tea.Cmd {
	return nextFrame(m.frame)
}

// Update 处理按键和帧计时
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case frameMsg:
		now := time.Time(typed)
		m = m.advance(now)
		return m, nextFrame(m.frame)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// advance 按真实经过的时间推进会话
func (m Model) advance(now time.Time) Model {
	dt := m.frame.Seconds()
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	wasPlaying := m.controller.Phase() == game.PhasePlaying
	m.controller.Tick(dt)
	if wasPlaying && m.controller.Phase() == game.PhaseIdle {
		m.recordResult()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.controller.EndGame()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.controller.Phase() == game.PhasePlaying {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.controller.ChangeLane(true)
		case key.Matches(msg, m.keys.Down):
			m.controller.ChangeLane(false)
		case key.Matches(msg, m.keys.End):
			m.controller.EndGame()
			m.recordResult()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		if err := m.controller.StartGame(); err != nil {
			m.message = errorMessage(err)
			m.controller.EndGame()
		} else {
			m.message = ""
		}
	case key.Matches(msg, m.keys.Easy):
		m.selectDifficulty(types.DifficultyEasy)
	case key.Matches(msg, m.keys.Medium):
		m.selectDifficulty(types.DifficultyMedium)
	case key.Matches(msg, m.keys.Hard):
		m.selectDifficulty(types.DifficultyHard)
	case key.Matches(msg, m.keys.Mode):
		m.toggleMode()
	}
	return m, nil
}

func (m *Model) selectDifficulty(d types.Difficulty) {
	if err := m.controller.SetDifficulty(d); err != nil {
		m.message = errorMessage(err)
	} else {
		m.message = ""
	}
	if m.settings != nil {
		m.settings.SetDifficulty(d)
		m.saveSettings()
	}
}

func (m *Model) toggleMode() {
	cfg := m.controller.Config()
	mode := types.GameModeUnlimited
	if cfg.Mode == types.GameModeUnlimited {
		mode = types.GameModeClassroom
	}
	if err := m.controller.SetMode(mode, cfg.QuestionLimit); err != nil {
		m.message = err.Error()
		return
	}
	if m.settings != nil {
		m.settings.SetMode(mode)
		m.saveSettings()
	}
}

// recordResult 记录本局成绩，顺带保存偏好
func (m *Model) recordResult() {
	round := m.controller.Round()
	if m.settings == nil || round.AnsweredCount == 0 {
		return
	}
	m.settings.RecordResult(round.CorrectCount, round.AnsweredCount)
	m.saveSettings()
}

func (m *Model) saveSettings() {
	if err := m.settings.Save(); err != nil {
		log.Printf("[TUI] Warning: failed to save settings: %v", err)
	}
}

func errorMessage(err error) string {
	if errors.Is(err, game.ErrEmptyPool) {
		return "No questions for this difficulty. Press 1/2/3 to pick another."
	}
	return err.Error()
}

// View 渲染当前界面
func (m Model) View() string {
	view := m.controller.View()
	var parts []string

	if m.Screen() == game.ScenePlaying {
		parts = append(parts,
			m.styles.title.Render(view.QuestionText),
			m.styles.faint.Render(hudLine(view)),
		)
	} else {
		parts = append(parts, m.styles.title.Render("LANE QUIZ"))
		parts = append(parts, welcomeLines(m.controller, m.settings)...)
	}

	var track []string
	for _, r := range trackRows(view, m.columns) {
		track = append(track, r.render(m.styles))
	}
	parts = append(parts, "", strings.Join(track, "\n"), "")

	if m.message != "" {
		parts = append(parts, m.styles.message.Render(m.message))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Screen 返回当前界面名称
func (m Model) Screen() string {
	return m.screen.name
}
