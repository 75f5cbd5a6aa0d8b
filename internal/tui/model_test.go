package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
)

const tuiTestQuestions = `questions:
  - questionText: "She ___ to school every day."
    difficulty: Easy
    options:
      - { answerText: "go", isCorrect: false }
      - { answerText: "goes", isCorrect: true }
      - { answerText: "going", isCorrect: false }
`

func newTestModel(t *testing.T) (Model, *game.SettingsManager) {
	t.Helper()
	bank := game.NewQuestionBank(rand.New(rand.NewSource(1)))
	if err := bank.Load([]byte(tuiTestQuestions)); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	cfg := config.DefaultGameConfig()
	cfg.FeedbackDelay = 0.5
	controller := game.NewSessionController(cfg, bank, nil)
	settings, _ := game.NewSettingsManager(nil)
	return NewModel(controller, settings, Options{NoColor: true, FrameInterval: 50 * time.Millisecond}), settings
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestModelStartAndSteer 测试开局和换道按键
func TestModelStartAndSteer(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Screen() != game.SceneWelcome {
		t.Fatalf("Screen() = %q", m.Screen())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != game.ScenePlaying || m.controller.Phase() != game.PhasePlaying {
		t.Fatalf("after enter: screen=%q phase=%v", m.Screen(), m.controller.Phase())
	}
	if !strings.Contains(m.View(), "She ___ to school every day.") {
		t.Error("view should show the question")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.controller.View().Lane != types.LaneTop {
		t.Errorf("lane = %v, want top", m.controller.View().Lane)
	}
	m = press(t, m, runes("s"))
	m = press(t, m, runes("s"))
	if m.controller.View().Lane != types.LaneBottom {
		t.Errorf("lane = %v, want bottom", m.controller.View().Lane)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != game.SceneWelcome || m.controller.Phase() != game.PhaseIdle {
		t.Errorf("after esc: screen=%q phase=%v", m.Screen(), m.controller.Phase())
	}
}

// TestModelWelcomeKeys 测试欢迎界面的难度与模式切换
func TestModelWelcomeKeys(t *testing.T) {
	m, settings := newTestModel(t)

	m = press(t, m, runes("3"))
	if m.controller.Config().Difficulty != types.DifficultyHard || settings.GetSettings().Difficulty != types.DifficultyHard {
		t.Error("difficulty should switch to Hard")
	}
	if !strings.Contains(m.message, "No questions") {
		t.Errorf("message = %q", m.message)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.controller.Phase() != game.PhaseIdle || m.Screen() != game.SceneWelcome {
		t.Error("start with an empty pool should stay on the welcome screen")
	}

	m = press(t, m, runes("1"))
	if m.message != "" {
		t.Errorf("message should clear, got %q", m.message)
	}

	m = press(t, m, runes("m"))
	if m.controller.Config().Mode != types.GameModeUnlimited {
		t.Errorf("mode = %v, want unlimited", m.controller.Config().Mode)
	}
	if !strings.Contains(m.View(), "Mode: Unlimited") {
		t.Error("view should show the new mode")
	}
}

// TestModelFrames 测试帧推进直到作答，并限制单帧时长
func TestModelFrames(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	start := time.Unix(0, 0)
	now := start
	for i := 0; i < 200 && !m.controller.Round().IsAnswered; i++ {
		now = now.Add(50 * time.Millisecond)
		next, cmd := m.Update(frameMsg(now))
		m = next.(Model)
		if cmd == nil {
			t.Fatal("frame should schedule the next frame")
		}
	}
	if !m.controller.Round().IsAnswered || !m.controller.Round().IsAnsweredCorrect {
		t.Fatalf("expected a correct answer in the middle lane: %+v", m.controller.Round())
	}
	if !strings.Contains(m.View(), "Correct!") {
		t.Error("view should show the verdict")
	}

	// 长时间卡顿只推进 maxFrameDelta
	before := m.controller.View().FeedbackRemaining
	next, _ := m.Update(frameMsg(now.Add(10 * time.Second)))
	m = next.(Model)
	if got := m.controller.View().FeedbackRemaining; before-got > maxFrameDelta+1e-9 {
		t.Errorf("feedback advanced by %v, want at most %v", before-got, maxFrameDelta)
	}
}

// TestModelQuit 测试退出
func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.controller.Phase() != game.PhaseIdle {
		t.Error("quit should end the running game")
	}
}

// TestTrackRows 测试路面渲染
func TestTrackRows(t *testing.T) {
	view := game.SessionView{
		Phase:   game.PhasePlaying,
		Lane:    types.LaneMiddle,
		PlayerX: 160,
	}
	view.Options[types.LaneTop] = game.OptionView{Lane: types.LaneTop, Text: "went", X: 400, Width: 100}

	rows := trackRows(view, 64)
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(rows))
	}
	top := rows[1].plain()
	if !strings.Contains(top, "[") || !strings.Contains(top, "went") {
		t.Errorf("top lane = %q", top)
	}
	if strings.Index(top, "[") != columnOf(350, 64) {
		t.Errorf("answer starts at column %d, want %d", strings.Index(top, "["), columnOf(350, 64))
	}
	if middle := rows[3].plain(); !strings.Contains(middle, "=>") {
		t.Errorf("middle lane should contain the car: %q", middle)
	}
	if bottom := rows[5].plain(); strings.TrimSpace(bottom) != "" {
		t.Errorf("bottom lane should be empty: %q", bottom)
	}
}

// TestStripeRowScrolls 测试分隔线随偏移移动
func TestStripeRowScrolls(t *testing.T) {
	a := stripeRow(0, 16).plain()
	b := stripeRow(0.25, 16).plain()
	if a != "----    ----    " {
		t.Errorf("stripeRow(0) = %q", a)
	}
	if b != "--    ----    --" {
		t.Errorf("stripeRow(0.25) = %q", b)
	}
	if c := stripeRow(1.25, 16).plain(); c != b {
		t.Errorf("offset should wrap: %q vs %q", c, b)
	}
}

// TestRowPutClips 测试超出边界的文字被裁掉
func TestRowPutClips(t *testing.T) {
	r := newRow(5)
	r.put(-2, "abcdefg", stylePlain)
	if got := r.plain(); got != "cdefg" {
		t.Errorf("plain() = %q, want cdefg", got)
	}
	if got := r.render(newStyles(config.DefaultGameConfig(), true)); got != "cdefg" {
		t.Errorf("render() = %q", got)
	}
}
