package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/lanequiz/pkg/embedded"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
)

const testGameYAML = `mode: classroom
questionLimit: 4
difficulty: Medium
questionFile: data/questions/questions.yaml
`

const testQuestionsYAML = `questions:
  - questionText: "I ___ my homework already."
    difficulty: Medium
    options:
      - { answerText: "did", isCorrect: false }
      - { answerText: "have done", isCorrect: true }
      - { answerText: "do", isCorrect: false }
  - questionText: "She ___ tea every morning."
    difficulty: Easy
    options:
      - { answerText: "drinks", isCorrect: true }
      - { answerText: "drank", isCorrect: false }
      - { answerText: "drinking", isCorrect: false }
`

func initTestData(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"data/config/game.yaml":         &fstest.MapFile{Data: []byte(testGameYAML)},
		"data/questions/questions.yaml": &fstest.MapFile{Data: []byte(testQuestionsYAML)},
	})
	t.Cleanup(func() { embedded.Init(nil) })
}

// TestBootstrapEmbedded 测试从嵌入资源加载配置和题库
func TestBootstrapEmbedded(t *testing.T) {
	initTestData(t)

	rt, err := Bootstrap(Config{NoPersist: true})
	if err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	if rt.Bank.Len() != 2 {
		t.Errorf("Bank.Len() = %d, want 2", rt.Bank.Len())
	}
	// 没有保存的偏好时使用 game.yaml
	if rt.GameConfig.Difficulty != types.DifficultyMedium || rt.GameConfig.QuestionLimit != 4 {
		t.Errorf("difficulty=%v limit=%d", rt.GameConfig.Difficulty, rt.GameConfig.QuestionLimit)
	}
	if rt.Settings.HasSaved() || rt.Settings.GetSettings().QuestionLimit != 4 {
		t.Errorf("settings should be seeded from game.yaml: %+v", rt.Settings.GetSettings())
	}
}

// TestBootstrapOverrides 测试命令行覆盖
func TestBootstrapOverrides(t *testing.T) {
	initTestData(t)

	rt, err := Bootstrap(Config{
		NoPersist:     true,
		Mode:          "unlimited",
		Difficulty:    "medium",
		QuestionLimit: 3,
	})
	if err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	cfg := rt.GameConfig
	if cfg.Mode != types.GameModeUnlimited || cfg.Difficulty != types.DifficultyMedium || cfg.QuestionLimit != 3 {
		t.Errorf("mode=%v difficulty=%v limit=%d", cfg.Mode, cfg.Difficulty, cfg.QuestionLimit)
	}
	if rt.Settings.GetSettings().Difficulty != types.DifficultyMedium {
		t.Error("overrides should be reflected in settings")
	}

	controller := game.NewSessionController(cfg, rt.Bank, game.NewSceneManager())
	if err := controller.StartGame(); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if got := controller.View().QuestionText; got != "I ___ my homework already." {
		t.Errorf("QuestionText = %q", got)
	}
}

// TestBootstrapErrors 测试启动失败的情况
func TestBootstrapErrors(t *testing.T) {
	initTestData(t)

	if _, err := Bootstrap(Config{NoPersist: true, Mode: "arcade"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := Bootstrap(Config{NoPersist: true, Difficulty: "extreme"}); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	_, err := Bootstrap(Config{NoPersist: true, QuestionPath: "data/questions/missing.yaml"})
	if !errors.Is(err, game.ErrData) {
		t.Errorf("missing question file error = %v, want ErrData", err)
	}

	if _, err := Bootstrap(Config{NoPersist: true, ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}

// TestBootstrapFilesystem 测试从磁盘加载配置和题库，并持久化偏好
func TestBootstrapFilesystem(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	questionPath := filepath.Join(tempDir, "questions.json")
	json := `{"questions":[{"questionText":"He ___ asleep when I called.","difficulty":"Hard","options":[
		{"answerText":"was","isCorrect":true},{"answerText":"is","isCorrect":false},{"answerText":"be","isCorrect":false}]}]}`
	if err := os.WriteFile(questionPath, []byte(json), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tempDir, "game.yaml")
	if err := os.WriteFile(configPath, []byte("continuationPolicy: lenient\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		ConfigPath:   configPath,
		QuestionPath: questionPath,
		Difficulty:   "Hard",
		AppName:      "test_lanequiz_bootstrap",
	}
	rt, err := Bootstrap(cfg)
	if err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	if rt.GameConfig.ContinuationPolicy != types.PolicyLenient {
		t.Errorf("policy = %v, want lenient", rt.GameConfig.ContinuationPolicy)
	}
	if err := rt.Settings.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// 第二次启动不带难度参数，使用保存的偏好
	cfg.Difficulty = ""
	rt, err = Bootstrap(cfg)
	if err != nil {
		t.Fatalf("second Bootstrap() failed: %v", err)
	}
	if rt.GameConfig.Difficulty != types.DifficultyHard {
		t.Errorf("difficulty = %v, want saved Hard", rt.GameConfig.Difficulty)
	}
}

// TestBootstrapShippedData 测试随程序发布的配置和题库
func TestBootstrapShippedData(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	rt, err := Bootstrap(Config{NoPersist: true})
	if err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	for _, d := range []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard} {
		if got := rt.Bank.CountByDifficulty(d); got < rt.GameConfig.QuestionLimit {
			t.Errorf("%v has %d questions, fewer than the classroom limit %d", d, got, rt.GameConfig.QuestionLimit)
		}
	}
	if rt.GameConfig.Lanes.Default != types.LaneMiddle || !rt.GameConfig.Scroll.AutoStart {
		t.Errorf("unexpected shipped config: %+v", rt.GameConfig)
	}
}
