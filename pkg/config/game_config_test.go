package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/lanequiz/pkg/types"
)

// TestDefaultGameConfig 测试默认配置
func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Mode != types.GameModeClassroom {
		t.Errorf("Mode: got %v, want classroom", cfg.Mode)
	}
	if cfg.QuestionLimit != DefaultQuestionLimit {
		t.Errorf("QuestionLimit: got %d, want %d", cfg.QuestionLimit, DefaultQuestionLimit)
	}
	if cfg.FeedbackDelay != 2.0 {
		t.Errorf("FeedbackDelay: got %v, want 2", cfg.FeedbackDelay)
	}
	if cfg.Lanes.Default != types.LaneMiddle {
		t.Errorf("Lanes.Default: got %v, want middle", cfg.Lanes.Default)
	}
	if cfg.Scroll.Direction != (types.Vector2{X: -1, Y: 0}) {
		t.Errorf("Scroll.Direction: got %+v, want (-1, 0)", cfg.Scroll.Direction)
	}
	if cfg.Scroll.AnswerScale != 900 {
		t.Errorf("Scroll.AnswerScale: got %v, want 900", cfg.Scroll.AnswerScale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestParseGameConfig 测试配置解析与校验
func TestParseGameConfig(t *testing.T) {
	t.Run("完整配置", func(t *testing.T) {
		data := `
mode: Unlimited
difficulty: hard
continuationPolicy: lenient
feedbackDelay: 1.5
scroll:
  speed: 0.5
  direction: {x: -3, y: 4}
  autoStart: true
lanes:
  default: bottom
  anchors: [100, 200, 300]
`
		cfg, err := ParseGameConfig([]byte(data))
		if err != nil {
			t.Fatalf("ParseGameConfig() failed: %v", err)
		}

		if cfg.Mode != types.GameModeUnlimited {
			t.Errorf("Mode: got %v", cfg.Mode)
		}
		if cfg.Difficulty != types.DifficultyHard {
			t.Errorf("Difficulty: got %v", cfg.Difficulty)
		}
		if cfg.ContinuationPolicy != types.PolicyLenient {
			t.Errorf("ContinuationPolicy: got %v", cfg.ContinuationPolicy)
		}
		if cfg.FeedbackDelay != 1.5 {
			t.Errorf("FeedbackDelay: got %v", cfg.FeedbackDelay)
		}
		// 方向会被归一化
		if cfg.Scroll.Direction != (types.Vector2{X: -0.6, Y: 0.8}) {
			t.Errorf("Scroll.Direction: got %+v, want (-0.6, 0.8)", cfg.Scroll.Direction)
		}
		if !cfg.Scroll.AutoStart {
			t.Error("Scroll.AutoStart: got false")
		}
		if cfg.Lanes.Default != types.LaneBottom {
			t.Errorf("Lanes.Default: got %v", cfg.Lanes.Default)
		}
		if cfg.LaneAnchor(types.LaneMiddle) != 200 {
			t.Errorf("LaneAnchor(middle): got %v", cfg.LaneAnchor(types.LaneMiddle))
		}
	})

	t.Run("空配置使用默认值", func(t *testing.T) {
		cfg, err := ParseGameConfig([]byte(""))
		if err != nil {
			t.Fatalf("ParseGameConfig() failed: %v", err)
		}
		if cfg.Lanes.Default != types.LaneMiddle {
			t.Errorf("Lanes.Default: got %v, want middle", cfg.Lanes.Default)
		}
		if len(cfg.Lanes.Anchors) != 3 {
			t.Errorf("Lanes.Anchors: got %v", cfg.Lanes.Anchors)
		}
	})

	errorCases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"未知模式", "mode: arcade", "unknown game mode"},
		{"未知难度", "difficulty: insane", "unknown difficulty"},
		{"负题量", "questionLimit: -2", "questionLimit"},
		{"车道数量错误", "lanes:\n  anchors: [1, 2]", "exactly 3"},
		{"车道顺序错误", "lanes:\n  anchors: [300, 200, 100]", "strictly increasing"},
		{"颜色错误", "colors:\n  correct: green", "colors.correct"},
		{"负速度", "scroll:\n  speed: -1", "scroll.speed"},
		{"YAML 语法错误", "mode: [", "failed to parse"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "game.yaml")
	if err := os.WriteFile(path, []byte("questionLimit: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() failed: %v", err)
	}
	if cfg.QuestionLimit != 3 {
		t.Errorf("QuestionLimit: got %d, want 3", cfg.QuestionLimit)
	}

	if _, err := LoadGameConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#4CAF50", color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, false},
		{"ff000080", color.RGBA{R: 0xFF, A: 0x80}, false},
		{"#fff", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
