package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/lanequiz/pkg/types"
	"gopkg.in/yaml.v3"
)

// 默认值（与原版小游戏一致的数值）
const (
	DefaultQuestionLimit = 10
	DefaultFeedbackDelay = 2.0   // 答题反馈等待（秒）
	DefaultScrollSpeed   = 0.3   // 路面纹理每秒滚动的比例
	DefaultAnswerScale   = 900.0 // 纹理空间位移 -> 屏幕像素位移的倍率
	DefaultQuestionFile  = "data/questions/questions.yaml"
)

// GameConfig 游戏配置
// 对应 data/config/game.yaml，所有检视面板式的可调参数都集中在这里
type GameConfig struct {
	Mode               types.GameMode           `yaml:"mode"`               // classroom / unlimited，默认 classroom
	QuestionLimit      int                      `yaml:"questionLimit"`      // 课堂模式题量，默认 10
	Difficulty         types.Difficulty         `yaml:"difficulty"`         // Easy / Medium / Hard，默认 Easy
	ContinuationPolicy types.ContinuationPolicy `yaml:"continuationPolicy"` // strict / lenient，默认 strict
	FeedbackDelay      float64                  `yaml:"feedbackDelay"`      // 反馈等待（秒），默认 2
	QuestionFile       string                   `yaml:"questionFile"`       // 题库路径，data/ 开头时从嵌入资源读取

	Scroll  ScrollConfig `yaml:"scroll"`
	Lanes   LaneConfig   `yaml:"lanes"`
	Player  PlayerConfig `yaml:"player"`
	Answers AnswerConfig `yaml:"answers"`
	Colors  ColorConfig  `yaml:"colors"`
}

// ScrollConfig 路面滚动配置
type ScrollConfig struct {
	Speed       float64       `yaml:"speed"`       // 滚动速度
	Direction   types.Vector2 `yaml:"direction"`   // 滚动方向（加载时归一化），默认 (-1, 0)
	AutoStart   bool          `yaml:"autoStart"`   // 欢迎界面时路面是否也滚动
	AnswerScale float64       `yaml:"answerScale"` // 答案组水平位移倍率，默认 900
}

// LaneConfig 车道配置
type LaneConfig struct {
	Default types.Lane `yaml:"default"` // 开局所在车道，默认 middle
	Anchors []float64  `yaml:"anchors"` // 三条车道中心的 Y 坐标（从上到下）
}

// PlayerConfig 玩家车辆配置
type PlayerConfig struct {
	X      float64 `yaml:"x"`      // 车辆中心 X 坐标
	Width  float64 `yaml:"width"`  // 碰撞盒宽
	Height float64 `yaml:"height"` // 碰撞盒高
}

// AnswerConfig 答案区域配置
type AnswerConfig struct {
	StartX float64 `yaml:"startX"` // 每题开始时答案组中心 X 坐标
	Width  float64 `yaml:"width"`  // 单个答案区域宽
	Height float64 `yaml:"height"` // 单个答案区域高
}

// ColorConfig 颜色配置（#RRGGBB 或 #RRGGBBAA）
type ColorConfig struct {
	Road    string `yaml:"road"`
	Stripe  string `yaml:"stripe"`
	Player  string `yaml:"player"`
	Default string `yaml:"default"` // 未作答的答案颜色
	Correct string `yaml:"correct"` // 正确答案颜色
	Wrong   string `yaml:"wrong"`   // 撞上的错误答案颜色
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	cfg := newPresetGameConfig()
	applyGameDefaults(cfg)
	return cfg
}

// LoadGameConfig 从YAML文件加载游戏配置
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML数据、应用默认值并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := newPresetGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyGameDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPresetGameConfig 预设零值无法表达的默认值（车道零值是 top，默认应为 middle）
func newPresetGameConfig() *GameConfig {
	return &GameConfig{
		Lanes: LaneConfig{Default: types.LaneMiddle},
	}
}

// applyGameDefaults 为缺失的可选字段设置默认值
func applyGameDefaults(cfg *GameConfig) {
	if cfg.QuestionLimit == 0 {
		cfg.QuestionLimit = DefaultQuestionLimit
	}
	if cfg.FeedbackDelay == 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	if cfg.QuestionFile == "" {
		cfg.QuestionFile = DefaultQuestionFile
	}

	if cfg.Scroll.Speed == 0 {
		cfg.Scroll.Speed = DefaultScrollSpeed
	}
	if cfg.Scroll.Direction == (types.Vector2{}) {
		cfg.Scroll.Direction = types.Vector2{X: -1, Y: 0}
	}
	cfg.Scroll.Direction = cfg.Scroll.Direction.Normalized()
	if cfg.Scroll.AnswerScale == 0 {
		cfg.Scroll.AnswerScale = DefaultAnswerScale
	}

	if len(cfg.Lanes.Anchors) == 0 {
		cfg.Lanes.Anchors = []float64{150, 300, 450}
	}

	if cfg.Player.X == 0 {
		cfg.Player.X = 160
	}
	if cfg.Player.Width == 0 {
		cfg.Player.Width = 80
	}
	if cfg.Player.Height == 0 {
		cfg.Player.Height = 50
	}

	if cfg.Answers.StartX == 0 {
		cfg.Answers.StartX = 1000
	}
	if cfg.Answers.Width == 0 {
		cfg.Answers.Width = 180
	}
	if cfg.Answers.Height == 0 {
		cfg.Answers.Height = 130
	}

	if cfg.Colors.Road == "" {
		cfg.Colors.Road = "#3C3C46"
	}
	if cfg.Colors.Stripe == "" {
		cfg.Colors.Stripe = "#F0D264"
	}
	if cfg.Colors.Player == "" {
		cfg.Colors.Player = "#2196F3"
	}
	if cfg.Colors.Default == "" {
		cfg.Colors.Default = "#FFFFFF"
	}
	if cfg.Colors.Correct == "" {
		cfg.Colors.Correct = "#4CAF50"
	}
	if cfg.Colors.Wrong == "" {
		cfg.Colors.Wrong = "#F44336"
	}
}

// Validate 校验配置的完整性和合法性
func (cfg *GameConfig) Validate() error {
	if cfg.Mode == types.GameModeClassroom && cfg.QuestionLimit < 1 {
		return fmt.Errorf("questionLimit must be at least 1 in classroom mode, got %d", cfg.QuestionLimit)
	}
	if cfg.FeedbackDelay < 0 {
		return fmt.Errorf("feedbackDelay cannot be negative, got %v", cfg.FeedbackDelay)
	}
	if cfg.Scroll.Speed < 0 {
		return fmt.Errorf("scroll.speed cannot be negative, got %v", cfg.Scroll.Speed)
	}
	if !cfg.Lanes.Default.Valid() {
		return fmt.Errorf("lanes.default is not a valid lane: %v", cfg.Lanes.Default)
	}
	if len(cfg.Lanes.Anchors) != types.LaneCount {
		return fmt.Errorf("lanes.anchors must have exactly %d entries, got %d", types.LaneCount, len(cfg.Lanes.Anchors))
	}
	for i := 1; i < len(cfg.Lanes.Anchors); i++ {
		if cfg.Lanes.Anchors[i] <= cfg.Lanes.Anchors[i-1] {
			return fmt.Errorf("lanes.anchors must be strictly increasing (top to bottom), got %v", cfg.Lanes.Anchors)
		}
	}
	if cfg.Player.Width < 0 || cfg.Player.Height < 0 {
		return fmt.Errorf("player size cannot be negative, got %vx%v", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Answers.Width <= 0 || cfg.Answers.Height <= 0 {
		return fmt.Errorf("answers size must be positive, got %vx%v", cfg.Answers.Width, cfg.Answers.Height)
	}

	for name, value := range map[string]string{
		"road":    cfg.Colors.Road,
		"stripe":  cfg.Colors.Stripe,
		"player":  cfg.Colors.Player,
		"default": cfg.Colors.Default,
		"correct": cfg.Colors.Correct,
		"wrong":   cfg.Colors.Wrong,
	} {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}

	return nil
}

// LaneAnchor 返回车道中心的 Y 坐标
func (cfg *GameConfig) LaneAnchor(lane types.Lane) float64 {
	if !lane.Valid() || int(lane) >= len(cfg.Lanes.Anchors) {
		return 0
	}
	return cfg.Lanes.Anchors[lane]
}

// ParseHexColor 解析 #RRGGBB / #RRGGBBAA 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB or #RRGGBBAA)", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustColor 解析已校验过的颜色，失败时返回不透明白色
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
