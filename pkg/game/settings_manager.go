package game

import (
	"fmt"
	"log"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxQuestionLimit 课堂模式题量上限（设置界面可调范围）
const MaxQuestionLimit = 50

// GameSettings 玩家偏好设置
// 覆盖 game.yaml 中的对应字段，启动时通过 ApplyTo 合并到配置
type GameSettings struct {
	Difficulty    types.Difficulty `yaml:"difficulty"`    // 上次选择的难度
	Mode          types.GameMode   `yaml:"mode"`          // 上次选择的模式
	QuestionLimit int              `yaml:"questionLimit"` // 课堂模式题量 1 ~ MaxQuestionLimit

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏

	// 上一局成绩，仅在本次进程内显示，不写入存储
	LastCorrect  int `yaml:"-"`
	LastAnswered int `yaml:"-"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Difficulty:    types.DifficultyEasy,
		Mode:          types.GameModeClassroom,
		QuestionLimit: config.DefaultQuestionLimit,
		Fullscreen:    false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
	saved        bool           // 是否从存储中读到了设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.saved = false

	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.QuestionLimit = clampQuestionLimit(loaded.QuestionLimit)

	sm.settings = loaded
	sm.saved = true
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetDifficulty 设置难度
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetDifficulty(d types.Difficulty) {
	sm.settings.Difficulty = d
}

// SetMode 设置游戏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMode(mode types.GameMode) {
	sm.settings.Mode = mode
}

// SetQuestionLimit 设置课堂模式题量
//
// 题量会被限制在 1 ~ MaxQuestionLimit 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetQuestionLimit(limit int) {
	sm.settings.QuestionLimit = clampQuestionLimit(limit)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// RecordResult 记录上一局成绩（只保存在内存中）
func (sm *SettingsManager) RecordResult(correct, answered int) {
	sm.settings.LastCorrect = correct
	sm.settings.LastAnswered = answered
}

// HasSaved 返回上次 Load 是否读到了已保存的设置
func (sm *SettingsManager) HasSaved() bool {
	return sm.saved
}

// SeedFrom 用游戏配置初始化偏好（首次启动、还没有保存过设置时）
func (sm *SettingsManager) SeedFrom(cfg *config.GameConfig) {
	sm.settings.Difficulty = cfg.Difficulty
	sm.settings.Mode = cfg.Mode
	sm.settings.QuestionLimit = clampQuestionLimit(cfg.QuestionLimit)
}

// ApplyTo 将偏好设置合并到游戏配置
func (sm *SettingsManager) ApplyTo(cfg *config.GameConfig) {
	cfg.Difficulty = sm.settings.Difficulty
	cfg.Mode = sm.settings.Mode
	cfg.QuestionLimit = sm.settings.QuestionLimit
}

// clampQuestionLimit 将题量限制在 1 ~ MaxQuestionLimit 范围内
func clampQuestionLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxQuestionLimit {
		return MaxQuestionLimit
	}
	return limit
}
