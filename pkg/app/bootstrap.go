package app

import (
	"fmt"
	"log"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/embedded"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
	"github.com/decker502/lanequiz/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 默认游戏配置（嵌入资源）
const DefaultConfigPath = "data/config/game.yaml"

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "lanequiz"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置路径，为空时使用 DefaultConfigPath
	ConfigPath string
	// QuestionPath 覆盖配置中的题库路径
	QuestionPath string
	// Mode 覆盖模式（classroom / unlimited），为空则使用保存的偏好
	Mode string
	// Difficulty 覆盖难度（Easy / Medium / Hard），为空则使用保存的偏好
	Difficulty string
	// QuestionLimit 覆盖课堂模式题量，0 表示不覆盖
	QuestionLimit int
	// AppName gdata 存储名，为空时使用 DefaultAppName
	AppName string
	// NoPersist 不打开 gdata 存储（偏好只保存在内存）
	NoPersist bool
}

// Runtime 两个宿主（ebiten 窗口、终端界面）共用的启动结果
type Runtime struct {
	GameConfig *config.GameConfig
	Bank       *game.QuestionBank
	Settings   *game.SettingsManager
}

// Bootstrap 加载配置、偏好设置和题库
//
// 优先级：命令行参数 > 保存的偏好 > game.yaml。
// 调用此函数前，使用嵌入资源的路径需要先调用 embedded.Init()。
func Bootstrap(cfg Config) (*Runtime, error) {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	gameConfig, err := loadGameConfig(configPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载游戏配置: %s", configPath)

	settings, _ := game.NewSettingsManager(openStorage(cfg))
	if settings.HasSaved() {
		settings.ApplyTo(gameConfig)
	} else {
		settings.SeedFrom(gameConfig)
	}

	if err := applyOverrides(gameConfig, settings, cfg); err != nil {
		return nil, err
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	bank := game.NewQuestionBank(nil)
	if err := bank.LoadFile(gameConfig.QuestionFile); err != nil {
		return nil, fmt.Errorf("题库加载失败: %w", err)
	}

	log.Printf("[App] Mode=%v Difficulty=%v QuestionLimit=%d Policy=%v",
		gameConfig.Mode, gameConfig.Difficulty, gameConfig.QuestionLimit, gameConfig.ContinuationPolicy)

	return &Runtime{
		GameConfig: gameConfig,
		Bank:       bank,
		Settings:   settings,
	}, nil
}

// loadGameConfig 加载游戏配置；"data/" 开头且存在于嵌入资源中时从嵌入资源读取，否则读磁盘
func loadGameConfig(path string) (*config.GameConfig, error) {
	if embedded.IsEmbeddedPath(path) && !embedded.IsInitialized() {
		log.Printf("[App] Embedded data not initialized, reading %s from disk", path)
	}
	if !embedded.IsEmbeddedPath(path) || !embedded.Exists(path) {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		return cfg, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败 %s: %w", path, err)
	}
	return cfg, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置管理器进入降级模式）
func openStorage(cfg Config) *gdata.Manager {
	if cfg.NoPersist {
		return nil
	}
	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	} else if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage directory: %s", path)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// applyOverrides 应用命令行覆盖，并同步到偏好设置（不立即保存）
func applyOverrides(gameConfig *config.GameConfig, settings *game.SettingsManager, cfg Config) error {
	if cfg.QuestionPath != "" {
		gameConfig.QuestionFile = cfg.QuestionPath
	}
	if cfg.Mode != "" {
		mode, err := types.ParseGameMode(cfg.Mode)
		if err != nil {
			return err
		}
		gameConfig.Mode = mode
		settings.SetMode(mode)
	}
	if cfg.Difficulty != "" {
		d, err := types.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return err
		}
		gameConfig.Difficulty = d
		settings.SetDifficulty(d)
	}
	if cfg.QuestionLimit > 0 {
		gameConfig.QuestionLimit = cfg.QuestionLimit
		settings.SetQuestionLimit(cfg.QuestionLimit)
	}
	return nil
}
