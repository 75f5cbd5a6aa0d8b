package types

import (
	"fmt"
	"strings"
)

// GameMode 游戏模式
//
//   - GameModeClassroom 课堂模式：固定题量，答完即结束
//   - GameModeUnlimited 无限模式：没有终止条件，一直出下一题
type GameMode int

const (
	GameModeClassroom GameMode = iota
	GameModeUnlimited
)

// String 返回模式名称
func (m GameMode) String() string {
	switch m {
	case GameModeClassroom:
		return "classroom"
	case GameModeUnlimited:
		return "unlimited"
	default:
		return fmt.Sprintf("GameMode(%d)", int(m))
	}
}

// ParseGameMode 解析模式名称（大小写不敏感）
func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classroom":
		return GameModeClassroom, nil
	case "unlimited":
		return GameModeUnlimited, nil
	}
	return GameModeClassroom, fmt.Errorf("unknown game mode %q (want classroom or unlimited)", s)
}

// MarshalYAML 以名称形式写入 YAML
func (m GameMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML 从名称读取模式
func (m *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
