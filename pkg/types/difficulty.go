package types

import (
	"fmt"
	"strings"
)

// Difficulty 题目难度
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String 返回难度标签（与题库文件中的写法一致）
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty 解析难度标签，比较时忽略大小写
func ParseDifficulty(s string) (Difficulty, error) {
	label := strings.TrimSpace(s)
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if strings.EqualFold(label, d.String()) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q (want Easy, Medium or Hard)", s)
}

// MarshalYAML 以标签形式写入 YAML（设置文件使用）
func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML 从标签读取难度
func (d *Difficulty) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var label string
	if err := unmarshal(&label); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(label)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
