package config

import (
	"fmt"
	"strings"

	"github.com/decker502/lanequiz/pkg/types"
	"gopkg.in/yaml.v3"
)

// QuestionDocument 题库文件结构
// 只有一个数组字段；JSON 是 YAML 的子集，两种格式都可以直接解析
type QuestionDocument struct {
	Questions []QuestionRecord `yaml:"questions"`
}

// QuestionRecord 单道题目
type QuestionRecord struct {
	QuestionText string         `yaml:"questionText"` // 题干
	Options      []OptionRecord `yaml:"options"`      // 三个有序选项（上、中、下车道）
	Difficulty   string         `yaml:"difficulty"`   // Easy|Medium|Hard，大小写不敏感
}

// OptionRecord 单个选项
type OptionRecord struct {
	AnswerText string `yaml:"answerText"`
	IsCorrect  bool   `yaml:"isCorrect"`
}

// ParseQuestionDocument 解析题库数据
// 数据为空、格式错误或缺少 questions 字段时返回错误；逐题校验由调用方决定如何处理
func ParseQuestionDocument(data []byte) (*QuestionDocument, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("question data is empty")
	}

	var doc QuestionDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse question data: %w", err)
	}

	if doc.Questions == nil {
		return nil, fmt.Errorf("question data has no questions array")
	}
	return &doc, nil
}

// Validate 校验单道题目：题干非空、恰好三个选项、恰好一个正确选项、难度合法
func (r *QuestionRecord) Validate() (types.Difficulty, error) {
	if strings.TrimSpace(r.QuestionText) == "" {
		return 0, fmt.Errorf("questionText is required")
	}
	if len(r.Options) != types.LaneCount {
		return 0, fmt.Errorf("expected %d options, got %d", types.LaneCount, len(r.Options))
	}

	correct := 0
	for _, opt := range r.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return 0, fmt.Errorf("expected exactly one correct option, got %d", correct)
	}

	d, err := types.ParseDifficulty(r.Difficulty)
	if err != nil {
		return 0, err
	}
	return d, nil
}
