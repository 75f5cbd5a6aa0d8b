package game

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/embedded"
	"github.com/decker502/lanequiz/pkg/types"
)

// Answer 一个选项（加载后不可变）
type Answer struct {
	Text      string
	IsCorrect bool
}

// Question 一道题目：题干、三个有序选项、难度
type Question struct {
	Text       string
	Options    []Answer
	Difficulty types.Difficulty
}

// CorrectIndex 返回正确选项的下标，没有时返回 -1
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

// RandomSource 均匀随机整数来源，返回 [0, n)
type RandomSource interface {
	Intn(n int) int
}

// QuestionBank 题库
//
// 职责：
//   - 启动时一次性加载全部题目（逐题校验）
//   - 按难度过滤；切换难度只重新过滤，不重新加载
//   - 不重复抽题：一轮（过滤后题目数）之内同一题不会出现两次
type QuestionBank struct {
	all        []Question
	filtered   []Question
	shown      map[int]struct{}
	difficulty types.Difficulty
	rng        RandomSource
}

// NewQuestionBank 创建空题库
//
// 参数：
//   - rng: 随机数来源，为 nil 时使用 math/rand 的全局来源
func NewQuestionBank(rng RandomSource) *QuestionBank {
	if rng == nil {
		rng = globalRandom{}
	}
	return &QuestionBank{
		shown: make(map[int]struct{}),
		rng:   rng,
	}
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int { return rand.Intn(n) }

// Load 解析题库数据并替换全部题目
//
// 数据为空或格式错误时返回 ErrData，题库保持为空。
// 不合法的题目被丢弃并记录日志；一题都不剩时同样返回 ErrData。
func (qb *QuestionBank) Load(data []byte) error {
	qb.clear()

	doc, err := config.ParseQuestionDocument(data)
	if err != nil {
		log.Printf("[QuestionBank] ERROR: %v", err)
		return fmt.Errorf("%w: %v", ErrData, err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for i := range doc.Questions {
		record := &doc.Questions[i]
		difficulty, err := record.Validate()
		if err != nil {
			log.Printf("[QuestionBank] Warning: skipping question %d: %v", i, fmt.Errorf("%w: %v", ErrInvalidQuestion, err))
			continue
		}

		options := make([]Answer, len(record.Options))
		for j, opt := range record.Options {
			options[j] = Answer{Text: opt.AnswerText, IsCorrect: opt.IsCorrect}
		}
		questions = append(questions, Question{
			Text:       record.QuestionText,
			Options:    options,
			Difficulty: difficulty,
		})
	}

	if len(questions) == 0 {
		log.Printf("[QuestionBank] ERROR: no valid questions in %d records", len(doc.Questions))
		return fmt.Errorf("%w: no valid questions in %d records", ErrData, len(doc.Questions))
	}

	qb.all = questions
	log.Printf("[QuestionBank] Loaded %d questions (%d skipped)", len(questions), len(doc.Questions)-len(questions))
	return nil
}

// LoadFile 从文件加载题库
//
// "data/" 开头且存在于嵌入资源中的路径从嵌入资源读取，其余从磁盘读取。
func (qb *QuestionBank) LoadFile(path string) error {
	var (
		data []byte
		err  error
	)
	if embedded.IsEmbeddedPath(path) && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		qb.clear()
		log.Printf("[QuestionBank] ERROR: failed to read %s: %v", path, err)
		return fmt.Errorf("%w: failed to read %s: %v", ErrData, path, err)
	}

	if err := qb.Load(data); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// clear 清空所有题目和抽题记录
func (qb *QuestionBank) clear() {
	qb.all = nil
	qb.filtered = qb.filtered[:0]
	clear(qb.shown)
}

// FilterByDifficulty 按难度过滤题目并清空抽题记录
//
// 过滤结果为空时记录日志并返回 ErrEmptyPool，需要选择其他难度后才能继续。
func (qb *QuestionBank) FilterByDifficulty(d types.Difficulty) error {
	qb.difficulty = d
	qb.filtered = qb.filtered[:0]
	for _, q := range qb.all {
		if q.Difficulty == d {
			qb.filtered = append(qb.filtered, q)
		}
	}
	clear(qb.shown)

	if len(qb.filtered) == 0 {
		log.Printf("[QuestionBank] ERROR: no questions for difficulty %v", d)
		return fmt.Errorf("%w: no questions for difficulty %v", ErrEmptyPool, d)
	}

	log.Printf("[QuestionBank] Difficulty %v: %d questions", d, len(qb.filtered))
	return nil
}

// DrawNext 抽取下一道不重复的题目
//
// 一轮抽完后清空记录重新开始。随机重试次数上限为题目数，
// 超出上限时按顺序取第一道本轮未出现的题目；
// 只有全部题目都已出现时才清空记录并接受当前下标。
func (qb *QuestionBank) DrawNext() (Question, error) {
	n := len(qb.filtered)
	if n == 0 {
		log.Printf("[QuestionBank] ERROR: draw requested against an empty pool")
		return Question{}, fmt.Errorf("%w: no questions for difficulty %v", ErrEmptyPool, qb.difficulty)
	}

	// 一轮结束，重新开始
	if len(qb.shown) >= n {
		clear(qb.shown)
	}

	index := qb.rng.Intn(n)
	for attempts := 0; qb.isShown(index); attempts++ {
		if attempts >= n {
			index = qb.firstUnshown(index)
			break
		}
		index = qb.rng.Intn(n)
	}

	qb.shown[index] = struct{}{}
	return qb.filtered[index], nil
}

// firstUnshown 返回本轮第一道未出现的题目下标
// 全部出现过时清空记录并返回 fallback
func (qb *QuestionBank) firstUnshown(fallback int) int {
	for i := range qb.filtered {
		if !qb.isShown(i) {
			log.Printf("[QuestionBank] Retry bound reached, taking first unseen index %d", i)
			return i
		}
	}
	log.Printf("[QuestionBank] Warning: every question already shown, resetting shown set")
	clear(qb.shown)
	return fallback
}

func (qb *QuestionBank) isShown(index int) bool {
	_, seen := qb.shown[index]
	return seen
}

// Len 返回全部题目数量
func (qb *QuestionBank) Len() int {
	return len(qb.all)
}

// FilteredLen 返回当前难度的题目数量
func (qb *QuestionBank) FilteredLen() int {
	return len(qb.filtered)
}

// ShownCount 返回本轮已抽过的题目数量
func (qb *QuestionBank) ShownCount() int {
	return len(qb.shown)
}

// Difficulty 返回当前过滤的难度
func (qb *QuestionBank) Difficulty() types.Difficulty {
	return qb.difficulty
}

// CountByDifficulty 返回某难度的题目数量（用于欢迎界面提示）
func (qb *QuestionBank) CountByDifficulty(d types.Difficulty) int {
	count := 0
	for _, q := range qb.all {
		if q.Difficulty == d {
			count++
		}
	}
	return count
}
