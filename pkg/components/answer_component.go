package components

import "github.com/decker502/lanequiz/pkg/types"

// AnswerState 答案区域的显示状态（由渲染层映射为颜色）
type AnswerState int

const (
	// AnswerStateNeutral 未作答，默认颜色
	AnswerStateNeutral AnswerState = iota
	// AnswerStateCorrect 作答后显示为正确
	AnswerStateCorrect
	// AnswerStateWrong 玩家撞上的错误答案
	AnswerStateWrong
)

// String 返回状态名
func (s AnswerState) String() string {
	switch s {
	case AnswerStateCorrect:
		return "correct"
	case AnswerStateWrong:
		return "wrong"
	default:
		return "neutral"
	}
}

// AnswerComponent 标识实体为某条车道上的答案区域
//
// 三个答案实体作为一个整体随滚动水平移动，
// 每题开始时由 SessionController 重新绑定文本和正误。
type AnswerComponent struct {
	Lane      types.Lane  // 所在车道
	Text      string      // 选项文本
	IsCorrect bool        // 是否为正确答案
	State     AnswerState // 当前显示状态
}
