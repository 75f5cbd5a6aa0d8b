package components

import "github.com/decker502/lanequiz/pkg/types"

// RoundStateComponent 一局游戏的回合状态
//
// 由 SessionController 持有；碰撞结果和 ScoringSystem 会修改其中的作答与进度字段。
// StartGame 时整体重置，ResetAnswers 只重置每题字段。
type RoundStateComponent struct {
	SessionID string // 本局ID（日志用）

	CurrentLane           types.Lane
	IsScrolling           bool
	IsAnswered            bool
	IsAnsweredCorrect     bool
	CurrentQuestionNumber int // 从1开始

	// PerLaneCorrectness 当前题目每条车道的正误（顺序：上、中、下）
	PerLaneCorrectness [types.LaneCount]bool

	// 本局得分（只在内存中，不持久化）
	AnsweredCount int
	CorrectCount  int
}

// ResetPerQuestion 清除每题的作答字段
func (r *RoundStateComponent) ResetPerQuestion() {
	r.IsAnswered = false
	r.IsAnsweredCorrect = false
	r.PerLaneCorrectness = [types.LaneCount]bool{}
}
