package systems

import (
	"log"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/types"
)

// ScoringState 计分状态机的状态
type ScoringState int

const (
	// ScoringAwaitingCollision 等待玩家撞上某个答案
	ScoringAwaitingCollision ScoringState = iota
	// ScoringAnswered 已作答（立即进入反馈等待）
	ScoringAnswered
	// ScoringDelay 反馈等待中
	ScoringDelay
	// ScoringFinalDelay 课堂模式结束前的第二段反馈等待
	ScoringFinalDelay
	// ScoringNextQuestion 已请求下一题
	ScoringNextQuestion
	// ScoringSessionEnd 本局结束
	ScoringSessionEnd
)

// String 返回状态名
func (s ScoringState) String() string {
	switch s {
	case ScoringAwaitingCollision:
		return "awaiting-collision"
	case ScoringAnswered:
		return "answered"
	case ScoringDelay:
		return "scoring-delay"
	case ScoringFinalDelay:
		return "final-delay"
	case ScoringNextQuestion:
		return "next-question"
	case ScoringSessionEnd:
		return "session-end"
	default:
		return "unknown"
	}
}

// ScoringHandlers 状态机对外的回调
type ScoringHandlers struct {
	OnNextQuestion func() // 反馈结束后出下一题
	OnSessionEnd   func() // 本局结束，回到欢迎界面
}

// ScoringSystem 计分与进度状态机
//
// 状态流转：AwaitingCollision -> Answered -> ScoringDelay -> {NextQuestion | FinalDelay -> SessionEnd}
//
// 无限模式每题结束都出下一题；课堂模式题号递增后由 ContinuationPolicy 决定是否继续。
type ScoringSystem struct {
	round    *components.RoundStateComponent
	timer    *DelayTimer
	handlers ScoringHandlers
	state    ScoringState

	mode          types.GameMode
	questionLimit int
	policy        types.ContinuationPolicy
	feedbackDelay float64
}

// NewScoringSystem 创建计分状态机
//
// 参数：
//   - cfg: 游戏配置（模式、题量、继续规则、反馈等待时长）
//   - round: 回合状态，由 SessionController 持有
//   - handlers: 出下一题 / 结束本局的回调
func NewScoringSystem(cfg *config.GameConfig, round *components.RoundStateComponent, handlers ScoringHandlers) *ScoringSystem {
	return &ScoringSystem{
		round:         round,
		timer:         NewDelayTimer("feedback"),
		handlers:      handlers,
		state:         ScoringSessionEnd,
		mode:          cfg.Mode,
		questionLimit: cfg.QuestionLimit,
		policy:        cfg.ContinuationPolicy,
		feedbackDelay: cfg.FeedbackDelay,
	}
}

// SetMode 切换游戏模式（下一局生效）
func (s *ScoringSystem) SetMode(mode types.GameMode, questionLimit int) {
	s.mode = mode
	s.questionLimit = questionLimit
}

// Mode 返回当前模式
func (s *ScoringSystem) Mode() types.GameMode {
	return s.mode
}

// QuestionLimit 返回课堂模式题量
func (s *ScoringSystem) QuestionLimit() int {
	return s.questionLimit
}

// State 返回当前状态
func (s *ScoringSystem) State() ScoringState {
	return s.state
}

// TimerPending 是否有待触发的反馈计时
func (s *ScoringSystem) TimerPending() bool {
	return s.timer.Pending()
}

// TimerRemaining 反馈计时剩余时间（秒）
func (s *ScoringSystem) TimerRemaining() float64 {
	return s.timer.Remaining()
}

// BeginQuestion 新题目开始，回到等待碰撞状态
func (s *ScoringSystem) BeginQuestion() {
	s.state = ScoringAwaitingCollision
}

// Reset 取消计时并回到等待碰撞状态（开局时调用）
func (s *ScoringSystem) Reset() {
	s.timer.Cancel()
	s.state = ScoringAwaitingCollision
}

// Stop 取消计时并进入结束状态（可重复调用）
func (s *ScoringSystem) Stop() {
	s.timer.Cancel()
	s.state = ScoringSessionEnd
}

// OnCollision 处理一次碰撞
//
// 只有在等待碰撞状态下才会生效，每题最多计一次；返回是否被接受。
func (s *ScoringSystem) OnCollision(hit Hit) bool {
	if s.state != ScoringAwaitingCollision {
		return false
	}

	s.state = ScoringAnswered
	s.round.IsAnswered = true
	s.round.IsAnsweredCorrect = hit.IsCorrect
	s.round.AnsweredCount++
	if hit.IsCorrect {
		s.round.CorrectCount++
	}
	log.Printf("[ScoringSystem] Question %d answered on lane %v, correct=%v",
		s.round.CurrentQuestionNumber, hit.Lane, hit.IsCorrect)

	s.state = ScoringDelay
	s.timer.Schedule(s.feedbackDelay, s.onFeedbackElapsed)
	return true
}

// Update 推进反馈计时
func (s *ScoringSystem) Update(deltaTime float64) {
	s.timer.Update(deltaTime)
}

// onFeedbackElapsed 第一段反馈等待结束
func (s *ScoringSystem) onFeedbackElapsed() {
	s.round.CurrentQuestionNumber++

	if s.mode == types.GameModeUnlimited {
		s.nextQuestion()
		return
	}

	if s.policy.ShouldContinue(s.round.IsAnsweredCorrect, s.round.CurrentQuestionNumber, s.questionLimit) {
		s.nextQuestion()
		return
	}

	log.Printf("[ScoringSystem] Classroom session finishing (question %d/%d, correct=%v, policy=%v)",
		s.round.CurrentQuestionNumber-1, s.questionLimit, s.round.IsAnsweredCorrect, s.policy)
	s.state = ScoringFinalDelay
	s.timer.Schedule(s.feedbackDelay, s.endSession)
}

func (s *ScoringSystem) nextQuestion() {
	s.state = ScoringNextQuestion
	if s.handlers.OnNextQuestion != nil {
		s.handlers.OnNextQuestion()
	}
}

// endSession 第二段反馈等待结束，本局结束
func (s *ScoringSystem) endSession() {
	s.state = ScoringSessionEnd
	s.round.IsScrolling = false
	s.round.IsAnswered = false
	if s.handlers.OnSessionEnd != nil {
		s.handlers.OnSessionEnd()
	}
}
