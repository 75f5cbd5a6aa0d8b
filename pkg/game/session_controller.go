package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/ecs"
	"github.com/decker502/lanequiz/pkg/systems"
	"github.com/decker502/lanequiz/pkg/types"
	"github.com/google/uuid"
)

// SessionPhase 会话阶段
type SessionPhase int

const (
	// PhaseIdle 欢迎界面，没有进行中的对局
	PhaseIdle SessionPhase = iota
	// PhasePlaying 对局进行中
	PhasePlaying
)

// String 返回阶段名
func (p SessionPhase) String() string {
	if p == PhasePlaying {
		return "playing"
	}
	return "idle"
}

// OptionView 单个答案区域的只读视图
type OptionView struct {
	Lane   types.Lane
	Text   string
	State  components.AnswerState
	X, Y   float64
	Width  float64
	Height float64
}

// SessionView 提供给渲染层的只读快照
type SessionView struct {
	Phase     SessionPhase
	SessionID string
	Mode      types.GameMode

	Difficulty   types.Difficulty
	ScrollOffset types.Vector2
	Lane         types.Lane
	PlayerX      float64
	PlayerY      float64

	QuestionText  string
	Options       [types.LaneCount]OptionView
	ProgressLabel string // 课堂模式下形如 "Question 2/10"，无限模式为空

	IsScrolling       bool
	IsAnswered        bool
	IsAnsweredCorrect bool
	QuestionNumber    int
	QuestionLimit     int
	AnsweredCount     int
	CorrectCount      int

	ScoringState      systems.ScoringState
	FeedbackRemaining float64
}

// SessionController 会话控制器
//
// 组合滚动、车道、碰撞、计分各系统，响应宿主的开局/结束/换道事件，
// 并由宿主每帧调用 Tick(dt) 推进。只能在单一线程中使用。
type SessionController struct {
	config    *config.GameConfig
	bank      *QuestionBank
	presenter Presenter

	entityManager *ecs.EntityManager
	playerID      ecs.EntityID

	scroll    *systems.ScrollSystem
	lanes     *systems.LaneTracker
	answers   *systems.AnswerGroupSystem
	collision *systems.CollisionSystem
	scoring   *systems.ScoringSystem

	round         components.RoundStateComponent
	phase         SessionPhase
	questionText  string
	progressLabel string
}

// NewSessionController 创建会话控制器
//
// 参数：
//   - cfg: 游戏配置
//   - bank: 已加载的题库；创建时按 cfg.Difficulty 过滤（题目为空只记录日志）
//   - presenter: 呈现层，可为 nil（此时 StartGame 返回 ErrMissingDependency）
func NewSessionController(cfg *config.GameConfig, bank *QuestionBank, presenter Presenter) *SessionController {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	em := ecs.NewEntityManager()
	c := &SessionController{
		config:        cfg,
		bank:          bank,
		presenter:     presenter,
		entityManager: em,
		scroll:        systems.NewScrollSystem(cfg.Scroll.Speed, cfg.Scroll.Direction),
		lanes:         systems.NewLaneTracker(cfg.Lanes.Default),
		answers:       systems.NewAnswerGroupSystem(em, cfg),
		collision:     systems.NewCollisionSystem(em),
		phase:         PhaseIdle,
	}

	c.scoring = systems.NewScoringSystem(cfg, &c.round, systems.ScoringHandlers{
		OnNextQuestion: c.nextQuestion,
		OnSessionEnd:   c.EndGame,
	})
	if !cfg.Scroll.AutoStart {
		c.scroll.Stop()
	}

	c.playerID = em.CreateEntity()
	ecs.AddComponent(em, c.playerID, &components.PositionComponent{
		X: cfg.Player.X,
		Y: cfg.LaneAnchor(c.lanes.Current()),
	})
	ecs.AddComponent(em, c.playerID, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	ecs.AddComponent(em, c.playerID, &components.PlayerComponent{Lane: c.lanes.Current()})
	c.round.CurrentLane = c.lanes.Current()

	if bank != nil {
		_ = bank.FilterByDifficulty(cfg.Difficulty)
	}
	return c
}

// SetPresenter 设置呈现层（宿主在创建场景后注入）
func (c *SessionController) SetPresenter(p Presenter) {
	c.presenter = p
}

// StartGame 开始一局
//
// 题号重置为1、车道回到默认、清空得分、切换到答题界面，然后出第一题。
// 缺少呈现层或题库时记录日志并返回 ErrMissingDependency，不开局。
func (c *SessionController) StartGame() error {
	if c.presenter == nil {
		log.Printf("[SessionController] ERROR: cannot start game, presenter is not set")
		return fmt.Errorf("%w: presenter is not set", ErrMissingDependency)
	}
	if c.bank == nil {
		log.Printf("[SessionController] ERROR: cannot start game, question bank is not set")
		return fmt.Errorf("%w: question bank is not set", ErrMissingDependency)
	}

	c.round = components.RoundStateComponent{
		SessionID:             uuid.NewString(),
		CurrentQuestionNumber: 1,
	}
	c.round.CurrentLane = c.lanes.Reset()
	c.syncPlayer()
	c.scroll.Reset()
	c.scroll.Start()
	c.scoring.Reset()
	c.progressLabel = ""
	c.phase = PhasePlaying

	log.Printf("[SessionController] Session %s started (mode=%v, difficulty=%v)",
		c.round.SessionID, c.scoring.Mode(), c.bank.Difficulty())
	c.presenter.ShowPlaying()

	return c.ResetAnswers()
}

// ResetAnswers 重置答案组和每题状态，然后出下一题
func (c *SessionController) ResetAnswers() error {
	c.answers.Reset()
	c.round.ResetPerQuestion()
	c.questionText = ""
	return c.ShowQuestion()
}

// nextQuestion 反馈结束后出下一题，出题失败则结束本局
func (c *SessionController) nextQuestion() {
	if err := c.ResetAnswers(); err != nil {
		log.Printf("[SessionController] ERROR: cannot continue session %s: %v", c.round.SessionID, err)
		c.EndGame()
	}
}

// ShowQuestion 抽题并绑定到三条车道
//
// 抽题失败或题目不合法时记录日志、保持不滚动，界面停留在当前状态。
func (c *SessionController) ShowQuestion() error {
	q, err := c.bank.DrawNext()
	if err != nil {
		c.round.IsScrolling = false
		log.Printf("[SessionController] ERROR: cannot show question: %v", err)
		return err
	}

	if len(q.Options) < types.LaneCount {
		c.round.IsScrolling = false
		log.Printf("[SessionController] ERROR: question %q has %d options", q.Text, len(q.Options))
		return fmt.Errorf("%w: question %q has %d options, need %d", ErrInvalidQuestion, q.Text, len(q.Options), types.LaneCount)
	}

	bindings := make([]systems.AnswerBinding, types.LaneCount)
	for i := range bindings {
		bindings[i] = systems.AnswerBinding{Text: q.Options[i].Text, IsCorrect: q.Options[i].IsCorrect}
	}
	if err := c.answers.Bind(bindings); err != nil {
		c.round.IsScrolling = false
		log.Printf("[SessionController] ERROR: cannot bind answers: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	c.round.PerLaneCorrectness = c.answers.Correctness()
	c.questionText = q.Text
	log.Printf("[SessionController] Question %d: %q (correct lane %v)",
		c.round.CurrentQuestionNumber, q.Text, types.Lane(q.CorrectIndex()))
	c.round.IsScrolling = true
	c.scoring.BeginQuestion()

	if c.scoring.Mode() == types.GameModeClassroom {
		c.progressLabel = fmt.Sprintf("Question %d/%d", c.round.CurrentQuestionNumber, c.scoring.QuestionLimit())
	} else {
		c.progressLabel = ""
	}
	return nil
}

// EndGame 结束本局并回到欢迎界面（可重复调用）
func (c *SessionController) EndGame() {
	c.scoring.Stop()
	c.round.IsScrolling = false
	c.round.IsAnswered = false
	if !c.config.Scroll.AutoStart {
		c.scroll.Stop()
	}

	if c.phase == PhasePlaying {
		log.Printf("[SessionController] Session %s ended: %d/%d correct",
			c.round.SessionID, c.round.CorrectCount, c.round.AnsweredCount)
	}
	c.phase = PhaseIdle

	if c.presenter != nil {
		c.presenter.ShowWelcome()
	}
}

// ChangeLane 换道：goingUp 为 true 时向上
func (c *SessionController) ChangeLane(goingUp bool) types.Lane {
	c.round.CurrentLane = c.lanes.Move(goingUp)
	c.syncPlayer()
	return c.round.CurrentLane
}

// syncPlayer 将玩家实体移动到当前车道中心
func (c *SessionController) syncPlayer() {
	lane := c.lanes.Current()
	if pos, ok := ecs.GetComponent[*components.PositionComponent](c.entityManager, c.playerID); ok {
		pos.X = c.config.Player.X
		pos.Y = c.config.LaneAnchor(lane)
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](c.entityManager, c.playerID); ok {
		player.Lane = lane
	}
}

// maxTickDelta 单次 Tick 最多推进的时间（秒），超出部分丢弃
const maxTickDelta = 1.0

// Tick 每帧推进
//
// 顺序：反馈计时 -> 滚动与答案组移动 -> 碰撞检测。
// 滚动和碰撞只在滚动中且未作答时进行；反馈计时总是推进。
// 较长的 deltaTime 会被拆成若干步，每步答案组的位移不超过碰撞盒宽度之和的一半，
// 保证答案组不会整个穿过玩家。
func (c *SessionController) Tick(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	deltaTime = math.Min(deltaTime, maxTickDelta)

	for deltaTime > 0 {
		step := math.Min(deltaTime, c.maxStep())
		c.step(step)
		deltaTime -= step
	}
}

// maxStep 返回不会穿透的最大步长
func (c *SessionController) maxStep() float64 {
	rate := math.Abs(c.scroll.LateralDisplacement(1) * c.config.Scroll.AnswerScale)
	span := c.config.Player.Width + c.config.Answers.Width
	if rate <= 0 || span <= 0 {
		return math.Inf(1)
	}
	return span / (2 * rate)
}

func (c *SessionController) step(deltaTime float64) {
	c.scoring.Update(deltaTime)

	if c.phase == PhaseIdle {
		c.scroll.Tick(deltaTime)
		return
	}

	if !c.round.IsScrolling || c.round.IsAnswered {
		return
	}

	c.scroll.Tick(deltaTime)
	c.answers.Translate(c.scroll.LateralDisplacement(deltaTime) * c.config.Scroll.AnswerScale)

	hit, ok := c.collision.Resolve(c.playerID)
	if !ok {
		return
	}
	c.answers.Reveal(hit)
	c.scoring.OnCollision(hit)
}

// SetDifficulty 切换难度并重新过滤题库
func (c *SessionController) SetDifficulty(d types.Difficulty) error {
	c.config.Difficulty = d
	if c.bank == nil {
		return fmt.Errorf("%w: question bank is not set", ErrMissingDependency)
	}
	return c.bank.FilterByDifficulty(d)
}

// SetMode 切换模式；课堂模式题量必须为正数
func (c *SessionController) SetMode(mode types.GameMode, questionLimit int) error {
	if mode == types.GameModeClassroom && questionLimit < 1 {
		return fmt.Errorf("question limit must be positive in classroom mode, got %d", questionLimit)
	}
	c.config.Mode = mode
	if questionLimit > 0 {
		c.config.QuestionLimit = questionLimit
	}
	c.scoring.SetMode(mode, c.config.QuestionLimit)
	log.Printf("[SessionController] Mode set to %v (limit %d)", mode, c.config.QuestionLimit)
	return nil
}

// SetScrollSpeed 设置滚动速度
func (c *SessionController) SetScrollSpeed(speed float64) {
	c.scroll.SetSpeed(speed)
}

// SetScrollDirection 设置滚动方向（会被归一化）
func (c *SessionController) SetScrollDirection(direction types.Vector2) {
	c.scroll.SetDirection(direction)
}

// Phase 返回会话阶段
func (c *SessionController) Phase() SessionPhase {
	return c.phase
}

// Round 返回回合状态的副本
func (c *SessionController) Round() components.RoundStateComponent {
	return c.round
}

// ScoringState 返回计分状态机状态
func (c *SessionController) ScoringState() systems.ScoringState {
	return c.scoring.State()
}

// FeedbackPending 是否有待触发的反馈计时
func (c *SessionController) FeedbackPending() bool {
	return c.scoring.TimerPending()
}

// Config 返回游戏配置
func (c *SessionController) Config() *config.GameConfig {
	return c.config
}

// Bank 返回题库
func (c *SessionController) Bank() *QuestionBank {
	return c.bank
}

// View 返回当前状态快照
func (c *SessionController) View() SessionView {
	view := SessionView{
		Phase:             c.phase,
		SessionID:         c.round.SessionID,
		Mode:              c.scoring.Mode(),
		Difficulty:        c.config.Difficulty,
		ScrollOffset:      c.scroll.Offset(),
		Lane:              c.round.CurrentLane,
		QuestionText:      c.questionText,
		ProgressLabel:     c.progressLabel,
		IsScrolling:       c.round.IsScrolling,
		IsAnswered:        c.round.IsAnswered,
		IsAnsweredCorrect: c.round.IsAnsweredCorrect,
		QuestionNumber:    c.round.CurrentQuestionNumber,
		QuestionLimit:     c.scoring.QuestionLimit(),
		AnsweredCount:     c.round.AnsweredCount,
		CorrectCount:      c.round.CorrectCount,
		ScoringState:      c.scoring.State(),
	}
	if c.FeedbackPending() {
		view.FeedbackRemaining = c.scoring.TimerRemaining()
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](c.entityManager, c.playerID); ok {
		view.PlayerX = pos.X
		view.PlayerY = pos.Y
	}

	for _, lane := range types.AllLanes {
		opt := OptionView{
			Lane:   lane,
			Width:  c.config.Answers.Width,
			Height: c.config.Answers.Height,
		}
		if answer := c.answers.Answer(lane); answer != nil {
			opt.Text = answer.Text
			opt.State = answer.State
		}
		if pos := c.answers.Position(lane); pos != nil {
			opt.X = pos.X
			opt.Y = pos.Y
		}
		view.Options[lane] = opt
	}
	return view
}
