package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/game"
	"github.com/decker502/lanequiz/pkg/types"
)

// 路面文字渲染参数
const (
	defaultColumns = 64
	stripeSpan     = 8 // 一个纹理周期占用的列数
)

// cellStyle 单元格样式
type cellStyle int

const (
	stylePlain cellStyle = iota
	styleStripe
	stylePlayer
	styleNeutral
	styleCorrect
	styleWrong
)

// styles 由游戏配置颜色生成的 lipgloss 样式表
type styles struct {
	byCell  map[cellStyle]lipgloss.Style
	title   lipgloss.Style
	faint   lipgloss.Style
	message lipgloss.Style
}

func newStyles(cfg *config.GameConfig, noColor bool) styles {
	s := styles{
		byCell:  make(map[cellStyle]lipgloss.Style),
		title:   lipgloss.NewStyle().Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
		message: lipgloss.NewStyle().Bold(true),
	}
	s.byCell[stylePlain] = lipgloss.NewStyle()
	if noColor {
		for _, c := range []cellStyle{styleStripe, stylePlayer, styleNeutral, styleCorrect, styleWrong} {
			s.byCell[c] = lipgloss.NewStyle()
		}
		return s
	}
	s.byCell[styleStripe] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Stripe))
	s.byCell[stylePlayer] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Player)).Bold(true)
	s.byCell[styleNeutral] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Default))
	s.byCell[styleCorrect] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Correct)).Bold(true)
	s.byCell[styleWrong] = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Wrong)).Bold(true)
	s.message = s.message.Foreground(lipgloss.Color(cfg.Colors.Wrong))
	return s
}

// answerStyle 答案显示状态对应的单元格样式
func answerStyle(state components.AnswerState) cellStyle {
	switch state {
	case components.AnswerStateCorrect:
		return styleCorrect
	case components.AnswerStateWrong:
		return styleWrong
	default:
		return styleNeutral
	}
}

type cell struct {
	r     rune
	style cellStyle
}

// row 一行等宽单元格
type row []cell

func newRow(cols int) row {
	r := make(row, cols)
	for i := range r {
		r[i] = cell{r: ' '}
	}
	return r
}

// put 从 col 开始写入文字，超出边界的部分被裁掉
func (r row) put(col int, s string, style cellStyle) {
	for _, ch := range s {
		if col >= 0 && col < len(r) {
			r[col] = cell{r: ch, style: style}
		}
		col++
	}
}

// render 合并相同样式的连续单元格后渲染
func (r row) render(st styles) string {
	var sb strings.Builder
	start := 0
	for i := 1; i <= len(r); i++ {
		if i < len(r) && r[i].style == r[start].style {
			continue
		}
		var seg strings.Builder
		for _, c := range r[start:i] {
			seg.WriteRune(c.r)
		}
		sb.WriteString(st.byCell[r[start].style].Render(seg.String()))
		start = i
	}
	return sb.String()
}

// plain 返回不带样式的文字（用于测试和日志）
func (r row) plain() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// columnOf 将屏幕 X 坐标映射到列
func columnOf(x float64, cols int) int {
	return int(math.Floor(x / float64(config.GameWindowWidth) * float64(cols)))
}

// stripeRow 车道分隔线，随纹理偏移滚动
func stripeRow(offsetX float64, cols int) row {
	r := newRow(cols)
	shift := int(math.Floor(types.Repeat(offsetX, 1) * stripeSpan))
	for i := range r {
		if (i+shift)%stripeSpan < stripeSpan/2 {
			r[i] = cell{r: '-', style: styleStripe}
		}
	}
	return r
}

// trackRows 渲染三条车道及分隔线
func trackRows(view game.SessionView, cols int) []row {
	rows := []row{stripeRow(view.ScrollOffset.X, cols)}
	for _, lane := range types.AllLanes {
		r := newRow(cols)
		opt := view.Options[lane]
		if opt.Text != "" {
			left := columnOf(opt.X-opt.Width/2, cols)
			right := columnOf(opt.X+opt.Width/2, cols)
			label := "[" + opt.Text + "]"
			if w := right - left; w > len(label) {
				label = "[" + padCenter(opt.Text, w-2) + "]"
			}
			r.put(left, label, answerStyle(opt.State))
		}
		if view.Phase == game.PhasePlaying && lane == view.Lane {
			r.put(columnOf(view.PlayerX, cols)-1, "=>", stylePlayer)
		}
		rows = append(rows, r)
		if lane != types.LaneBottom {
			rows = append(rows, stripeRow(view.ScrollOffset.X+0.5, cols))
		}
	}
	return append(rows, stripeRow(view.ScrollOffset.X, cols))
}

func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// hudLine 答题界面状态行
func hudLine(view game.SessionView) string {
	status := fmt.Sprintf("Score %d/%d", view.CorrectCount, view.AnsweredCount)
	if view.ProgressLabel != "" {
		status = view.ProgressLabel + "   " + status
	}
	if view.IsAnswered {
		verdict := "Wrong!"
		if view.IsAnsweredCorrect {
			verdict = "Correct!"
		}
		status += fmt.Sprintf("   %s next in %.1fs", verdict, view.FeedbackRemaining)
	}
	return status
}

// welcomeLines 欢迎界面文字
func welcomeLines(controller *game.SessionController, settings *game.SettingsManager) []string {
	cfg := controller.Config()
	mode := "Unlimited"
	if cfg.Mode == types.GameModeClassroom {
		mode = fmt.Sprintf("Classroom (%d questions, %v)", cfg.QuestionLimit, cfg.ContinuationPolicy)
	}
	lines := []string{
		fmt.Sprintf("Difficulty: %v", cfg.Difficulty),
		fmt.Sprintf("Mode: %s", mode),
	}
	if bank := controller.Bank(); bank != nil {
		lines = append(lines, fmt.Sprintf("Questions: Easy %d / Medium %d / Hard %d",
			bank.CountByDifficulty(types.DifficultyEasy),
			bank.CountByDifficulty(types.DifficultyMedium),
			bank.CountByDifficulty(types.DifficultyHard)))
	}
	if settings != nil {
		if s := settings.GetSettings(); s.LastAnswered > 0 {
			lines = append(lines, fmt.Sprintf("Last game: %d/%d correct", s.LastCorrect, s.LastAnswered))
		}
	}
	return lines
}
