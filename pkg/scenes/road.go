package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/lanequiz/pkg/components"
	"github.com/decker502/lanequiz/pkg/config"
	"github.com/decker502/lanequiz/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 路面标线参数（像素）
const (
	stripePeriod = 120.0 // 相邻虚线起点间距，对应一个完整的纹理周期
	stripeLength = 60.0
	stripeHeight = 6.0
	roadMargin   = 70.0 // 路面上下边距
	debugCharW   = 6    // DebugPrint 字符宽度
	debugLineH   = 16   // DebugPrint 行高
)

// palette 由配置解析出的颜色表
type palette struct {
	road    color.RGBA
	stripe  color.RGBA
	player  color.RGBA
	neutral color.RGBA
	correct color.RGBA
	wrong   color.RGBA
}

// newPalette 解析配置中的颜色（配置已在加载时校验）
func newPalette(cfg *config.GameConfig) palette {
	return palette{
		road:    config.MustColor(cfg.Colors.Road),
		stripe:  config.MustColor(cfg.Colors.Stripe),
		player:  config.MustColor(cfg.Colors.Player),
		neutral: config.MustColor(cfg.Colors.Default),
		correct: config.MustColor(cfg.Colors.Correct),
		wrong:   config.MustColor(cfg.Colors.Wrong),
	}
}

// answerColor 返回答案区域在某个显示状态下的颜色
func (p palette) answerColor(state components.AnswerState) color.RGBA {
	switch state {
	case components.AnswerStateCorrect:
		return p.correct
	case components.AnswerStateWrong:
		return p.wrong
	default:
		return p.neutral
	}
}

// stripePositions 计算可见虚线的起点 X 坐标
//
// 纹理偏移 offsetX 在 [0,1) 内循环，一个周期对应 stripePeriod 像素。
func stripePositions(offsetX, screenWidth float64) []float64 {
	shift := types.Repeat(offsetX, 1) * stripePeriod
	start := math.Mod(shift, stripePeriod) - stripePeriod
	var xs []float64
	for x := start; x < screenWidth; x += stripePeriod {
		if x+stripeLength <= 0 {
			continue
		}
		xs = append(xs, x)
	}
	return xs
}

// laneDividers 返回两条车道分隔线的 Y 坐标（相邻车道中心的中点）
func laneDividers(cfg *config.GameConfig) []float64 {
	dividers := make([]float64, 0, types.LaneCount-1)
	for i := 1; i < types.LaneCount; i++ {
		a := cfg.LaneAnchor(types.Lane(i - 1))
		b := cfg.LaneAnchor(types.Lane(i))
		dividers = append(dividers, (a+b)/2)
	}
	return dividers
}

// drawRoad 绘制滚动路面：底色、车道虚线
func drawRoad(screen *ebiten.Image, cfg *config.GameConfig, colors palette, offset types.Vector2) {
	width := float64(config.GameWindowWidth)
	height := float64(config.GameWindowHeight)
	screen.Fill(color.RGBA{R: 20, G: 20, B: 24, A: 255})

	top := cfg.LaneAnchor(types.LaneTop) - roadMargin
	bottom := cfg.LaneAnchor(types.LaneBottom) + roadMargin
	ebitenutil.DrawRect(screen, 0, math.Max(top, 0), width, math.Min(bottom, height)-math.Max(top, 0), colors.road)

	for _, y := range laneDividers(cfg) {
		for _, x := range stripePositions(offset.X, width) {
			ebitenutil.DrawRect(screen, x, y-stripeHeight/2, stripeLength, stripeHeight, colors.stripe)
		}
	}
}

// drawCentered 以 cx 为中心绘制一行调试文字
func drawCentered(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*debugCharW/2, y)
}
