package components

import (
	"testing"

	"github.com/decker502/lanequiz/pkg/types"
)

// TestCollisionBounds 测试碰撞盒边界计算（中心对齐 + 偏移）
func TestCollisionBounds(t *testing.T) {
	col := &CollisionComponent{Width: 100, Height: 40, OffsetX: 10, OffsetY: -5}
	left, top, right, bottom := col.Bounds(200, 300)

	if left != 160 || right != 260 {
		t.Errorf("horizontal bounds = [%v, %v], want [160, 260]", left, right)
	}
	if top != 275 || bottom != 315 {
		t.Errorf("vertical bounds = [%v, %v], want [275, 315]", top, bottom)
	}
}

func TestRoundStateResetPerQuestion(t *testing.T) {
	r := RoundStateComponent{
		CurrentLane:           types.LaneBottom,
		IsScrolling:           true,
		IsAnswered:            true,
		IsAnsweredCorrect:     true,
		CurrentQuestionNumber: 3,
		PerLaneCorrectness:    [types.LaneCount]bool{false, true, false},
		CorrectCount:          2,
	}

	r.ResetPerQuestion()

	if r.IsAnswered || r.IsAnsweredCorrect {
		t.Error("answered flags should be cleared")
	}
	if r.PerLaneCorrectness != [types.LaneCount]bool{} {
		t.Errorf("PerLaneCorrectness = %v, want all false", r.PerLaneCorrectness)
	}
	// 进度和得分不受影响
	if r.CurrentQuestionNumber != 3 || r.CorrectCount != 2 || !r.IsScrolling {
		t.Errorf("per-session fields changed: %+v", r)
	}
}

func TestTimerRemaining(t *testing.T) {
	timer := &TimerComponent{TargetTime: 2, CurrentTime: 0.5}
	if got := timer.Remaining(); got != 1.5 {
		t.Errorf("Remaining() = %v, want 1.5", got)
	}
	timer.CurrentTime = 3
	if got := timer.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
}
