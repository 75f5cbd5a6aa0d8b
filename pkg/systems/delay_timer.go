package systems

import (
	"github.com/decker502/lanequiz/pkg/components"
)

// DelayTimer 单槽延迟计时器
//
// 同一时刻最多只有一个待触发的回调：再次 Schedule 会取消并替换之前的回调。
// 计时由调用方每帧 Update(dt) 推进，不使用 goroutine。
type DelayTimer struct {
	timer    components.TimerComponent
	callback func()
	pending  bool
}

// NewDelayTimer 创建延迟计时器
func NewDelayTimer(name string) *DelayTimer {
	return &DelayTimer{
		timer: components.TimerComponent{Name: name},
	}
}

// Schedule 在 delay 秒后调用 fn，替换任何尚未触发的回调
func (t *DelayTimer) Schedule(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t.timer.TargetTime = delay
	t.timer.CurrentTime = 0
	t.timer.IsReady = false
	t.callback = fn
	t.pending = true
}

// Cancel 取消待触发的回调（没有时为空操作）
func (t *DelayTimer) Cancel() {
	t.callback = nil
	t.pending = false
	t.timer.CurrentTime = 0
	t.timer.IsReady = false
}

// Pending 返回是否有待触发的回调
func (t *DelayTimer) Pending() bool {
	return t.pending
}

// Remaining 返回剩余时间（秒），没有待触发回调时为 0
func (t *DelayTimer) Remaining() float64 {
	if !t.pending {
		return 0
	}
	return t.timer.Remaining()
}

// Update 推进计时；到期时先清空槽位再调用回调，
// 因此回调内部可以安全地再次 Schedule
func (t *DelayTimer) Update(deltaTime float64) {
	if !t.pending {
		return
	}

	t.timer.CurrentTime += deltaTime
	if t.timer.CurrentTime < t.timer.TargetTime {
		return
	}

	t.timer.IsReady = true
	fn := t.callback
	t.callback = nil
	t.pending = false
	if fn != nil {
		fn()
	}
}
