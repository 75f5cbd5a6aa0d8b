package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如答题后的反馈等待）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "feedback"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Remaining 返回剩余时间（秒），不小于0
func (t *TimerComponent) Remaining() float64 {
	if t.CurrentTime >= t.TargetTime {
		return 0
	}
	return t.TargetTime - t.CurrentTime
}
