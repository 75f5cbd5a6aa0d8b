package game

// Presenter 呈现层接口
//
// 会话控制器只负责状态，界面切换交给宿主实现（ebiten 场景、终端界面）。
type Presenter interface {
	// ShowWelcome 显示欢迎/空闲界面
	ShowWelcome()
	// ShowPlaying 显示答题界面
	ShowPlaying()
}
