package components

// FadeDirection 淡入淡出方向
type FadeDirection int

const (
	// FadeToBlack 画面逐渐变黑（遮罩不透明度 0 → 1）
	FadeToBlack FadeDirection = iota
	// FadeFromBlack 从黑色逐渐显现（遮罩不透明度 1 → 0）
	FadeFromBlack
)

// FadeComponent 全屏遮罩淡入淡出
// 每个过渡（过场、战斗胜利、结局）各自持有独立实例
type FadeComponent struct {
	Direction FadeDirection
	Duration  float64 // 总时长（秒）
	Timer     float64
	// Alpha 当前遮罩不透明度 0~1
	Alpha float64
	// Active 为 false 时 FadeSystem 不推进
	Active bool
	// Done 过渡已完成
	Done bool
}

// NewFade 创建一个立即开始的淡入淡出
func NewFade(dir FadeDirection, duration float64) *FadeComponent {
	f := &FadeComponent{Direction: dir, Duration: duration, Active: true}
	if dir == FadeFromBlack {
		f.Alpha = 1
	}
	return f
}
