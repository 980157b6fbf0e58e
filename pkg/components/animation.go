package components

import "github.com/decker502/ctale/pkg/types"

// AnimationComponent 帧动画状态
//
// Frames 是共享的只读帧句柄（同一套帧可被多个实体引用），
// 组件本身只拥有当前帧下标与累计时间。
//
// 不变量: 0 <= Counter < len(Frames)（Frames 非空时）
type AnimationComponent struct {
	Frames  []types.Texture // 动画的所有帧（共享引用）
	Counter int             // 当前帧下标
	Timer   float64         // 累计未消耗的时间（秒）

	// 以下字段供 AnimationSystem 使用；直接调用 AdvanceAnimation 时可忽略
	Cooldown float64 // 每帧停留时间（秒），<= 0 表示每次调用前进一帧
	Blink    bool    // 眨眼模式：两帧动画的第二帧只短暂出现
	Paused   bool    // 暂停时保持当前帧
}

// NewAnimation 创建一个从第 0 帧开始的动画
func NewAnimation(cooldown float64, frames ...types.Texture) *AnimationComponent {
	return &AnimationComponent{Frames: frames, Cooldown: cooldown}
}
