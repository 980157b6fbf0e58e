package systems

import (
	"image/color"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// AdvanceFade 推进一个淡入淡出，返回本帧是否刚刚完成
func AdvanceFade(f *components.FadeComponent, dt float64) bool {
	if f == nil || !f.Active || f.Done {
		return false
	}
	f.Timer += dt
	p := utils.Progress(f.Timer, f.Duration)

	switch f.Direction {
	case components.FadeToBlack:
		f.Alpha = p
	case components.FadeFromBlack:
		f.Alpha = 1 - p
	}

	if p >= 1 {
		f.Done = true
		f.Active = false
		return true
	}
	return false
}

// RestartFade 从头开始同方向的过渡
func RestartFade(f *components.FadeComponent) {
	f.Timer = 0
	f.Done = false
	f.Active = true
	if f.Direction == components.FadeFromBlack {
		f.Alpha = 1
	} else {
		f.Alpha = 0
	}
}

// DrawFade 绘制全屏黑色遮罩
func DrawFade(r types.Renderer, f *components.FadeComponent) {
	if r == nil || f == nil || f.Alpha <= 0 {
		return
	}
	a := uint8(utils.Clamp01(f.Alpha) * 255)
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.NRGBA{A: a})
}
