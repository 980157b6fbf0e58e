package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndingScene 结局：从黑色淡入，播放结局对话后回到标题
type EndingScene struct {
	svc    *Services
	script *components.DialogueComponent
	fade   components.FadeComponent
	done   bool
}

// NewEndingScene 创建结局场景
func NewEndingScene(svc *Services) *EndingScene {
	return &EndingScene{
		svc:    svc,
		script: content.NewEndingScript(),
		fade:   *components.NewFade(components.FadeFromBlack, svc.State.Config.Timing.EndingFade),
	}
}

// Update 推进结局
func (s *EndingScene) Update(deltaTime float64) {
	if s.done {
		return
	}
	systems.AdvanceFade(&s.fade, deltaTime)

	ctx := systems.NewDialogueContext(systems.HostEnding).WithConfirm(s.svc.confirmed())
	if s.svc.Dialogue.Update(s.script, ctx, deltaTime) == systems.DialogueFinished {
		log.Printf("[EndingScene] Finished")
		s.done = true
		st := s.svc.State
		st.DeathCount = 0
		st.PlayerMode = components.PlayerIdle
		st.SetMode(components.ModeTitle)
	}
}

// Draw 绘制结局
func (s *EndingScene) Draw(screen *ebiten.Image) {
	drawTo(s.svc, screen, s)
}

func (s *EndingScene) draw(r types.Renderer) {
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)
	if !s.done {
		s.svc.Dialogue.Draw(r, s.script, systems.NewDialogueContext(systems.HostEnding))
	}
	systems.DrawFade(r, &s.fade)
}

// OnLeave 释放对话字形
func (s *EndingScene) OnLeave() {
	if !s.done {
		s.svc.Dialogue.Reset(s.script)
	}
}
