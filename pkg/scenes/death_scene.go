package scenes

import (
	"image/color"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// DeathScene 死亡画面：碎裂的灵魂停留片刻后回到遭遇战
type DeathScene struct {
	svc    *Services
	soul   types.Texture
	timer  float64
	played bool
}

// NewDeathScene 创建死亡画面
func NewDeathScene(svc *Services) *DeathScene {
	return &DeathScene{svc: svc, soul: svc.Textures.Texture(content.ImageSoulBroken)}
}

// Update 推进死亡画面
func (s *DeathScene) Update(deltaTime float64) {
	if !s.played {
		s.svc.play(content.SoundSoulShatter, types.ChannelSFX, 0)
		s.played = true
	}
	s.timer += deltaTime
	if s.timer > s.svc.State.Config.Timing.DeathScreen {
		s.svc.State.PlayerMode = components.PlayerIdle
		s.svc.State.SetMode(components.ModeBattle)
	}
}

// Draw 绘制死亡画面
func (s *DeathScene) Draw(screen *ebiten.Image) {
	drawTo(s.svc, screen, s)
}

func (s *DeathScene) draw(r types.Renderer) {
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)
	if s.soul != nil && s.timer <= s.svc.State.Config.Timing.DeathScreen {
		so := config.CenterSoulRect()
		r.DrawTexture(s.soul, so.X, so.Y, so.W, so.H)
	}
}
