package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/ecs"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// titlePromptBlink 提示文字的显示/隐藏间隔
	titlePromptBlink = 0.7
	// titlePromptBottom 提示文字距离屏幕底部的距离
	titlePromptBottom = 100
)

// TitleScene 标题画面
//
// 播放 Logo 音效，音效结束后提示文字开始闪烁，按确认键进入开场过场。
// Logo 与提示文字是 ECS 实体，由 AnimationSystem 与 RenderSystem 驱动。
type TitleScene struct {
	svc *Services

	entityManager   *ecs.EntityManager
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem

	prompt      ecs.EntityID
	glyphs      []types.Texture
	soundPlayed bool
}

// NewTitleScene 创建标题画面
func NewTitleScene(svc *Services) *TitleScene {
	em := ecs.NewEntityManager()
	s := &TitleScene{
		svc:             svc,
		entityManager:   em,
		animationSystem: systems.NewAnimationSystem(em),
		renderSystem:    systems.NewRenderSystem(em),
	}

	logo := em.CreateEntity()
	ecs.AddComponent(em, logo, components.NewSprite(svc.Textures.Texture(content.ImageLogo)))
	ecs.AddComponent(em, logo, &components.PositionComponent{Rect: config.TitleLogoRect()})

	s.prompt = em.CreateEntity()
	var frames []types.Texture
	if svc.Glyphs != nil {
		// 第二帧是同样尺寸的空白，实现闪烁
		text := svc.Glyphs.NewGlyph(content.TitlePrompt, content.TitleStyle)
		blank := svc.Glyphs.NewGlyph(" ", content.TitleStyle)
		frames = []types.Texture{text, blank}
		s.glyphs = frames
	}
	var rect utils.Rect
	if len(frames) > 0 {
		w, h := types.TextureSize(frames[0])
		rect = utils.Rect{X: config.ScreenWidth/2 - w/2, Y: config.ScreenHeight - titlePromptBottom, W: w, H: h}
	}
	sprite := components.NewSprite(nil)
	if len(frames) > 0 {
		sprite.Texture = frames[0]
	}
	sprite.Hidden = true
	anim := components.NewAnimation(titlePromptBlink, frames...)
	anim.Paused = true
	ecs.AddComponent(em, s.prompt, sprite)
	ecs.AddComponent(em, s.prompt, anim)
	ecs.AddComponent(em, s.prompt, &components.PositionComponent{Rect: rect, Layer: 1})

	return s
}

// Update 推进标题画面
func (s *TitleScene) Update(deltaTime float64) {
	if !s.soundPlayed {
		s.svc.play(content.SoundLogo, types.ChannelSFX, 0)
		s.soundPlayed = true
		return
	}
	// Logo 音效播放期间不显示提示，也不接受输入
	if s.svc.Audio != nil && s.svc.Audio.IsPlaying(types.ChannelSFX) {
		return
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.prompt)
	anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, s.prompt)
	if sprite.Hidden {
		sprite.Hidden = false
		anim.Paused = false
	}
	s.animationSystem.Update(deltaTime)

	if s.svc.confirmed() {
		log.Printf("[TitleScene] Start")
		s.svc.State.SetMode(components.ModeCutscene)
	}
}

// PromptVisible 提示文字当前是否可见（调试覆盖层）
func (s *TitleScene) PromptVisible() bool {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.prompt)
	return ok && !sprite.Hidden
}

// Draw 绘制标题画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	drawTo(s.svc, screen, s)
}

func (s *TitleScene) draw(r types.Renderer) {
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)
	s.renderSystem.Draw(r)
}

// OnLeave 释放提示文字的纹理
func (s *TitleScene) OnLeave() {
	if s.svc.Glyphs != nil {
		for _, g := range s.glyphs {
			s.svc.Glyphs.Release(g)
		}
	}
	s.glyphs = nil
	s.entityManager.Clear()
}
