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

// CutsceneScene 开场过场：四帧故事图片，每帧淡入、旁白、淡出
// 取消键跳过整个过场
type CutsceneScene struct {
	svc    *Services
	frames []content.StoryFrame
	images []types.Texture

	index   int
	timer   float64
	fadeIn  components.FadeComponent
	fadeOut components.FadeComponent

	textDone     bool
	musicStarted bool
	finished     bool
}

// NewCutsceneScene 创建开场过场
func NewCutsceneScene(svc *Services) *CutsceneScene {
	s := &CutsceneScene{svc: svc, frames: content.NewStoryFrames()}
	s.images = make([]types.Texture, len(s.frames))
	for i, f := range s.frames {
		s.images[i] = svc.Textures.Texture(f.ImageID)
	}
	s.fadeIn = *components.NewFade(components.FadeFromBlack, config.CutsceneFade)
	return s
}

// Index 当前故事帧下标
func (s *CutsceneScene) Index() int {
	return s.index
}

// Update 推进过场
func (s *CutsceneScene) Update(deltaTime float64) {
	if s.finished {
		return
	}
	if !s.musicStarted {
		s.svc.play(content.MusicStory, types.ChannelMusic, 0)
		s.musicStarted = true
	}
	if s.svc.cancelled() {
		log.Printf("[CutsceneScene] Skipped at frame %d", s.index)
		s.finish()
		return
	}

	frame := s.frames[s.index]
	s.timer += deltaTime

	systems.AdvanceFade(&s.fadeIn, deltaTime)
	if s.timer >= frame.Duration-config.CutsceneFade && !s.fadeOut.Active && !s.fadeOut.Done {
		s.fadeOut = *components.NewFade(components.FadeToBlack, config.CutsceneFade)
	}
	systems.AdvanceFade(&s.fadeOut, deltaTime)

	if !s.textDone && frame.Text != nil {
		ctx := systems.NewDialogueContext(systems.HostCutscene).WithConfirm(s.svc.confirmed())
		if s.svc.Dialogue.Update(frame.Text, ctx, deltaTime) == systems.DialogueFinished {
			s.textDone = true
		}
	}

	if s.timer >= frame.Duration+config.CutsceneFrameTail {
		s.next()
	}
}

// next 切换到下一帧，最后一帧结束后进入战斗
func (s *CutsceneScene) next() {
	s.resetText()
	s.index++
	s.timer = 0
	if s.index >= len(s.frames) {
		s.index = len(s.frames) - 1
		s.finish()
		return
	}
	s.textDone = false
	s.fadeIn = *components.NewFade(components.FadeFromBlack, config.CutsceneFade)
	s.fadeOut = components.FadeComponent{}
}

func (s *CutsceneScene) resetText() {
	if t := s.frames[s.index].Text; t != nil {
		s.svc.Dialogue.Reset(t)
	}
}

func (s *CutsceneScene) finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.resetText()
	s.svc.stop(types.ChannelMusic)
	s.svc.State.SetMode(components.ModeBattle)
}

// Draw 绘制当前故事帧
func (s *CutsceneScene) Draw(screen *ebiten.Image) {
	drawTo(s.svc, screen, s)
}

func (s *CutsceneScene) draw(r types.Renderer) {
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)
	if s.finished {
		return
	}
	if img := s.images[s.index]; img != nil {
		r.DrawTexture(img, 0, 0, config.ScreenWidth, config.ScreenHeight)
	}
	systems.DrawFade(r, &s.fadeIn)
	systems.DrawFade(r, &s.fadeOut)

	if !s.textDone {
		s.svc.Dialogue.Draw(r, s.frames[s.index].Text, systems.NewDialogueContext(systems.HostCutscene))
	}
}

// OnLeave 调试跳转离开时停止音乐并释放字形
func (s *CutsceneScene) OnLeave() {
	if !s.finished {
		s.resetText()
		s.svc.stop(types.ChannelMusic)
	}
}
