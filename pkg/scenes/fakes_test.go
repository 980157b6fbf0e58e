package scenes

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// fakeTexture 只有尺寸的纹理
type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

// fakeTextures 按需创建纹理并记录请求过的ID
type fakeTextures struct {
	byID map[string]*fakeTexture
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{byID: make(map[string]*fakeTexture)}
}

func (f *fakeTextures) Texture(id string) types.Texture {
	if tex, ok := f.byID[id]; ok {
		return tex
	}
	tex := &fakeTexture{name: id, w: 20, h: 20}
	f.byID[id] = tex
	return tex
}

// fakeAudio 记录播放命令
type fakeAudio struct {
	plays   []types.SoundID
	stops   []int
	playing map[int]bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{playing: make(map[int]bool)}
}

func (a *fakeAudio) Play(id types.SoundID, channel int, loops int) {
	a.plays = append(a.plays, id)
	if channel >= 0 {
		a.playing[channel] = true
	}
}

func (a *fakeAudio) Stop(channel int) {
	a.stops = append(a.stops, channel)
	delete(a.playing, channel)
}

func (a *fakeAudio) IsPlaying(channel int) bool {
	return a.playing[channel]
}

func (a *fakeAudio) count(id types.SoundID) int {
	n := 0
	for _, p := range a.plays {
		if p == id {
			n++
		}
	}
	return n
}

func (a *fakeAudio) stopped(channel int) bool {
	for _, c := range a.stops {
		if c == channel {
			return true
		}
	}
	return false
}

// fakeGlyphs 等宽字形工厂：每个字形 8x16
type fakeGlyphs struct {
	created  int
	released int
}

func (g *fakeGlyphs) NewGlyph(glyph string, style types.TextStyle) types.Texture {
	g.created++
	return &fakeTexture{name: glyph, w: 8 * len(utils.SplitGlyphs(glyph)), h: 16}
}

func (g *fakeGlyphs) Release(tex types.Texture) { g.released++ }

func (g *fakeGlyphs) LineHeight(style types.TextStyle) int { return 16 }

func (g *fakeGlyphs) MeasureText(text string, style types.TextStyle) (int, int) {
	return 8 * len(utils.SplitGlyphs(text)), 16
}

// fakeRenderer 记录绘制的纹理
type fakeRenderer struct {
	drawn []types.Texture
	fills int
}

func (r *fakeRenderer) DrawTexture(tex types.Texture, x, y, w, h int) {
	r.drawn = append(r.drawn, tex)
}

func (r *fakeRenderer) DrawTextureF(tex types.Texture, x, y, w, h float64, opts types.DrawOptions) {
	r.drawn = append(r.drawn, tex)
}

func (r *fakeRenderer) FillRect(x, y, w, h int, c color.Color) { r.fills++ }

func (r *fakeRenderer) DrawText(text string, x, y int, style types.TextStyle) {}

func (r *fakeRenderer) drew(tex types.Texture) bool {
	for _, d := range r.drawn {
		if d == tex {
			return true
		}
	}
	return false
}

// testEnv 一套完整的无头场景环境
type testEnv struct {
	svc      *Services
	audio    *fakeAudio
	glyphs   *fakeGlyphs
	textures *fakeTextures
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	audio := newFakeAudio()
	glyphs := &fakeGlyphs{}
	textures := newFakeTextures()
	rng := rand.New(rand.NewSource(1))

	state := game.NewEncounterState(config.DefaultBattleConfig())
	dialogue := systems.NewDialogueSystem(glyphs, audio, content.Voices())
	ApplyPortraits(dialogue, textures)
	scripts := content.NewBattleScripts()
	patterns := systems.NewAttackPatternSystem(audio, rng)
	battle := systems.NewBattleSystem(state, dialogue, patterns, scripts, BuildBattleAssets(textures), audio, glyphs, rng)

	return &testEnv{
		svc: &Services{
			State:    state,
			Textures: textures,
			Audio:    audio,
			Glyphs:   glyphs,
			Input:    &utils.InputTracker{},
			Dialogue: dialogue,
			Scripts:  scripts,
			Battle:   battle,
		},
		audio:    audio,
		glyphs:   glyphs,
		textures: textures,
	}
}

// press 推入一帧按键快照
func (e *testEnv) press(ks ...types.Key) {
	var s utils.InputSnapshot
	for _, k := range ks {
		s.Keys[k] = true
	}
	e.svc.Input.Push(s)
}

// runDialogue 交替按下确认键直到 done 返回 true
func (e *testEnv) runDialogue(t *testing.T, update func(dt float64), done func() bool) {
	t.Helper()
	for i := 0; i < 1000 && !done(); i++ {
		if i%2 == 0 {
			e.press(types.KeyConfirm)
		} else {
			e.press()
		}
		update(0.25)
	}
	if !done() {
		t.Fatal("dialogue did not finish")
	}
}
