package systems

import (
	"image"
	"image/color"

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

func newTex(name string, w, h int) *fakeTexture {
	return &fakeTexture{name: name, w: w, h: h}
}

// playCall 一次播放记录
type playCall struct {
	id      types.SoundID
	channel int
	loops   int
}

// fakeAudio 记录所有播放与停止命令
type fakeAudio struct {
	plays   []playCall
	stops   []int
	playing map[int]bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{playing: make(map[int]bool)}
}

func (a *fakeAudio) Play(id types.SoundID, channel int, loops int) {
	a.plays = append(a.plays, playCall{id: id, channel: channel, loops: loops})
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

// count 返回某个音效被播放的次数
func (a *fakeAudio) count(id types.SoundID) int {
	n := 0
	for _, p := range a.plays {
		if p.id == id {
			n++
		}
	}
	return n
}

// fakeGlyphs 等宽字形工厂：每个字形 8x16
type fakeGlyphs struct {
	created  int
	released int
}

func (g *fakeGlyphs) NewGlyph(glyph string, style types.TextStyle) types.Texture {
	g.created++
	if glyph == " " {
		return newTex(glyph, 4, 16)
	}
	return newTex(glyph, 8, 16)
}

func (g *fakeGlyphs) Release(tex types.Texture) {
	g.released++
}

func (g *fakeGlyphs) LineHeight(style types.TextStyle) int {
	return 16
}

func (g *fakeGlyphs) MeasureText(text string, style types.TextStyle) (int, int) {
	return len(utils.SplitGlyphs(text)) * 8, 16
}

// drawCall 一次纹理绘制记录
type drawCall struct {
	tex        types.Texture
	x, y, w, h float64
	opts       types.DrawOptions
}

// fakeRenderer 记录所有绘制命令
type fakeRenderer struct {
	draws []drawCall
	fills int
	texts []string
}

func (r *fakeRenderer) DrawTexture(tex types.Texture, x, y, w, h int) {
	r.draws = append(r.draws, drawCall{tex: tex, x: float64(x), y: float64(y), w: float64(w), h: float64(h), opts: types.Opaque()})
}

func (r *fakeRenderer) DrawTextureF(tex types.Texture, x, y, w, h float64, opts types.DrawOptions) {
	r.draws = append(r.draws, drawCall{tex: tex, x: x, y: y, w: w, h: h, opts: opts})
}

func (r *fakeRenderer) FillRect(x, y, w, h int, c color.Color) {
	r.fills++
}

func (r *fakeRenderer) DrawText(text string, x, y int, style types.TextStyle) {
	r.texts = append(r.texts, text)
}

// drew 某个纹理是否被绘制过
func (r *fakeRenderer) drew(tex types.Texture) bool {
	for _, d := range r.draws {
		if d.tex == tex {
			return true
		}
	}
	return false
}

// hasText 某段文字是否被绘制过
func (r *fakeRenderer) hasText(text string) bool {
	for _, s := range r.texts {
		if s == text {
			return true
		}
	}
	return false
}

// keys 构造按键快照
func keys(ks ...types.Key) utils.InputSnapshot {
	var s utils.InputSnapshot
	for _, k := range ks {
		s.Keys[k] = true
	}
	return s
}

// testPatternAssets 弹幕测试资源
func testPatternAssets() PatternAssets {
	return PatternAssets{
		Keywords: []types.Texture{newTex("if", 20, 12), newTex("else", 40, 12)},
		Pairs: [][2]types.Texture{
			{newTex("(", 10, 20), newTex(")", 10, 20)},
			{newTex("[", 10, 20), newTex("]", 10, 20)},
		},
		Mother:        [2]types.Texture{newTex("mother1", 40, 40), newTex("mother2", 40, 40)},
		Child:         []types.Texture{newTex("child1", 10, 10), newTex("child2", 10, 10)},
		BarrierTop:    []types.Texture{newTex("top1", 120, 20), newTex("top2", 120, 20)},
		BarrierBottom: []types.Texture{newTex("bottom1", 120, 20), newTex("bottom2", 120, 20)},
		HitSound:      "hit",
		AppearSound:   "appear",
		BornSound:     "born",
		SlamSound:     "slam",
		StrikeSound:   "strike",
	}
}
