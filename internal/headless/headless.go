// Package headless 提供不依赖窗口与音频设备的服务实现
//
// cmd/ 下的验证工具用它在终端里逐帧推进对话、弹幕和战斗，
// 并把播放的音效、生成的字形打印成文本轨迹。
package headless

import (
	"image"
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// Texture 只有名字和尺寸的纹理
type Texture struct {
	Name string
	W, H int
}

// Bounds 实现 types.Texture
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.W, t.H)
}

// Textures 按资源ID生成固定尺寸的纹理，同一ID返回同一实例
type Textures struct {
	Size int
	byID map[string]*Texture
}

// NewTextures 创建纹理表
func NewTextures(size int) *Textures {
	return &Textures{Size: size, byID: make(map[string]*Texture)}
}

// Texture 返回资源ID对应的纹理
func (t *Textures) Texture(id string) types.Texture {
	if tex, ok := t.byID[id]; ok {
		return tex
	}
	tex := &Texture{Name: id, W: t.Size, H: t.Size}
	t.byID[id] = tex
	return tex
}

// Audio 记录播放命令的音频服务
// 声道在 Play 后一直处于播放状态，直到 Stop 或 Finish
type Audio struct {
	// Trace 为 true 时每次播放都写日志
	Trace   bool
	Plays   []types.SoundID
	playing map[int]types.SoundID
}

// NewAudio 创建音频服务
func NewAudio(trace bool) *Audio {
	return &Audio{Trace: trace, playing: make(map[int]types.SoundID)}
}

// Play 实现 types.Audio
func (a *Audio) Play(id types.SoundID, channel int, loops int) {
	a.Plays = append(a.Plays, id)
	if channel >= 0 {
		a.playing[channel] = id
	}
	if a.Trace {
		log.Printf("[Audio] play %s channel=%d loops=%d", id, channel, loops)
	}
}

// Stop 实现 types.Audio
func (a *Audio) Stop(channel int) {
	if channel < 0 {
		clear(a.playing)
		return
	}
	delete(a.playing, channel)
}

// IsPlaying 实现 types.Audio
func (a *Audio) IsPlaying(channel int) bool {
	_, ok := a.playing[channel]
	return ok
}

// Finish 模拟一个声道播放结束
func (a *Audio) Finish(channel int) {
	delete(a.playing, channel)
}

// Count 返回某个音频被播放的次数
func (a *Audio) Count(id types.SoundID) int {
	n := 0
	for _, p := range a.Plays {
		if p == id {
			n++
		}
	}
	return n
}

// Glyphs 等宽字形工厂，统计生成与释放数量
type Glyphs struct {
	Width, Height int
	Created       int
	Released      int
}

// NewGlyphs 创建字形工厂
func NewGlyphs(width, height int) *Glyphs {
	return &Glyphs{Width: width, Height: height}
}

// NewGlyph 实现 types.GlyphFactory
func (g *Glyphs) NewGlyph(glyph string, style types.TextStyle) types.Texture {
	g.Created++
	return &Texture{Name: glyph, W: g.Width * len(utils.SplitGlyphs(glyph)), H: g.Height}
}

// Release 实现 types.GlyphFactory
func (g *Glyphs) Release(tex types.Texture) {
	g.Released++
}

// LineHeight 实现 types.GlyphFactory
func (g *Glyphs) LineHeight(style types.TextStyle) int {
	return g.Height
}

// MeasureText 实现 types.GlyphFactory
func (g *Glyphs) MeasureText(text string, style types.TextStyle) (int, int) {
	return g.Width * len(utils.SplitGlyphs(text)), g.Height
}

// Live 返回尚未释放的字形数量
func (g *Glyphs) Live() int {
	return g.Created - g.Released
}

// Renderer 统计绘制调用的渲染器
type Renderer struct {
	Textures int
	Fills    int
	Texts    []string
}

// DrawTexture 实现 types.Renderer
func (r *Renderer) DrawTexture(tex types.Texture, x, y, w, h int) { r.Textures++ }

// DrawTextureF 实现 types.Renderer
func (r *Renderer) DrawTextureF(tex types.Texture, x, y, w, h float64, opts types.DrawOptions) {
	r.Textures++
}

// FillRect 实现 types.Renderer
func (r *Renderer) FillRect(x, y, w, h int, c color.Color) { r.Fills++ }

// DrawText 实现 types.Renderer
func (r *Renderer) DrawText(text string, x, y int, style types.TextStyle) {
	r.Texts = append(r.Texts, text)
}

// Reset 清空统计
func (r *Renderer) Reset() {
	*r = Renderer{}
}

// Keys 由按键列表构造一帧输入快照
func Keys(keys ...types.Key) utils.InputSnapshot {
	var s utils.InputSnapshot
	for _, k := range keys {
		if k >= 0 && k < types.KeyCount {
			s.Keys[k] = true
		}
	}
	return s
}

var (
	_ types.Audio        = (*Audio)(nil)
	_ types.GlyphFactory = (*Glyphs)(nil)
	_ types.Renderer     = (*Renderer)(nil)
)
