package game

import (
	"image/color"
	"math"

	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GlyphFactory 为打字机效果逐字生成纹理
// 每个字形一张小图，宽度取字体的实际测量值（比例字体）
type GlyphFactory struct {
	faces FaceResolver
	// live 尚未释放的字形数量（调试面板显示，用于发现泄漏）
	live int
}

// NewGlyphFactory 创建字形工厂
func NewGlyphFactory(faces FaceResolver) *GlyphFactory {
	return &GlyphFactory{faces: faces}
}

var _ types.GlyphFactory = (*GlyphFactory)(nil)

// NewGlyph 渲染一个字形
// 空白字形也生成一张透明纹理，保证排版时有宽度
func (g *GlyphFactory) NewGlyph(glyph string, style types.TextStyle) types.Texture {
	face := g.faces.Face(style)
	w, h := text.Measure(glyph, face, 0)
	lh := lineHeight(face)

	img := ebiten.NewImage(max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), lh, 1))
	op := &text.DrawOptions{}
	c := style.Color
	if c == nil {
		c = color.White
	}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, glyph, face, op)

	g.live++
	return img
}

// Release 释放字形纹理
func (g *GlyphFactory) Release(tex types.Texture) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	img.Deallocate()
	g.live--
}

// LineHeight 返回字体的默认行高
func (g *GlyphFactory) LineHeight(style types.TextStyle) int {
	return lineHeight(g.faces.Face(style))
}

// MeasureText 返回整段文字的像素宽高
func (g *GlyphFactory) MeasureText(s string, style types.TextStyle) (int, int) {
	w, h := text.Measure(s, g.faces.Face(style), 0)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// Live 返回尚未释放的字形数量
func (g *GlyphFactory) Live() int {
	return g.live
}

func lineHeight(face text.Face) int {
	m := face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent))
}
