package game

import (
	"image/color"
	"math"

	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FaceResolver 按文字样式取得字体
type FaceResolver interface {
	Face(style types.TextStyle) text.Face
}

// EbitenRenderer 基于 Ebitengine 的 types.Renderer 实现
// 每帧由场景调用 Begin 绑定目标画布
type EbitenRenderer struct {
	screen *ebiten.Image
	faces  FaceResolver
}

// NewEbitenRenderer 创建渲染器
func NewEbitenRenderer(faces FaceResolver) *EbitenRenderer {
	return &EbitenRenderer{faces: faces}
}

var _ types.Renderer = (*EbitenRenderer)(nil)

// Begin 绑定本帧的目标画布
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// DrawTexture 将纹理拉伸绘制到整数矩形
func (r *EbitenRenderer) DrawTexture(tex types.Texture, x, y, w, h int) {
	r.DrawTextureF(tex, float64(x), float64(y), float64(w), float64(h), types.Opaque())
}

// DrawTextureF 将纹理绘制到浮点矩形，围绕矩形中心旋转
func (r *EbitenRenderer) DrawTextureF(tex types.Texture, x, y, w, h float64, opts types.DrawOptions) {
	img, ok := tex.(*ebiten.Image)
	if r.screen == nil || !ok || img == nil || opts.Alpha <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if opts.Angle != 0 {
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(opts.Angle * math.Pi / 180)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Translate(x, y)
	if opts.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	}
	r.screen.DrawImage(img, op)
}

// FillRect 填充纯色矩形
func (r *EbitenRenderer) FillRect(x, y, w, h int, c color.Color) {
	if r.screen == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText 以左上角为锚点绘制文字
func (r *EbitenRenderer) DrawText(s string, x, y int, style types.TextStyle) {
	if r.screen == nil || r.faces == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	if style.Color != nil {
		op.ColorScale.ScaleWithColor(style.Color)
	}
	text.Draw(r.screen, s, r.faces.Face(style), op)
}
