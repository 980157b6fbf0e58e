// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
//
// 核心逻辑（对话、弹幕、战斗状态机）只通过这里的接口访问渲染、音频和文字排版，
// 具体实现位于 pkg/game（Ebitengine），测试中使用假实现。
package types

import (
	"image"
	"image/color"
)

// Texture 是可绘制的纹理句柄
// *ebiten.Image 天然满足该接口
type Texture interface {
	Bounds() image.Rectangle
}

// TextureSize 返回纹理的像素宽高，nil 纹理返回 0, 0
func TextureSize(t Texture) (int, int) {
	if t == nil {
		return 0, 0
	}
	b := t.Bounds()
	return b.Dx(), b.Dy()
}

// DrawOptions 描述一次绘制的可选参数
type DrawOptions struct {
	// Angle 旋转角度（度），围绕目标矩形中心旋转
	Angle float64
	// Alpha 不透明度 0.0 ~ 1.0
	Alpha float64
}

// Opaque 不旋转、完全不透明的绘制参数
func Opaque() DrawOptions {
	return DrawOptions{Alpha: 1}
}

// Renderer 渲染服务
// 核心逻辑只会"把纹理画到某个矩形上"，从不关心像素格式
type Renderer interface {
	// DrawTexture 将纹理绘制到整数矩形 (x, y, w, h)
	DrawTexture(tex Texture, x, y, w, h int)
	// DrawTextureF 将纹理绘制到浮点矩形，支持旋转与透明度
	DrawTextureF(tex Texture, x, y, w, h float64, opts DrawOptions)
	// FillRect 填充纯色矩形
	FillRect(x, y, w, h int, c color.Color)
	// DrawText 以左上角为锚点绘制一整段文字（菜单、血量等固定标签）
	DrawText(text string, x, y int, style TextStyle)
}

// TextStyle 文字样式（字体 + 颜色）
type TextStyle struct {
	// FontID 字体资源ID（如 "FONT_DIALOGUE"）
	FontID string
	// Size 字号（像素）
	Size float64
	// Color 文字颜色
	Color color.Color
}

// GlyphFactory 单字形纹理工厂
// 每个显示出来的字形都单独生成一张小纹理，从而按字形测量比例宽度
type GlyphFactory interface {
	// NewGlyph 为一个 UTF-8 字形生成纹理
	NewGlyph(glyph string, style TextStyle) Texture
	// Release 释放字形纹理
	Release(tex Texture)
	// LineHeight 返回该样式的默认行高
	LineHeight(style TextStyle) int
	// MeasureText 返回整段文字的像素宽高
	MeasureText(text string, style TextStyle) (int, int)
}

// SoundID 音频资源ID（对应 resources.yaml 中的 id）
type SoundID string

// 逻辑声道
const (
	// ChannelAny 任意空闲声道
	ChannelAny = -1
	// ChannelMusic 背景音乐
	ChannelMusic = 0
	// ChannelSFX 瞬时音效
	ChannelSFX = 2
	// ChannelDialogue 对话打字音
	ChannelDialogue = 3
)

// Audio 音频服务
// 核心逻辑只发出播放/停止命令，从不加载音频数据
type Audio interface {
	// Play 在指定声道播放音频，loops 为额外循环次数（-1 表示无限循环）
	Play(id SoundID, channel int, loops int)
	// Stop 停止指定声道
	Stop(channel int)
	// IsPlaying 查询声道是否正在播放
	IsPlaying(channel int) bool
}
