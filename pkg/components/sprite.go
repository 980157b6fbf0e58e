package components

import (
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// SpriteComponent 存储实体当前绘制的纹理
type SpriteComponent struct {
	Texture types.Texture
	Alpha   float64 // 不透明度 0~1
	Hidden  bool
}

// NewSprite 创建完全不透明的精灵
func NewSprite(tex types.Texture) *SpriteComponent {
	return &SpriteComponent{Texture: tex, Alpha: 1}
}

// PositionComponent 实体在屏幕上的目标矩形
type PositionComponent struct {
	Rect utils.Rect
	// Layer 绘制层级，数值小的先画
	Layer int
}
