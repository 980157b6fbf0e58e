package systems

import (
	"sort"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/ecs"
	"github.com/decker502/ctale/pkg/types"
)

// RenderSystem 绘制所有拥有 PositionComponent + SpriteComponent 的实体
//
// 职责范围：
//   - 标题、过场等静态画面中的精灵实体
//   - 按 Layer 从小到大绘制，同层按实体创建顺序
//
// 不包括：
//   - 战斗界面（BattleSystem.Draw 直接绘制，状态全部在 EncounterState 中）
//   - 对话框（DialogueSystem.Draw）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	// order 复用的排序缓冲，避免每帧分配
	order []ecs.EntityID
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 按层级绘制精灵实体
func (s *RenderSystem) Draw(r types.Renderer) {
	if r == nil {
		return
	}
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	s.order = append(s.order[:0], entities...)
	sort.SliceStable(s.order, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.order[i])
		pj, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.order[j])
		return pi.Layer < pj.Layer
	})

	for _, id := range s.order {
		s.drawEntity(r, id)
	}
}

// drawEntity 绘制单个精灵实体
func (s *RenderSystem) drawEntity(r types.Renderer, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Hidden || sprite.Texture == nil || sprite.Alpha <= 0 {
		return
	}

	rect := pos.Rect
	if rect.W == 0 || rect.H == 0 {
		// 未指定尺寸时使用纹理原始尺寸
		rect.W, rect.H = types.TextureSize(sprite.Texture)
	}
	opts := types.Opaque()
	opts.Alpha = sprite.Alpha
	r.DrawTextureF(sprite.Texture, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), opts)
}
