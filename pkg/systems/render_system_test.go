package systems

import (
	"testing"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/ecs"
	"github.com/decker502/ctale/pkg/utils"
)

// addSprite 创建一个精灵实体
func addSprite(em *ecs.EntityManager, sprite *components.SpriteComponent, rect utils.Rect, layer int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.PositionComponent{Rect: rect, Layer: layer})
	return id
}

// TestRenderSystemLayerOrder 按层级从小到大绘制
func TestRenderSystemLayerOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	top := newTex("top", 10, 10)
	bottom := newTex("bottom", 10, 10)
	addSprite(em, components.NewSprite(top), utils.Rect{W: 10, H: 10}, 2)
	addSprite(em, components.NewSprite(bottom), utils.Rect{W: 10, H: 10}, 0)

	r := &fakeRenderer{}
	NewRenderSystem(em).Draw(r)

	if len(r.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(r.draws))
	}
	if r.draws[0].tex != bottom || r.draws[1].tex != top {
		t.Error("lower layer should be drawn first")
	}
}

// TestRenderSystemSkipsHidden 隐藏、透明或没有纹理的精灵不绘制
func TestRenderSystemSkipsHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	hidden := components.NewSprite(newTex("hidden", 10, 10))
	hidden.Hidden = true
	transparent := components.NewSprite(newTex("transparent", 10, 10))
	transparent.Alpha = 0
	addSprite(em, hidden, utils.Rect{}, 0)
	addSprite(em, transparent, utils.Rect{}, 0)
	addSprite(em, components.NewSprite(nil), utils.Rect{}, 0)

	// 没有位置组件的实体不参与渲染
	orphan := em.CreateEntity()
	ecs.AddComponent(em, orphan, components.NewSprite(newTex("orphan", 10, 10)))

	r := &fakeRenderer{}
	NewRenderSystem(em).Draw(r)
	if len(r.draws) != 0 {
		t.Errorf("draws = %d, want 0", len(r.draws))
	}
}

// TestRenderSystemNativeSize 未指定尺寸时使用纹理尺寸，并传递透明度
func TestRenderSystemNativeSize(t *testing.T) {
	em := ecs.NewEntityManager()
	sprite := components.NewSprite(newTex("logo", 580, 63))
	sprite.Alpha = 0.5
	addSprite(em, sprite, utils.Rect{X: 30, Y: 208}, 0)

	r := &fakeRenderer{}
	NewRenderSystem(em).Draw(r)
	if len(r.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(r.draws))
	}
	d := r.draws[0]
	if d.x != 30 || d.y != 208 || d.w != 580 || d.h != 63 {
		t.Errorf("drawn at %v,%v size %vx%v", d.x, d.y, d.w, d.h)
	}
	if d.opts.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", d.opts.Alpha)
	}
}

// TestRenderSystemWithAnimation 动画系统更新的帧被渲染系统绘制
func TestRenderSystemWithAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	on := newTex("on", 10, 10)
	off := newTex("off", 10, 10)
	id := addSprite(em, components.NewSprite(on), utils.Rect{W: 10, H: 10}, 0)
	ecs.AddComponent(em, id, components.NewAnimation(0.7, on, off))

	NewAnimationSystem(em).Update(0.75)
	r := &fakeRenderer{}
	NewRenderSystem(em).Draw(r)
	if !r.drew(off) {
		t.Error("second frame should be drawn after one cooldown")
	}
}
