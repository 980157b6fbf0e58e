package systems

import (
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/ecs"
	"github.com/decker502/ctale/pkg/types"
)

// AdvanceAnimation 推进帧动画并返回当前应绘制的帧
//
// 规则:
//   - 没有帧时返回 nil
//   - cooldown <= 0 时每次调用前进恰好一帧，计时清零
//   - 否则累加 dt，前进 floor(timer/cooldown) 帧，保留余下的时间
//   - blink 模式（仅两帧动画）：第二帧只在 cooldown/7 内可见，其余时间强制回到第 0 帧
func AdvanceAnimation(anim *components.AnimationComponent, dt, cooldown float64, blink bool) types.Texture {
	if anim == nil || len(anim.Frames) == 0 {
		return nil
	}
	n := len(anim.Frames)

	if cooldown <= 0 {
		anim.Counter = (anim.Counter + 1) % n
		anim.Timer = 0
		return anim.Frames[anim.Counter]
	}

	anim.Timer += dt
	if steps := int(anim.Timer / cooldown); steps > 0 {
		anim.Counter = (anim.Counter + steps) % n
		anim.Timer -= float64(steps) * cooldown
	}

	if blink && n == 2 {
		if anim.Counter != 1 || anim.Timer >= cooldown/7 {
			anim.Counter = 0
		}
	}

	anim.Counter %= n
	if anim.Counter < 0 {
		anim.Counter += n
	}
	return anim.Frames[anim.Counter]
}

// ResetAnimation 回到第 0 帧并清空计时
func ResetAnimation(anim *components.AnimationComponent) {
	if anim == nil {
		return
	}
	anim.Counter = 0
	anim.Timer = 0
}

// AnimationSystem 管理所有实体的帧动画
// 每帧为拥有 AnimationComponent + SpriteComponent 的实体推进动画并更新精灵纹理
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.AnimationComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		if anim.Paused {
			continue
		}
		if frame := AdvanceAnimation(anim, deltaTime, anim.Cooldown, anim.Blink); frame != nil {
			sprite.Texture = frame
		}
	}
}
