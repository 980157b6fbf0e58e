package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// Attack pattern timing (弹幕模式时间参数，单位：秒 / 像素每秒)
const (
	// PatternRestartWindow 回合时间不超过该值时，未激活的模式可以重新开始
	PatternRestartWindow = 8.0
	// PatternFreezeTime 回合时间达到该值后停止生成新弹幕
	PatternFreezeTime = 9.5

	RainSpawnInterval = 0.3
	RainMaxSpawned    = 15
	RainMinSpeed      = 100
	RainMaxSpeed      = 200

	BarrierSpeed      = 80.0
	BarrierInset      = 10
	BarrierPlaceTime  = 0.8
	BarrierFrameDelay = 0.4
	// FadeInRate 淡入速度（每秒不透明度增量，约 0.85 秒完全显现）
	FadeInRate = 300.0 / 255.0

	PincerSpawnInterval = 0.8
	PincerSlots         = 6
	PincerSpeed         = 130.0
	PincerOffset        = 80

	SpawnerActivateTime = 2.0
	SpawnerInterval     = 0.5
	SpawnerChildSpeed   = 100.0
	SpawnerTopOffset    = 10
	SpawnerEdgeInset    = 5
	ChildFrameDelay     = 0.2
)

// PatternAssets 弹幕模式使用的纹理与音效
type PatternAssets struct {
	// Keywords 关键字雨的字形（if / else / elif / input / print / in）
	Keywords []types.Texture
	// Pairs 钳形弹幕的左右配对（圆括号、方括号、花括号）
	Pairs [][2]types.Texture
	// Mother 母体：[0] 出现阶段，[1] 发射阶段
	Mother [2]types.Texture
	// Child 小蛇动画帧
	Child []types.Texture
	// BarrierTop / BarrierBottom 屏障动画帧（从右侧、左侧滑入）
	BarrierTop    []types.Texture
	BarrierBottom []types.Texture

	HitSound    types.SoundID
	AppearSound types.SoundID
	BornSound   types.SoundID
	SlamSound   types.SoundID
	StrikeSound types.SoundID
}

// AttackInput 单帧弹幕推进的输入
type AttackInput struct {
	// Soul 灵魂碰撞框
	Soul utils.Rect
	// Arena 当前（已收缩的）战斗框
	Arena utils.Rect
	// Health 玩家生命值（被命中时扣减）
	Health *int
	// Damage 单次命中伤害
	Damage  int
	Pattern components.PatternID
	// Invulnerable 无敌标记：命中时置为 true，由战斗状态机在 1 秒后清除
	Invulnerable *bool
	Assets       *PatternAssets
	DT           float64
	// TurnTime 本回合躲避阶段已经过的时间
	TurnTime float64
	// Clear 为 true 时清空全部内部状态，不做其他处理
	Clear bool
}

// AttackPatternSystem Boss 弹幕模拟器
//
// 所有跨帧状态（弹幕池、生成节奏、激活标记、淡入进度、屏障与母体）都由本系统持有，
// 通过 Advance(AttackInput{Clear: true}) 统一清零。
// 更新与绘制分离：Advance 只推进状态，Draw 只读取状态。
type AttackPatternSystem struct {
	audio types.Audio
	rng   *rand.Rand

	pool components.ProjectilePool

	current      components.PatternID
	spawnTimer   float64
	spawned      int
	active       bool
	fade         float64
	shownAlpha   float64
	appearPlayed bool

	// barriers[0] 顶部（从右向左滑入），barriers[1] 底部（从左向右滑入）
	barriers     [2]components.Projectile
	barrierAnims [2]components.AnimationComponent

	mother    components.Projectile
	childAnim components.AnimationComponent
}

// NewAttackPatternSystem 创建弹幕模拟器
// rng 为 nil 时使用随机种子
func NewAttackPatternSystem(audio types.Audio, rng *rand.Rand) *AttackPatternSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &AttackPatternSystem{audio: audio, rng: rng}
}

// Pool 返回弹幕池（只读用途：调试覆盖层与测试）
func (s *AttackPatternSystem) Pool() *components.ProjectilePool {
	return &s.pool
}

// Active 当前模式是否仍在生成弹幕
func (s *AttackPatternSystem) Active() bool {
	return s.active
}

// Spawned 当前计数的已生成数量
func (s *AttackPatternSystem) Spawned() int {
	return s.spawned
}

// Current 当前模式
func (s *AttackPatternSystem) Current() components.PatternID {
	return s.current
}

// Advance 推进一帧弹幕
func (s *AttackPatternSystem) Advance(in AttackInput) {
	if in.Clear {
		s.clear()
		return
	}
	if in.Assets == nil || in.Health == nil || in.Invulnerable == nil {
		return
	}
	if s.current != in.Pattern {
		log.Printf("[AttackPatternSystem] Pattern %s -> %s", s.current, in.Pattern)
		s.current = in.Pattern
	}

	switch in.Pattern {
	case components.PatternRain, components.PatternBarrierRain:
		s.advanceRain(in)
	case components.PatternPincer:
		s.advancePincer(in)
	case components.PatternSpawner:
		s.advanceSpawner(in)
	default:
		return
	}

	if in.TurnTime >= PatternFreezeTime {
		s.freeze()
	}
}

// clear 清空全部状态
func (s *AttackPatternSystem) clear() {
	s.pool.Clear()
	s.current = components.PatternNone
	s.spawnTimer = 0
	s.spawned = 0
	s.active = false
	s.fade = 0
	s.shownAlpha = 0
	s.appearPlayed = false
	s.barriers = [2]components.Projectile{}
	s.barrierAnims = [2]components.AnimationComponent{}
	s.mother = components.Projectile{}
	s.childAnim = components.AnimationComponent{}
}

// restart 重新开始当前模式的生成
func (s *AttackPatternSystem) restart() {
	s.active = true
	s.spawnTimer = 0
	s.spawned = 0
	s.pool.Clear()
}

// freeze 停止生成；池完全空闲后重置计数
func (s *AttackPatternSystem) freeze() {
	s.active = false
	s.appearPlayed = false
	s.fade = 0
	if s.pool.Live() == 0 {
		s.spawned = 0
	}
}

func (s *AttackPatternSystem) play(id types.SoundID) {
	if s.audio != nil && id != "" {
		s.audio.Play(id, types.ChannelAny, 0)
	}
}

// hit 命中玩家：扣血并开启无敌窗口（每个窗口只结算一次）
func (s *AttackPatternSystem) hit(in AttackInput) {
	s.play(in.Assets.HitSound)
	*in.Health -= in.Damage
	*in.Invulnerable = true
}

// canHit 灵魂当前是否可以被该矩形命中
func canHit(in AttackInput, r utils.FRect) bool {
	return !*in.Invulnerable && in.Soul.IntersectsF(r)
}

func (s *AttackPatternSystem) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func sizedRect(tex types.Texture, x, y float64) utils.FRect {
	w, h := types.TextureSize(tex)
	return utils.FRect{X: x, Y: y, W: float64(w), H: float64(h)}
}

// ============================================================================
// 关键字雨 / 屏障雨
// ============================================================================

func (s *AttackPatternSystem) advanceRain(in AttackInput) {
	barrier := in.Pattern == components.PatternBarrierRain
	arena := in.Arena

	if !s.active && in.TurnTime <= PatternRestartWindow {
		if in.TurnTime <= BarrierPlaceTime {
			s.placeBarriers(in)
		}
		if barrier {
			s.fade = math.Min(s.fade+in.DT*FadeInRate, 1)
			s.shownAlpha = s.fade
			if !s.appearPlayed {
				s.play(in.Assets.AppearSound)
				s.appearPlayed = true
			}
			target := float64(arena.X - BarrierInset)
			top, bottom := &s.barriers[0].Rect, &s.barriers[1].Rect
			if top.X >= target || bottom.X <= target {
				if top.X >= target {
					top.X -= BarrierSpeed * in.DT
				}
				if bottom.X <= target {
					bottom.X += BarrierSpeed * in.DT
				}
			} else {
				s.restart()
			}
		} else {
			s.restart()
		}
	}

	if barrier {
		for i := range s.barriers {
			s.barriers[i].Texture = AdvanceAnimation(&s.barrierAnims[i], in.DT, BarrierFrameDelay, false)
			if canHit(in, s.barriers[i].Rect) {
				s.hit(in)
			}
		}
	}

	s.spawnTimer += in.DT
	if s.active && s.spawnTimer >= RainSpawnInterval && s.spawned < RainMaxSpawned && len(in.Assets.Keywords) > 0 {
		tex := in.Assets.Keywords[s.rng.Intn(len(in.Assets.Keywords))]
		x := float64(s.randInt(arena.X, arena.Right()))
		proj := components.Projectile{
			Texture: tex,
			Rect:    sizedRect(tex, x, float64(arena.Y)),
			Speed:   float64(s.randInt(RainMinSpeed, RainMaxSpeed)),
			Angle:   90,
		}
		if s.pool.Acquire(0, components.PoolCapacity, proj) >= 0 {
			s.play(in.Assets.AppearSound)
			s.spawned++
			s.spawnTimer = 0
		}
	}

	for i := range s.pool.Slots {
		slot := &s.pool.Slots[i]
		if !slot.Occupied {
			continue
		}
		p := &slot.Projectile
		p.Rect.Y += p.Speed * in.DT

		if p.Rect.Bottom() >= float64(arena.Bottom()) {
			s.play(in.Assets.SlamSound)
			s.pool.Release(i)
			continue
		}
		if canHit(in, p.Rect) {
			s.hit(in)
			s.pool.Release(i)
		}
	}
}

// placeBarriers 将屏障放到战斗框外侧的起始位置
func (s *AttackPatternSystem) placeBarriers(in AttackInput) {
	arena := in.Arena
	if s.barrierAnims[0].Frames == nil {
		s.barrierAnims[0].Frames = in.Assets.BarrierTop
		s.barrierAnims[1].Frames = in.Assets.BarrierBottom
	}
	var topTex, bottomTex types.Texture
	if len(in.Assets.BarrierTop) > 0 {
		topTex = in.Assets.BarrierTop[0]
	}
	if len(in.Assets.BarrierBottom) > 0 {
		bottomTex = in.Assets.BarrierBottom[0]
	}
	s.barriers[0] = components.Projectile{Texture: topTex, Rect: sizedRect(topTex, float64(arena.Right()), float64(arena.Y))}
	bottom := sizedRect(bottomTex, 0, 0)
	bottom.X = float64(arena.X) - bottom.W
	bottom.Y = float64(arena.Bottom()) - bottom.H
	s.barriers[1] = components.Projectile{Texture: bottomTex, Rect: bottom}
}

// ============================================================================
// 钳形
// ============================================================================

func (s *AttackPatternSystem) advancePincer(in AttackInput) {
	if !s.active && in.TurnTime <= PatternRestartWindow {
		s.restart()
	}

	s.spawnTimer += in.DT
	if s.active && s.spawnTimer >= PincerSpawnInterval && s.spawned < PincerSlots && len(in.Assets.Pairs) > 0 {
		for i := 0; i < PincerSlots; i += 2 {
			if s.pool.Slots[i].Occupied || s.pool.Slots[i+1].Occupied {
				continue
			}
			pair := in.Assets.Pairs[s.rng.Intn(len(in.Assets.Pairs))]
			left := sizedRect(pair[0], 0, float64(in.Soul.Y))
			left.X = float64(in.Soul.X) - left.W - PincerOffset
			right := sizedRect(pair[1], float64(in.Soul.X+PincerOffset), float64(in.Soul.Y))

			s.pool.Acquire(i, i+1, components.Projectile{Texture: pair[0], Rect: left, Speed: PincerSpeed})
			s.pool.Acquire(i+1, i+2, components.Projectile{Texture: pair[1], Rect: right, Speed: -PincerSpeed})
			s.play(in.Assets.AppearSound)
			s.spawned += 2
			s.spawnTimer = 0
			break
		}
	}

	for i := 0; i < PincerSlots; i++ {
		slot := &s.pool.Slots[i]
		if !slot.Occupied {
			continue
		}
		p := &slot.Projectile
		p.Rect.X += p.Speed * in.DT

		mate := i ^ 1
		if i%2 == 0 && s.pool.Slots[mate].Occupied {
			if p.Rect.Right() > s.pool.Slots[mate].Projectile.Rect.X {
				s.play(in.Assets.StrikeSound)
				s.pool.Release(i)
				s.pool.Release(mate)
				s.spawned -= 2
				continue
			}
		}

		if canHit(in, p.Rect) {
			s.hit(in)
			if s.pool.Slots[mate].Occupied {
				s.pool.Release(mate)
				s.spawned--
			}
			s.pool.Release(i)
			s.spawned--
		}
	}
}

// ============================================================================
// 母体发射
// ============================================================================

func (s *AttackPatternSystem) advanceSpawner(in AttackInput) {
	arena := in.Arena

	if !s.active && in.TurnTime <= PatternRestartWindow {
		s.fade = math.Min(s.fade+in.DT*FadeInRate, 1)
		s.shownAlpha = s.fade
		if !s.appearPlayed {
			s.play(in.Assets.AppearSound)
			s.appearPlayed = true
		}

		s.mother = components.Projectile{Texture: in.Assets.Mother[0]}
		r := sizedRect(in.Assets.Mother[0], 0, float64(arena.Y+SpawnerTopOffset))
		r.X = float64(arena.CenterX()) - r.W/2
		s.mother.Rect = r

		if in.TurnTime >= SpawnerActivateTime {
			s.mother.Texture = in.Assets.Mother[1]
			s.childAnim = components.AnimationComponent{Frames: in.Assets.Child}
			s.restart()
		}
	}

	s.spawnTimer += in.DT
	if s.active && s.spawnTimer >= SpawnerInterval && s.spawned < RainMaxSpawned && len(in.Assets.Child) > 0 {
		tex := in.Assets.Child[0]
		child := sizedRect(tex, 0, 0)
		child.X = s.mother.Rect.X + s.mother.Rect.W/2 - child.W/2
		child.Y = s.mother.Rect.Y + s.mother.Rect.H/2 - child.H/2

		targetX := float64(in.Soul.CenterX())
		targetY := float64(in.Soul.CenterY())
		startX := child.X + child.W/2
		startY := child.Y + child.H/2
		heading := math.Atan2(targetY-startY, targetX-startX)

		proj := components.Projectile{
			Texture: tex,
			Rect:    child,
			Speed:   SpawnerChildSpeed,
			VelX:    math.Cos(heading) * SpawnerChildSpeed,
			VelY:    math.Sin(heading) * SpawnerChildSpeed,
			Angle:   heading*180/math.Pi + 90,
		}
		if s.pool.Acquire(0, components.PoolCapacity, proj) >= 0 {
			s.play(in.Assets.BornSound)
			s.spawned++
			s.spawnTimer = 0
		}
	}

	var frame types.Texture
	if s.pool.Live() > 0 {
		frame = AdvanceAnimation(&s.childAnim, in.DT, ChildFrameDelay, false)
	}

	for i := range s.pool.Slots {
		slot := &s.pool.Slots[i]
		if !slot.Occupied {
			continue
		}
		p := &slot.Projectile
		if frame != nil {
			p.Texture = frame
		}
		p.Rect.X += p.VelX * in.DT
		p.Rect.Y += p.VelY * in.DT

		if p.Rect.X < float64(arena.X+SpawnerEdgeInset) || p.Rect.Right() > float64(arena.Right()) ||
			p.Rect.Y < float64(arena.Y) || p.Rect.Bottom() > float64(arena.Bottom()) {
			s.play(in.Assets.SlamSound)
			s.pool.Release(i)
			continue
		}
		if canHit(in, p.Rect) {
			s.hit(in)
			s.pool.Release(i)
		}
	}
}

// Draw 绘制当前模式的屏障、母体与弹幕
func (s *AttackPatternSystem) Draw(r types.Renderer) {
	if r == nil {
		return
	}
	switch s.current {
	case components.PatternBarrierRain:
		opts := types.DrawOptions{Alpha: s.shownAlpha}
		for _, b := range s.barriers {
			if b.Texture != nil {
				r.DrawTextureF(b.Texture, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, opts)
			}
		}
	case components.PatternSpawner:
		if s.mother.Texture != nil {
			m := s.mother.Rect
			r.DrawTextureF(s.mother.Texture, m.X, m.Y, m.W, m.H, types.DrawOptions{Alpha: s.shownAlpha})
		}
	case components.PatternNone:
		return
	}

	for i := range s.pool.Slots {
		slot := &s.pool.Slots[i]
		if !slot.Occupied || slot.Projectile.Texture == nil {
			continue
		}
		p := slot.Projectile
		r.DrawTextureF(p.Texture, p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, types.DrawOptions{Angle: p.Angle, Alpha: 1})
	}
}
