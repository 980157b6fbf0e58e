package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/utils"
)

// patternHarness 弹幕测试环境
type patternHarness struct {
	sys          *AttackPatternSystem
	audio        *fakeAudio
	assets       PatternAssets
	health       int
	invulnerable bool
	arena        utils.Rect
	soul         utils.Rect
}

func newPatternHarness() *patternHarness {
	audio := newFakeAudio()
	return &patternHarness{
		sys:    NewAttackPatternSystem(audio, rand.New(rand.NewSource(3))),
		audio:  audio,
		assets: testPatternAssets(),
		health: 20,
		arena:  utils.Rect{X: 254, Y: 240, W: 132, H: 132},
		// 默认放在战斗框外，不会被命中
		soul: utils.Rect{X: 0, Y: 0, W: 20, H: 20},
	}
}

func (h *patternHarness) advance(pattern components.PatternID, dt, turnTime float64) {
	h.sys.Advance(AttackInput{
		Soul:         h.soul,
		Arena:        h.arena,
		Health:       &h.health,
		Damage:       3,
		Pattern:      pattern,
		Invulnerable: &h.invulnerable,
		Assets:       &h.assets,
		DT:           dt,
		TurnTime:     turnTime,
	})
}

// run 从 from 到 to 以 dt 为步长推进
func (h *patternHarness) run(pattern components.PatternID, from, to, dt float64, each func()) {
	for tt := from; tt <= to; tt += dt {
		h.advance(pattern, dt, tt)
		if each != nil {
			each()
		}
	}
}

// TestRainRespectsPoolCap 关键字雨同时存在的弹幕不超过 15 个，清空后为 0
func TestRainRespectsPoolCap(t *testing.T) {
	h := newPatternHarness()
	h.arena = utils.Rect{X: 20, Y: 0, W: 600, H: 2000}

	maxLive := 0
	h.run(components.PatternRain, 0, 9.5, 0.05, func() {
		maxLive = max(maxLive, h.sys.Pool().Live())
		if h.sys.Spawned() > RainMaxSpawned {
			t.Fatalf("spawned %d > %d", h.sys.Spawned(), RainMaxSpawned)
		}
	})
	if maxLive == 0 || maxLive > components.PoolCapacity {
		t.Errorf("max live projectiles = %d", maxLive)
	}

	h.sys.Advance(AttackInput{Clear: true})
	if h.sys.Pool().Live() != 0 || h.sys.Active() || h.sys.Spawned() != 0 {
		t.Errorf("clear left live=%d active=%v spawned=%d", h.sys.Pool().Live(), h.sys.Active(), h.sys.Spawned())
	}
	if h.sys.Current() != components.PatternNone {
		t.Errorf("current = %s after clear", h.sys.Current())
	}
}

// TestRainSlamsOnFloor 落地的弹幕播放撞击音效并被回收
func TestRainSlamsOnFloor(t *testing.T) {
	h := newPatternHarness()
	h.run(components.PatternRain, 0, 5, 0.05, nil)

	if h.audio.count(h.assets.SlamSound) == 0 {
		t.Error("expected slam sounds when keywords reach the floor")
	}
	if h.health != 20 {
		t.Errorf("soul outside the arena took damage: %d", h.health)
	}
}

// TestDamageOncePerWindow 无敌窗口内只结算一次伤害
func TestDamageOncePerWindow(t *testing.T) {
	h := newPatternHarness()
	h.soul = h.arena

	h.run(components.PatternRain, 0, 5, 0.05, nil)

	if !h.invulnerable {
		t.Fatal("soul covering the arena should have been hit")
	}
	if h.health != 17 {
		t.Errorf("health = %d, want 17 (one hit)", h.health)
	}
}

// TestFreezeRecyclesPool 9.5 秒后停止生成，全部回收后计数清零
func TestFreezeRecyclesPool(t *testing.T) {
	h := newPatternHarness()
	h.run(components.PatternRain, 0, 9.5, 0.05, nil)
	h.run(components.PatternRain, 9.55, 12, 0.05, nil)

	if h.sys.Active() {
		t.Error("pattern should be frozen after 9.5s")
	}
	if h.sys.Pool().Live() != 0 || h.sys.Spawned() != 0 {
		t.Errorf("live=%d spawned=%d after freeze", h.sys.Pool().Live(), h.sys.Spawned())
	}
}

// TestBarrierRainFadesIn 屏障雨：屏障淡入并滑入战斗框
func TestBarrierRainFadesIn(t *testing.T) {
	h := newPatternHarness()
	h.invulnerable = true
	h.run(components.PatternBarrierRain, 0, 3, 0.05, nil)

	if !h.sys.Active() {
		t.Error("barrier rain should start once the barriers are in place")
	}
	if h.audio.count(h.assets.AppearSound) == 0 {
		t.Error("appear sound should play")
	}

	r := &fakeRenderer{}
	h.sys.Draw(r)
	if !r.drew(h.assets.BarrierTop[0]) && !r.drew(h.assets.BarrierTop[1]) {
		t.Error("top barrier not drawn")
	}
}

// TestPincerPairsStrike 钳形弹幕相遇时播放音效且不造成伤害
func TestPincerPairsStrike(t *testing.T) {
	h := newPatternHarness()
	h.soul = utils.Rect{X: 310, Y: 296, W: 20, H: 20}
	h.invulnerable = true

	maxLive := 0
	h.run(components.PatternPincer, 0, 5, 0.02, func() {
		maxLive = max(maxLive, h.sys.Pool().Live())
	})

	if h.audio.count(h.assets.StrikeSound) == 0 {
		t.Error("pairs should meet and strike")
	}
	if maxLive > PincerSlots {
		t.Errorf("live pincers = %d, want <= %d", maxLive, PincerSlots)
	}
	if h.health != 20 {
		t.Errorf("health = %d, pincers should not damage an invulnerable soul", h.health)
	}
}

// TestPincerHitReleasesPair 命中灵魂时同一对的两半一起回收
func TestPincerHitReleasesPair(t *testing.T) {
	h := newPatternHarness()
	h.soul = utils.Rect{X: 310, Y: 296, W: 20, H: 20}

	h.run(components.PatternPincer, 0, 1.5, 0.02, nil)

	if h.health != 17 {
		t.Errorf("health = %d, want 17", h.health)
	}
	pool := h.sys.Pool()
	for i := 0; i < PincerSlots; i += 2 {
		if pool.Slots[i].Occupied != pool.Slots[i+1].Occupied {
			t.Errorf("pair %d half released", i/2)
		}
	}
}

// TestSpawnerAimsAtSoul 子弹幕朝生成时灵魂的位置飞行
func TestSpawnerAimsAtSoul(t *testing.T) {
	h := newPatternHarness()
	h.invulnerable = true
	h.soul = utils.Rect{X: h.arena.X + 10, Y: h.arena.Bottom() - 30, W: 20, H: 20}

	var child *components.Projectile
	for tt := 0.0; tt <= 4 && child == nil; tt += 0.05 {
		h.advance(components.PatternSpawner, 0.05, tt)
		for i := range h.sys.Pool().Slots {
			if h.sys.Pool().Slots[i].Occupied {
				p := h.sys.Pool().Slots[i].Projectile
				child = &p
				break
			}
		}
	}
	if child == nil {
		t.Fatal("spawner never emitted a child")
	}
	if child.VelX >= 0 || child.VelY <= 0 {
		t.Errorf("child velocity (%.1f, %.1f) not aimed at the lower-left soul", child.VelX, child.VelY)
	}
	if speed := math.Hypot(child.VelX, child.VelY); math.Abs(speed-SpawnerChildSpeed) > 1e-6 {
		t.Errorf("child speed = %v, want %v", speed, SpawnerChildSpeed)
	}
	heading := math.Atan2(child.VelY, child.VelX) * 180 / math.Pi
	if math.Abs(child.Angle-(heading+90)) > 1e-6 {
		t.Errorf("angle = %v, want %v", child.Angle, heading+90)
	}
	if h.audio.count(h.assets.BornSound) == 0 {
		t.Error("born sound should play")
	}
}

// TestAdvanceWithoutRefs 缺少引用时不推进也不崩溃
func TestAdvanceWithoutRefs(t *testing.T) {
	s := NewAttackPatternSystem(nil, nil)
	s.Advance(AttackInput{Pattern: components.PatternRain, DT: 0.1})
	if s.Pool().Live() != 0 {
		t.Error("nothing should spawn without assets")
	}
	s.Draw(nil)
}
