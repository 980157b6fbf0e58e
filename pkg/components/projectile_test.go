package components

import "testing"

// TestProjectilePoolAcquire 测试槽位分配与池满
func TestProjectilePoolAcquire(t *testing.T) {
	var pool ProjectilePool

	for i := 0; i < PoolCapacity; i++ {
		if got := pool.Acquire(0, PoolCapacity, Projectile{Speed: float64(i)}); got != i {
			t.Fatalf("Acquire #%d = %d", i, got)
		}
	}
	if got := pool.Acquire(0, PoolCapacity, Projectile{}); got != -1 {
		t.Errorf("full pool Acquire = %d, want -1", got)
	}
	if pool.Live() != PoolCapacity {
		t.Errorf("Live = %d, want %d", pool.Live(), PoolCapacity)
	}

	pool.Release(4)
	if got := pool.Acquire(0, PoolCapacity, Projectile{Speed: 99}); got != 4 {
		t.Errorf("Acquire after release = %d, want 4", got)
	}
	if pool.Slots[4].Projectile.Speed != 99 {
		t.Error("reused slot should hold the new projectile")
	}
}

// TestProjectilePoolRange 测试限定范围分配（钳形弹幕只使用前 6 个槽位）
func TestProjectilePoolRange(t *testing.T) {
	var pool ProjectilePool

	for i := 0; i < 6; i++ {
		pool.Acquire(0, 6, Projectile{})
	}
	if got := pool.Acquire(0, 6, Projectile{}); got != -1 {
		t.Errorf("Acquire beyond range = %d, want -1", got)
	}
	if got := pool.Acquire(-3, 100, Projectile{}); got != 6 {
		t.Errorf("out-of-range bounds should be clamped, got %d", got)
	}
}

// TestProjectilePoolClear 测试清空
func TestProjectilePoolClear(t *testing.T) {
	var pool ProjectilePool
	pool.Acquire(0, PoolCapacity, Projectile{VelX: 3, Angle: 45})
	pool.Release(-1)
	pool.Release(PoolCapacity)

	pool.Clear()
	if pool.Live() != 0 {
		t.Errorf("Live = %d after Clear", pool.Live())
	}
	if pool.Slots[0].Projectile.VelX != 0 || pool.Slots[0].Projectile.Angle != 0 {
		t.Error("Clear should zero kinematics")
	}
}
