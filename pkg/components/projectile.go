package components

import (
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// PoolCapacity 弹幕池容量（同时存在的弹幕上限）
const PoolCapacity = 15

// Projectile 弹幕对象
type Projectile struct {
	Texture types.Texture
	Rect    utils.FRect

	// 运动学状态，按攻击模式取用
	Speed float64 // 标量速度（雨、钳形）
	VelX  float64 // 速度向量（生成器）
	VelY  float64
	Angle float64 // 朝向角（度），用于绘制旋转
}

// ProjectileSlot 弹幕池槽位
type ProjectileSlot struct {
	Occupied   bool
	Projectile Projectile
}

// ProjectilePool 固定容量的弹幕池，槽位按下标寻址
type ProjectilePool struct {
	Slots [PoolCapacity]ProjectileSlot
}

// Acquire 在 [from, to) 范围内寻找第一个空闲槽位并占用
// 池满时返回 -1（生成被静默跳过）
func (p *ProjectilePool) Acquire(from, to int, proj Projectile) int {
	to = min(to, PoolCapacity)
	for i := max(from, 0); i < to; i++ {
		if !p.Slots[i].Occupied {
			p.Slots[i] = ProjectileSlot{Occupied: true, Projectile: proj}
			return i
		}
	}
	return -1
}

// Release 释放槽位
func (p *ProjectilePool) Release(i int) {
	if i >= 0 && i < PoolCapacity {
		p.Slots[i].Occupied = false
	}
}

// Live 返回被占用的槽位数量
func (p *ProjectilePool) Live() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Occupied {
			n++
		}
	}
	return n
}

// Clear 清空所有槽位及其运动学状态
func (p *ProjectilePool) Clear() {
	for i := range p.Slots {
		p.Slots[i] = ProjectileSlot{}
	}
}
