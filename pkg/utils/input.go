// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSnapshot 存储当前帧的按键状态
// 每帧采样一次，按逻辑按键索引
type InputSnapshot struct {
	Keys [types.KeyCount]bool
}

// Down 返回按键是否处于按下状态
func (s InputSnapshot) Down(k types.Key) bool {
	if k < 0 || k >= types.KeyCount {
		return false
	}
	return s.Keys[k]
}

// keyBindings 逻辑按键到物理键位的映射
var keyBindings = map[types.Key][]ebiten.Key{
	types.KeyUp:       {ebiten.KeyW, ebiten.KeyArrowUp},
	types.KeyDown:     {ebiten.KeyS, ebiten.KeyArrowDown},
	types.KeyLeft:     {ebiten.KeyA, ebiten.KeyArrowLeft},
	types.KeyRight:    {ebiten.KeyD, ebiten.KeyArrowRight},
	types.KeyConfirm:  {ebiten.KeyE, ebiten.KeyEnter},
	types.KeyCancel:   {ebiten.KeyTab, ebiten.KeyBackspace},
	types.KeyInteract: {ebiten.KeySpace},
}

// PollKeyboard 采样当前键盘状态
func PollKeyboard() InputSnapshot {
	var s InputSnapshot
	for k, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				s.Keys[k] = true
				break
			}
		}
	}
	return s
}

// InputTracker 比较前后两帧快照计算边沿触发
//
// 使用方式：
//
//	tracker.Push(utils.PollKeyboard())
//	if tracker.JustPressed(types.KeyConfirm) { ... }
type InputTracker struct {
	prev InputSnapshot
	cur  InputSnapshot
}

// Push 记录新一帧的快照
func (t *InputTracker) Push(s InputSnapshot) {
	t.prev = t.cur
	t.cur = s
}

// Current 返回当前帧快照
func (t *InputTracker) Current() InputSnapshot {
	return t.cur
}

// Held 按键当前是否按下
func (t *InputTracker) Held(k types.Key) bool {
	return t.cur.Down(k)
}

// JustPressed 按键是否在本帧从抬起变为按下
func (t *InputTracker) JustPressed(k types.Key) bool {
	return t.cur.Down(k) && !t.prev.Down(k)
}

// Reset 清空历史（场景切换时调用，避免上一场景的按键泄漏）
func (t *InputTracker) Reset() {
	t.prev = InputSnapshot{}
	t.cur = InputSnapshot{}
}

// Debouncer 最小间隔去抖
// 计时器每帧累加 dt，只有超过间隔的触发才会被接受，接受后计时清零
//
// Cap > 0 时计时到达 Cap 后回落到 Fallback，按住方向键时以固定节奏重复
type Debouncer struct {
	Interval float64
	Cap      float64
	Fallback float64
	elapsed  float64
}

// Tick 推进计时
func (d *Debouncer) Tick(dt float64) {
	d.elapsed += dt
	if d.Cap > 0 && d.elapsed >= d.Cap {
		d.elapsed = d.Fallback
	}
}

// Elapsed 距上次接受（或清零）的时间
func (d *Debouncer) Elapsed() float64 {
	return d.elapsed
}

// Ready 是否已超过最小间隔
func (d *Debouncer) Ready() bool {
	return d.elapsed >= d.Interval
}

// Accept 如果已就绪且 trigger 为真，则接受本次触发并清零计时
func (d *Debouncer) Accept(trigger bool) bool {
	if trigger && d.Ready() {
		d.elapsed = 0
		return true
	}
	return false
}

// Reset 清零计时（进入新状态时调用）
func (d *Debouncer) Reset() {
	d.elapsed = 0
}
