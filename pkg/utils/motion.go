package utils

import "math"

// ReferenceFPS 速度常量（像素/帧）标定时的帧率
const ReferenceFPS = 60.0

// motionEpsilon 吸收 dt*60 的浮点误差，避免 1.9999 被截成 1
const motionEpsilon = 1e-6

// Motion 把"每帧 N 像素"的速度换算成按 dt 的整数位移
// 不足 1 像素的部分留到下一帧，帧率变化时总位移不变
type Motion struct {
	rem float64
}

// Step 返回本帧应移动的像素数（非负），perFrame 为 60fps 下每帧的像素
func (m *Motion) Step(perFrame, dt float64) int {
	if perFrame <= 0 || dt <= 0 {
		return 0
	}
	m.rem += perFrame * dt * ReferenceFPS
	n := math.Floor(m.rem + motionEpsilon)
	m.rem -= n
	if m.rem < 0 {
		m.rem = 0
	}
	return int(n)
}

// Reset 丢弃累积的小数位移
func (m *Motion) Reset() {
	m.rem = 0
}
