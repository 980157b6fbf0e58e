package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 战斗框收缩/展开使用 EaseOutCubic。

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress 返回计时器在 duration 内的进度，duration <= 0 视为已完成
func Progress(timer, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(timer / duration)
}

// RoundInt 四舍五入到整数（+0.5 截断，仅用于非负像素值）
func RoundInt(v float64) int {
	return int(v + 0.5)
}

// ClampInt 将整数限制在 [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap 将下标循环回绕到 [0, n)，n <= 0 时返回 0
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
