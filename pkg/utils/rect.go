package utils

// Rect 整数轴对齐矩形（屏幕像素坐标）
type Rect struct {
	X, Y, W, H int
}

// FRect 浮点轴对齐矩形（弹幕等需要亚像素移动的对象）
type FRect struct {
	X, Y, W, H float64
}

// Right 返回右边界（不含）
func (r Rect) Right() int { return r.X + r.W }

// Bottom 返回下边界（不含）
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX 返回中心 X
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY 返回中心 Y
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ToF 转换为浮点矩形
func (r Rect) ToF() FRect {
	return FRect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Right 返回右边界（不含）
func (r FRect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界（不含）
func (r FRect) Bottom() float64 { return r.Y + r.H }

// Intersects 判断两个整数矩形是否相交
// 使用半开区间比较：只共享一条边或一个角不算相交
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() {
		return false
	}
	if r.Y >= o.Bottom() {
		return false
	}
	if r.Right() <= o.X {
		return false
	}
	if r.Bottom() <= o.Y {
		return false
	}
	return true
}

// IntersectsF 判断整数矩形与浮点矩形是否相交
// 比较前将浮点矩形的边界截断为整数，与整数版本保持一致的边界语义
func (r Rect) IntersectsF(o FRect) bool {
	left := int(o.X)
	top := int(o.Y)
	right := int(o.X + o.W)
	bottom := int(o.Y + o.H)

	if r.X >= right {
		return false
	}
	if r.Y >= bottom {
		return false
	}
	if r.Right() <= left {
		return false
	}
	if r.Bottom() <= top {
		return false
	}
	return true
}

// CheckCollision 检查矩形是否与任一盒子相交，命中第一个即返回
func CheckCollision(r Rect, boxes ...Rect) bool {
	for _, b := range boxes {
		if r.Intersects(b) {
			return true
		}
	}
	return false
}

// OverlapArea 返回两个矩形的重叠面积，无重叠返回 0
func OverlapArea(a, b Rect) int {
	ix := max(a.X, b.X)
	iy := max(a.Y, b.Y)
	ax := min(a.Right(), b.Right())
	ay := min(a.Bottom(), b.Bottom())

	w := ax - ix
	h := ay - iy
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// BestOverlap 返回与目标矩形重叠面积最大的区域下标
// 没有任何区域重叠时返回 -1；面积相同时保留下标最小的区域
func BestOverlap(target Rect, regions []Rect) int {
	bestIndex := -1
	bestArea := 0
	for i, region := range regions {
		area := OverlapArea(target, region)
		if area > bestArea {
			bestArea = area
			bestIndex = i
		}
	}
	return bestIndex
}

// FeetStrip 返回角色脚下的检测条（用于脚步声地面检测）
func FeetStrip(body Rect) Rect {
	return Rect{X: body.X, Y: body.Y + 29, W: body.W, H: 3}
}

// BorderRects 返回矩形内侧四条边框（上、左、下、右）
func BorderRects(box Rect, thickness int) [4]Rect {
	return [4]Rect{
		{X: box.X, Y: box.Y, W: box.W, H: thickness},
		{X: box.X, Y: box.Y, W: thickness, H: box.H},
		{X: box.X, Y: box.Bottom() - thickness, W: box.W, H: thickness},
		{X: box.Right() - thickness, Y: box.Y, W: thickness, H: box.H},
	}
}
