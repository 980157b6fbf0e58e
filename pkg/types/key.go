package types

// Key 逻辑按键
// 输入快照按逻辑按键索引，与具体物理键位解耦
type Key int

const (
	// KeyUp 上移（W / ↑）
	KeyUp Key = iota
	// KeyDown 下移（S / ↓）
	KeyDown
	// KeyLeft 左移（A / ←）
	KeyLeft
	// KeyRight 右移（D / →）
	KeyRight
	// KeyConfirm 确认（E / Enter）
	KeyConfirm
	// KeyCancel 取消（Tab / Backspace）
	KeyCancel
	// KeyInteract 交互（Space）
	KeyInteract

	// KeyCount 逻辑按键数量
	KeyCount
)

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyCancel:
		return "Cancel"
	case KeyInteract:
		return "Interact"
	default:
		return "Unknown"
	}
}
