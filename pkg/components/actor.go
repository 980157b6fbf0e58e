package components

import "github.com/decker502/ctale/pkg/utils"

// Facing 朝向
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// String 返回朝向名称
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "Up"
	case FacingDown:
		return "Down"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ActorComponent 角色数据（主角、Boss 头部）
//
// 归遭遇战会话所有，由战斗状态机和弹幕结算修改。
// 不变量: 0 <= Health <= MaxHealth（每帧由 BattleSystem 钳制）
type ActorComponent struct {
	// Rect 位置与尺寸；战斗中主角的 Rect 即灵魂的碰撞框
	Rect utils.Rect

	Health    int
	MaxHealth int
	// Strength 攻击力（主角的基础伤害 / Boss 的基础弹幕伤害）
	Strength int

	Facing Facing
	// Counters 每个朝向独立的动画帧计数器
	Counters [4]int
}

// Clamp 将生命值钳制到 [0, MaxHealth]
func (a *ActorComponent) Clamp() {
	a.Health = utils.ClampInt(a.Health, 0, a.MaxHealth)
}
