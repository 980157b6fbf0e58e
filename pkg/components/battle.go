package components

// BattleState 战斗子状态（同一时刻只有一个处于激活）
type BattleState int

const (
	// BattleApproach 入场动画：灵魂闪烁后移向 FIGHT 按钮
	BattleApproach BattleState = iota
	// BattleMenu 四按钮菜单
	BattleMenu
	// BattleFight 攻击：选择 + 攻击条计时
	BattleFight
	// BattleAct 行动子菜单
	BattleAct
	// BattleItem 道具
	BattleItem
	// BattleLeave 离开子菜单（仅对话）
	BattleLeave
	// BattleDodge 灵魂回合：躲避弹幕
	BattleDodge
	// BattleVictory Boss 被击败
	BattleVictory
	// BattleDefeat 玩家死亡
	BattleDefeat
)

// String 返回子状态名称
func (s BattleState) String() string {
	switch s {
	case BattleApproach:
		return "Approach"
	case BattleMenu:
		return "Menu"
	case BattleFight:
		return "Fight"
	case BattleAct:
		return "Act"
	case BattleItem:
		return "Item"
	case BattleLeave:
		return "Leave"
	case BattleDodge:
		return "Dodge"
	case BattleVictory:
		return "Victory"
	case BattleDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Turn 子状态内部阶段
type Turn int

const (
	// TurnChoice 确认是否执行（可取消回到菜单）
	TurnChoice Turn = iota
	// TurnAttack 攻击条计时
	TurnAttack
	// TurnAct 行动子菜单 / 对话
	TurnAct
)

// String 返回阶段名称
func (t Turn) String() string {
	switch t {
	case TurnChoice:
		return "Choice"
	case TurnAttack:
		return "Attack"
	case TurnAct:
		return "Act"
	default:
		return "Unknown"
	}
}

// DodgePhase 灵魂回合阶段
type DodgePhase int

const (
	// DodgeShrink 战斗框收缩
	DodgeShrink DodgePhase = iota
	// DodgeActive 躲避中
	DodgeActive
	// DodgeExpand 战斗框展开
	DodgeExpand
)

// String 返回阶段名称
func (p DodgePhase) String() string {
	switch p {
	case DodgeShrink:
		return "Shrink"
	case DodgeActive:
		return "Dodge"
	case DodgeExpand:
		return "Expand"
	default:
		return "Unknown"
	}
}

// MenuButton 主菜单按钮
type MenuButton int

const (
	ButtonFight MenuButton = iota
	ButtonAct
	ButtonItem
	ButtonLeave
	// MenuButtonCount 按钮数量
	MenuButtonCount
)

// String 返回按钮名称
func (b MenuButton) String() string {
	switch b {
	case ButtonFight:
		return "Fight"
	case ButtonAct:
		return "Act"
	case ButtonItem:
		return "Item"
	case ButtonLeave:
		return "Leave"
	default:
		return "Unknown"
	}
}

// State 返回按钮对应的战斗子状态
func (b MenuButton) State() BattleState {
	switch b {
	case ButtonAct:
		return BattleAct
	case ButtonItem:
		return BattleItem
	case ButtonLeave:
		return BattleLeave
	default:
		return BattleFight
	}
}

// ActOption 行动子菜单选项
type ActOption int

const (
	ActExamine ActOption = iota
	ActInsult
	ActExplain
	// ActOptionCount 选项数量
	ActOptionCount
)

// String 返回选项名称
func (o ActOption) String() string {
	switch o {
	case ActExamine:
		return "Examine"
	case ActInsult:
		return "Insult"
	case ActExplain:
		return "Explain"
	default:
		return "Unknown"
	}
}

// LeaveOption 离开子菜单选项
type LeaveOption int

const (
	LeaveSpare LeaveOption = iota
	LeaveFlee
	// LeaveOptionCount 选项数量
	LeaveOptionCount
)

// String 返回选项名称
func (o LeaveOption) String() string {
	switch o {
	case LeaveSpare:
		return "Spare"
	case LeaveFlee:
		return "Flee"
	default:
		return "Unknown"
	}
}

// HitZone 攻击条命中区域，Perfect ⊂ Good ⊂ Normal ⊂ Bad
type HitZone int

const (
	ZoneMiss HitZone = iota
	ZoneBad
	ZoneNormal
	ZoneGood
	ZonePerfect
)

// String 返回区域名称
func (z HitZone) String() string {
	switch z {
	case ZoneMiss:
		return "Miss"
	case ZoneBad:
		return "Bad"
	case ZoneNormal:
		return "Normal"
	case ZoneGood:
		return "Good"
	case ZonePerfect:
		return "Perfect"
	default:
		return "Unknown"
	}
}

// Damage 按区域倍率缩放基础伤害（向下取整）
// Perfect ×3，Good ×1.5，Normal ×1，Bad ×0.5，Miss 为 0
func (z HitZone) Damage(base int) int {
	switch z {
	case ZonePerfect:
		return base * 3
	case ZoneGood:
		return base * 3 / 2
	case ZoneNormal:
		return base
	case ZoneBad:
		return base / 2
	default:
		return 0
	}
}

// PatternID Boss 攻击模式
type PatternID int

const (
	// PatternNone 未选择
	PatternNone PatternID = iota
	// PatternRain 关键字雨
	PatternRain
	// PatternPincer 括号钳形
	PatternPincer
	// PatternSpawner 母体发射小蛇
	PatternSpawner
	// PatternBarrierRain 带滑入屏障的关键字雨
	PatternBarrierRain
)

// String 返回模式名称
func (p PatternID) String() string {
	switch p {
	case PatternNone:
		return "none"
	case PatternRain:
		return "rain"
	case PatternPincer:
		return "pincer"
	case PatternSpawner:
		return "spawner"
	case PatternBarrierRain:
		return "barrier_rain"
	default:
		return "unknown"
	}
}

// PatternFromRoll 将 1~4 的随机数映射为攻击模式，越界返回 PatternNone
func PatternFromRoll(n int) PatternID {
	switch n {
	case 1:
		return PatternRain
	case 2:
		return PatternPincer
	case 3:
		return PatternSpawner
	case 4:
		return PatternBarrierRain
	default:
		return PatternNone
	}
}

// GameMode 顶层游戏模式
type GameMode int

const (
	ModeTitle GameMode = iota
	ModeCutscene
	ModeOpenWorld
	ModeBattle
	ModeDeath
	ModeEnding
)

// String 返回模式名称
func (m GameMode) String() string {
	switch m {
	case ModeTitle:
		return "Title"
	case ModeCutscene:
		return "Cutscene"
	case ModeOpenWorld:
		return "OpenWorld"
	case ModeBattle:
		return "Battle"
	case ModeDeath:
		return "Death"
	case ModeEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// PlayerMode 玩家状态
type PlayerMode int

const (
	PlayerIdle PlayerMode = iota
	PlayerMovable
	PlayerDialogue
	PlayerDead
	PlayerInBattle
)

// String 返回状态名称
func (m PlayerMode) String() string {
	switch m {
	case PlayerIdle:
		return "Idle"
	case PlayerMovable:
		return "Movable"
	case PlayerDialogue:
		return "Dialogue"
	case PlayerDead:
		return "Dead"
	case PlayerInBattle:
		return "InBattle"
	default:
		return "Unknown"
	}
}
