package game

import (
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/utils"
)

// EncounterState 遭遇战会话的权威状态记录
//
// 所有跨帧的计时器与一次性标记都集中在这里，由场景和系统按引用传递，
// 不存在任何包级全局状态。
//
// 不变量:
//   - 同一时刻只有一个 Mode 与一个 Battle 子状态
//   - 计时器非负，进入新状态时清零（Enter）
//   - 离开战斗（胜利、死亡、调试跳转）时必须调用 ResetBattle
type EncounterState struct {
	Config config.BattleConfig

	// ==========================================================================
	// 状态 (States)
	// ==========================================================================

	Mode       components.GameMode
	PlayerMode components.PlayerMode
	Battle     components.BattleState
	Turn       components.Turn
	DodgePhase components.DodgePhase

	// Selected 主菜单当前选中的按钮
	Selected components.MenuButton
	// SubIndex 子菜单（行动 / 离开）当前选中项
	SubIndex int

	// ==========================================================================
	// 计时器 (Timers)
	// ==========================================================================

	// MenuInput 菜单输入去抖（计时上限 0.4，超过后回落到 0.2）
	MenuInput utils.Debouncer
	// StrikeTimer 攻击动画窗口计时
	StrikeTimer float64
	// InvulnTimer 无敌窗口计时
	InvulnTimer float64
	// BoxTimer 战斗框收缩/展开计时
	BoxTimer float64
	// TurnTimer 躲避阶段计时
	TurnTimer float64
	// ApproachTimer 入场动画计时
	ApproachTimer float64
	// SineTimer Boss 浮动与受击抖动的相位
	SineTimer float64

	// ==========================================================================
	// 一次性标记 (One-shot Flags)
	// ==========================================================================

	// IntroPlayed 开场白已显示过（之后菜单显示通用台词）
	IntroPlayed bool
	// AttackSelected 本回合已选定攻击模式与气泡
	AttackSelected bool
	// TriedToAttack 攻击条已按下确认
	TriedToAttack bool
	// Invulnerable 灵魂处于无敌窗口
	Invulnerable bool
	// HitApplied 本次攻击伤害已结算
	HitApplied bool
	// FirstInsult / FirstExplain 首次使用的数值效果尚未触发
	FirstInsult  bool
	FirstExplain bool
	// OnDialogue 子菜单已确认，正在播放对应对话
	OnDialogue bool
	// FoodEaten 本次道具确认吃掉了食物
	FoodEaten bool
	// ApproachSoundPlayed / MusicStarted 入场音效与战斗音乐
	ApproachSoundPlayed bool
	MusicStarted        bool

	// ==========================================================================
	// 数值 (Values)
	// ==========================================================================

	Food int
	// BaseBossDamage 每回合结束时 BossDamage 回到的基准值
	BaseBossDamage int
	// BossDamage 当前回合 Boss 弹幕伤害
	BossDamage int
	// DeathCount 死亡次数（选择重试台词），胜利后清零
	DeathCount int

	Player components.ActorComponent
	Boss   components.ActorComponent

	// Soul 灵魂碰撞框
	Soul utils.Rect
	// Box 当前战斗框，BaseBox 静止尺寸
	Box     utils.Rect
	BaseBox utils.Rect

	// Pattern 本回合攻击模式，Bubble 本回合气泡台词（1~3）
	Pattern components.PatternID
	Bubble  int

	// 攻击条
	BarX         int
	BarSpeed     int
	Zone         components.HitZone
	AttackDamage int
	// BossBarWidth Boss 血条显示宽度（平滑追赶真实血量）
	BossBarWidth float64
}

// NewEncounterState 创建一个全新的会话状态
func NewEncounterState(cfg config.BattleConfig) *EncounterState {
	s := &EncounterState{Config: cfg, Mode: components.ModeTitle}
	s.ResetBattle()
	return s
}

// SetMode 切换顶层模式
func (s *EncounterState) SetMode(mode components.GameMode) {
	if s.Mode != mode {
		log.Printf("[EncounterState] Mode %s -> %s", s.Mode, mode)
	}
	s.Mode = mode
}

// Enter 进入新的战斗子状态，清零该状态使用的计时器
func (s *EncounterState) Enter(state components.BattleState) {
	if s.Battle != state {
		log.Printf("[EncounterState] Battle %s -> %s", s.Battle, state)
	}
	s.Battle = state
	s.MenuInput.Reset()
	s.SubIndex = 0
	s.OnDialogue = false

	switch state {
	case components.BattleMenu:
		s.Turn = components.TurnChoice
	case components.BattleFight, components.BattleAct:
		s.Turn = components.TurnChoice
		s.StrikeTimer = 0
		s.TriedToAttack = false
		s.HitApplied = false
	case components.BattleDodge:
		s.ResetTurn()
	case components.BattleApproach:
		s.ApproachTimer = 0
		s.ApproachSoundPlayed = false
	}
}

// ResetTurn 重置灵魂回合的计时与标记
func (s *EncounterState) ResetTurn() {
	s.DodgePhase = components.DodgeShrink
	s.BoxTimer = 0
	s.TurnTimer = 0
	s.InvulnTimer = 0
	s.Invulnerable = false
	s.AttackSelected = false
	s.Pattern = components.PatternNone
	s.Bubble = 0
}

// 菜单计时上限，超过后回落，按住方向键时匀速移动
const (
	menuInputCap      = 0.4
	menuInputFallback = 0.2
)

// ResetBattle 将整场遭遇战恢复到初始状态（DeathCount 除外）
func (s *EncounterState) ResetBattle() {
	cfg := s.Config

	s.PlayerMode = components.PlayerIdle
	s.Battle = components.BattleApproach
	s.Turn = components.TurnChoice
	s.Selected = components.ButtonFight
	s.SubIndex = 0

	s.MenuInput = utils.Debouncer{
		Interval: cfg.Timing.MenuCooldown,
		Cap:      menuInputCap,
		Fallback: menuInputFallback,
	}
	s.StrikeTimer = 0
	s.ApproachTimer = 0
	s.SineTimer = 0

	s.IntroPlayed = false
	s.TriedToAttack = false
	s.HitApplied = false
	s.FirstInsult = true
	s.FirstExplain = true
	s.OnDialogue = false
	s.FoodEaten = false
	s.ApproachSoundPlayed = false
	s.MusicStarted = false
	s.ResetTurn()

	s.Food = cfg.Food
	s.BaseBossDamage = cfg.Boss.Damage
	s.BossDamage = cfg.Boss.Damage

	s.Player = components.ActorComponent{
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
		Strength:  cfg.Player.Strength,
		Facing:    components.FacingUp,
	}
	s.Boss = components.ActorComponent{
		Rect:      utils.Rect{X: config.BossX, Y: config.BossBaseY},
		Health:    cfg.Boss.MaxHealth,
		MaxHealth: cfg.Boss.MaxHealth,
		Strength:  cfg.Boss.Damage,
		Facing:    components.FacingDown,
	}

	s.BaseBox = config.BaseBox()
	s.Box = s.BaseBox
	s.Soul = config.CenterSoulRect()

	start := config.BarAttackStart()
	s.BarX = start.X
	s.BarSpeed = cfg.Timing.BarSpeed
	s.Zone = components.ZoneMiss
	s.AttackDamage = 0
	s.BossBarWidth = float64(cfg.Boss.MaxHealth)
}

// ClampHealth 将双方生命值钳制到 [0, max]
func (s *EncounterState) ClampHealth() {
	s.Player.Clamp()
	s.Boss.Clamp()
}

// ApplyConfig 替换数值配置（热重载），在下一次 ResetBattle 时生效
func (s *EncounterState) ApplyConfig(cfg config.BattleConfig) {
	s.Config = cfg
	log.Printf("[EncounterState] Battle config updated (player=%d/%d, boss=%d)",
		cfg.Player.MaxHealth, cfg.Player.Strength, cfg.Boss.MaxHealth)
}
