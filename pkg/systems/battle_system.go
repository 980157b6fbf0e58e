package systems

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// 战斗界面颜色
var (
	lifeBarBackground = color.RGBA{R: 168, G: 24, B: 13, A: 255}
	playerLifeColor   = color.RGBA{R: 204, G: 195, B: 18, A: 255}
	bossLifeColor     = color.RGBA{R: 8, G: 207, B: 21, A: 255}
)

const (
	// bossBobSpeed Boss 浮动角速度
	bossBobSpeed = 1.5
	// bossShakeSpeed Boss 受击抖动角速度
	bossShakeSpeed = 40.0
	// soulBlinkDelay 灵魂闪烁帧间隔
	soulBlinkDelay = 0.1
	// barBlinkDelay 攻击条闪烁帧间隔
	barBlinkDelay = 0.1
	// bossBarFillFactor 血条回涨速度相对下降速度的倍数
	bossBarFillFactor = 2.0
)

// BattleAssets 战斗状态机使用的纹理与音效
type BattleAssets struct {
	// Soul 灵魂闪烁帧：[0] 灵魂，[1] 为 nil（闪烁时隐藏）
	Soul      []types.Texture
	BarTarget types.Texture
	BarAttack []types.Texture
	Slash     []types.Texture
	// Numbers 伤害数字（Bad, Normal, Good, Perfect）
	Numbers [4]types.Texture
	// Buttons 菜单按钮（普通, 选中）
	Buttons [components.MenuButtonCount][2]types.Texture

	// Boss 部件：[0] 普通，[1] 受击
	BossHead  [2]types.Texture
	BossTorso types.Texture
	BossArms  [2]types.Texture
	BossLegs  [2]types.Texture

	TextBubble types.Texture
	Patterns   PatternAssets

	MoveSound     types.SoundID
	SelectSound   types.SoundID
	AppearSound   types.SoundID
	SlashSound    types.SoundID
	EnemyHitSound types.SoundID
	EatSound      types.SoundID
	Music         types.SoundID
}

// BattleResult 单帧推进结果
type BattleResult int

const (
	// BattleOngoing 战斗继续
	BattleOngoing BattleResult = iota
	// BattleWon Boss 被击败且淡出完成
	BattleWon
	// BattleLost 玩家生命归零
	BattleLost
)

// String 返回结果名称
func (r BattleResult) String() string {
	switch r {
	case BattleOngoing:
		return "Ongoing"
	case BattleWon:
		return "Won"
	case BattleLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// BattleSystem 回合制战斗状态机
//
// 职责：
//   - 入场动画、主菜单、战斗/行动/道具/离开子状态
//   - 攻击条命中判定与斩击动画
//   - 灵魂回合：战斗框收缩、移动、弹幕与气泡、展开
//   - 胜利淡出与失败判定，离开战斗时完整重置会话
//
// 会话数据全部在 EncounterState 中；本系统只额外持有纯表现用的动画状态。
type BattleSystem struct {
	state    *game.EncounterState
	dialogue *DialogueSystem
	patterns *AttackPatternSystem
	scripts  *content.BattleScripts
	assets   *BattleAssets
	audio    types.Audio
	glyphs   types.GlyphFactory
	rng      *rand.Rand

	// 每个表现元素独立的动画计数器
	soulAnim  components.AnimationComponent
	barAnim   components.AnimationComponent
	slashAnim components.AnimationComponent

	soulTex  types.Texture
	barTex   types.Texture
	slashTex types.Texture

	bossHurt   bool
	bossShakeX float64

	damageTex  types.Texture
	damageRect utils.Rect

	slashSoundPlayed bool
	active           *components.DialogueComponent
	victoryFade      components.FadeComponent

	// 速度按 60fps 每帧像素标定，按 dt 换算
	approachMotion utils.Motion
	barMotion      utils.Motion
	soulMotion     utils.Motion
}

// NewBattleSystem 创建战斗状态机
// rng 为 nil 时使用随机种子
func NewBattleSystem(
	state *game.EncounterState,
	dialogue *DialogueSystem,
	patterns *AttackPatternSystem,
	scripts *content.BattleScripts,
	assets *BattleAssets,
	audio types.Audio,
	glyphs types.GlyphFactory,
	rng *rand.Rand,
) *BattleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if assets == nil {
		assets = &BattleAssets{}
	}
	s := &BattleSystem{
		state:    state,
		dialogue: dialogue,
		patterns: patterns,
		scripts:  scripts,
		assets:   assets,
		audio:    audio,
		glyphs:   glyphs,
		rng:      rng,
	}
	s.soulAnim.Frames = assets.Soul
	s.barAnim.Frames = assets.BarAttack
	s.slashAnim.Frames = assets.Slash
	s.resetPresentation()
	return s
}

// Patterns 返回弹幕模拟器（调试覆盖层使用）
func (s *BattleSystem) Patterns() *AttackPatternSystem {
	return s.patterns
}

// Update 推进一帧战斗
func (s *BattleSystem) Update(dt float64, input *utils.InputTracker) BattleResult {
	st := s.state

	st.ClampHealth()
	if st.Player.Health <= 0 {
		return s.defeat()
	}

	if st.Battle == components.BattleApproach {
		s.updateApproach(dt)
		return BattleOngoing
	}

	st.MenuInput.Tick(dt)
	st.SineTimer += dt
	if !st.MusicStarted {
		s.play(s.assets.Music, types.ChannelMusic)
		st.MusicStarted = true
	}

	switch st.Battle {
	case components.BattleMenu:
		s.updateMenu(dt, input)
	case components.BattleFight:
		s.updateFight(dt, input)
	case components.BattleAct:
		s.updateAct(dt, input)
	case components.BattleItem:
		s.updateItem(dt, input)
	case components.BattleLeave:
		s.updateLeave(dt, input)
	case components.BattleDodge:
		s.updateDodge(dt, input)
	case components.BattleVictory:
		return s.updateVictory(dt)
	}

	s.easeBossBar(dt)

	if st.Boss.Health <= 0 && st.Battle != components.BattleVictory {
		st.Boss.Health = 0
		log.Printf("[BattleSystem] Boss defeated")
		st.Enter(components.BattleVictory)
		s.victoryFade = *components.NewFade(components.FadeToBlack, st.Config.Timing.VictoryFade)
	}
	if st.Player.Health <= 0 {
		return s.defeat()
	}
	return BattleOngoing
}

// ready 延迟读取：菜单计时是否已超过输入间隔
func (s *BattleSystem) ready() bool {
	return s.state.MenuInput.Ready()
}

// pressed 确认/取消边沿触发且已超过输入间隔
func (s *BattleSystem) pressed(input *utils.InputTracker, k types.Key) bool {
	return input != nil && input.JustPressed(k) && s.ready()
}

// held 方向键按住且已超过输入间隔
func (s *BattleSystem) held(input *utils.InputTracker, k types.Key) bool {
	return input != nil && input.Held(k) && s.ready()
}

func (s *BattleSystem) confirmEdge(input *utils.InputTracker) bool {
	return input != nil && input.JustPressed(types.KeyConfirm)
}

func (s *BattleSystem) play(id types.SoundID, channel int) {
	if s.audio != nil && id != "" {
		s.audio.Play(id, channel, 0)
	}
}

// ==========================================================================
// 入场 (Approach)
// ==========================================================================

func (s *BattleSystem) updateApproach(dt float64) {
	st := s.state
	timing := st.Config.Timing
	st.ApproachTimer += dt

	if st.ApproachTimer <= timing.ApproachBlink {
		if !st.ApproachSoundPlayed {
			s.play(s.assets.AppearSound, types.ChannelSFX)
			st.ApproachSoundPlayed = true
		}
		s.soulTex = AdvanceAnimation(&s.soulAnim, dt, soulBlinkDelay, false)
		return
	}

	ResetAnimation(&s.soulAnim)
	s.soulTex = s.soulFrame()

	fight := config.MenuButtonRects()[components.ButtonFight]
	tx, ty := fight.X+30, fight.Y+30
	step := s.approachMotion.Step(float64(timing.ApproachStep), dt)
	if st.Soul.X == tx && st.Soul.Y == ty {
		st.PlayerMode = components.PlayerInBattle
		st.Enter(components.BattleMenu)
		return
	}
	st.Soul.X = stepToward(st.Soul.X, tx, step)
	st.Soul.Y = stepToward(st.Soul.Y, ty, step)
}

// stepToward 每次移动 step 像素，距离不超过 step 时直接吸附
func stepToward(v, target, step int) int {
	switch {
	case abs(v-target) <= step:
		return target
	case v < target:
		return v + step
	default:
		return v - step
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ==========================================================================
// 主菜单 (Menu)
// ==========================================================================

func (s *BattleSystem) menuDialogue() *components.DialogueComponent {
	if s.state.IntroPlayed {
		return s.scripts.Generic
	}
	return s.scripts.Start
}

func (s *BattleSystem) updateMenu(dt float64, input *utils.InputTracker) {
	st := s.state

	// 菜单旁白只显示不翻页，确认键用于选择按钮
	s.dialogue.Update(s.menuDialogue(), NewDialogueContext(HostBattle), dt)

	if s.held(input, types.KeyRight) {
		s.play(s.assets.MoveSound, types.ChannelAny)
		st.Selected = components.MenuButton(utils.Wrap(int(st.Selected)+1, int(components.MenuButtonCount)))
		st.MenuInput.Reset()
	} else if s.held(input, types.KeyLeft) {
		s.play(s.assets.MoveSound, types.ChannelAny)
		st.Selected = components.MenuButton(utils.Wrap(int(st.Selected)-1, int(components.MenuButtonCount)))
		st.MenuInput.Reset()
	}

	if s.pressed(input, types.KeyConfirm) {
		s.play(s.assets.SelectSound, types.ChannelAny)
		s.dialogue.Reset(s.scripts.Start)
		s.dialogue.Reset(s.scripts.Generic)
		st.IntroPlayed = true
		st.Enter(st.Selected.State())
	}
}

// ==========================================================================
// 战斗 (Fight)
// ==========================================================================

func (s *BattleSystem) updateFight(dt float64, input *utils.InputTracker) {
	st := s.state

	if st.Turn == components.TurnChoice {
		if s.held(input, types.KeyCancel) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Enter(components.BattleMenu)
			return
		}
		if s.pressed(input, types.KeyConfirm) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Turn = components.TurnAttack
			st.MenuInput.Reset()
		}
		return
	}

	s.updateAttackBar(dt, input)
}

func (s *BattleSystem) updateAttackBar(dt float64, input *utils.InputTracker) {
	st := s.state
	timing := st.Config.Timing
	target := config.BarTarget()
	bar := config.BarAttackStart()

	dx := s.barMotion.Step(float64(abs(st.BarSpeed)), dt)
	if st.BarX+bar.W > target.Right()-dx {
		st.BarSpeed = -abs(st.BarSpeed)
	} else if st.BarX < target.X+dx {
		st.BarSpeed = abs(st.BarSpeed)
	}
	if st.BarSpeed < 0 {
		dx = -dx
	}

	if !st.TriedToAttack {
		if s.pressed(input, types.KeyConfirm) {
			st.TriedToAttack = true
			st.HitApplied = false
			s.resolveStrike(utils.Rect{X: st.BarX, Y: bar.Y, W: bar.W, H: bar.H})
		}
		st.BarX += dx
		return
	}

	st.StrikeTimer += dt
	if st.StrikeTimer <= timing.StrikeWindow {
		s.barTex = AdvanceAnimation(&s.barAnim, dt, barBlinkDelay, false)
		if !s.slashSoundPlayed {
			s.play(s.assets.SlashSound, types.ChannelSFX)
			s.slashSoundPlayed = true
		}

		last := len(s.slashAnim.Frames) - 1
		if s.slashAnim.Counter < last || last < 0 {
			before := s.slashAnim.Counter
			s.slashTex = AdvanceAnimation(&s.slashAnim, dt, timing.SlashFrame, false)
			if s.slashAnim.Counter < before {
				// 斩击只播放一次，越过最后一帧时停在最后一帧
				s.slashAnim.Counter = last
				s.slashTex = s.slashAnim.Frames[last]
			}
			if s.slashAnim.Counter > 3 || last < 0 {
				s.applyStrike()
			}
		} else {
			s.slashTex = nil
		}
		if s.bossHurt {
			s.bossShakeX = config.BossShake * math.Sin(st.SineTimer*bossShakeSpeed)
		}
		return
	}

	log.Printf("[BattleSystem] Strike finished (zone=%s, damage=%d, boss=%d)", st.Zone, st.AttackDamage, st.Boss.Health)
	s.bossHurt = false
	s.bossShakeX = 0
	s.slashSoundPlayed = false
	s.slashTex = nil
	s.damageTex = nil
	ResetAnimation(&s.slashAnim)
	ResetAnimation(&s.barAnim)
	st.StrikeTimer = 0
	st.TriedToAttack = false
	st.Enter(components.BattleDodge)
}

// resolveStrike 按攻击条位置判定命中区域与伤害
func (s *BattleSystem) resolveStrike(marker utils.Rect) {
	st := s.state
	zones := config.HitZoneRects()
	order := []components.HitZone{components.ZonePerfect, components.ZoneGood, components.ZoneNormal, components.ZoneBad}

	st.Zone = components.ZoneMiss
	for i, z := range zones {
		if marker.Intersects(z) {
			st.Zone = order[i]
			break
		}
	}
	st.AttackDamage = st.Zone.Damage(st.Player.Strength)

	s.damageTex = nil
	if idx := int(st.Zone) - 1; idx >= 0 && idx < len(s.assets.Numbers) {
		s.damageTex = s.assets.Numbers[idx]
	}
	w, h := types.TextureSize(s.damageTex)
	life := config.BossLifeBar()
	s.damageRect = utils.Rect{X: life.Right(), Y: life.Y - 20, W: w, H: h}

	log.Printf("[BattleSystem] Strike at x=%d: %s (%d damage)", marker.X, st.Zone, st.AttackDamage)
}

// applyStrike 斩击进行到后半段：结算一次伤害，数字上浮，Boss 受击抖动
func (s *BattleSystem) applyStrike() {
	st := s.state
	if !st.HitApplied {
		s.play(s.assets.EnemyHitSound, types.ChannelSFX)
		st.Boss.Health -= st.AttackDamage
		if st.Boss.Health < 0 {
			st.Boss.Health = 0
		}
		st.HitApplied = true
	}
	s.damageRect.Y--
	s.bossHurt = true
}

// easeBossBar Boss 血条显示宽度追赶真实血量
func (s *BattleSystem) easeBossBar(dt float64) {
	st := s.state
	target := float64(st.Boss.Health)
	rate := st.Config.Timing.BossBarDrainRate

	if st.BossBarWidth > target {
		st.BossBarWidth = math.Max(target, st.BossBarWidth-rate*dt)
	} else if st.BossBarWidth < target {
		st.BossBarWidth = math.Min(target, st.BossBarWidth+rate*dt*bossBarFillFactor)
	}
}

// ==========================================================================
// 行动 (Act)
// ==========================================================================

func (s *BattleSystem) updateAct(dt float64, input *utils.InputTracker) {
	st := s.state

	switch {
	case st.Turn == components.TurnChoice:
		if s.held(input, types.KeyCancel) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Enter(components.BattleMenu)
			return
		}
		if s.pressed(input, types.KeyConfirm) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Turn = components.TurnAct
			st.SubIndex = 0
			st.MenuInput.Reset()
		}

	case !st.OnDialogue:
		n := int(components.ActOptionCount)
		st.SubIndex = utils.Wrap(st.SubIndex, n)

		if s.held(input, types.KeyCancel) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Turn = components.TurnChoice
			st.MenuInput.Reset()
			return
		}
		if s.pressed(input, types.KeyConfirm) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			s.confirmAct(components.ActOption(st.SubIndex))
			st.MenuInput.Reset()
			return
		}
		if s.held(input, types.KeyDown) {
			s.play(s.assets.MoveSound, types.ChannelAny)
			st.SubIndex = utils.Wrap(st.SubIndex+1, n)
			st.MenuInput.Reset()
		} else if s.held(input, types.KeyUp) {
			s.play(s.assets.MoveSound, types.ChannelAny)
			st.SubIndex = utils.Wrap(st.SubIndex-1, n)
			st.MenuInput.Reset()
		} else if s.held(input, types.KeyLeft) || s.held(input, types.KeyRight) {
			// 第二列只有"解释"，左右键在第一行的两个选项之间切换
			s.play(s.assets.MoveSound, types.ChannelAny)
			switch components.ActOption(st.SubIndex) {
			case components.ActExamine:
				st.SubIndex = int(components.ActExplain)
			case components.ActExplain:
				st.SubIndex = int(components.ActExamine)
			}
			st.MenuInput.Reset()
		}

	default:
		if s.runActive(dt, input) {
			switch components.ActOption(st.SubIndex) {
			case components.ActInsult:
				st.FirstInsult = false
			case components.ActExplain:
				st.FirstExplain = false
			}
			st.Enter(components.BattleDodge)
		}
	}
}

// confirmAct 执行行动选项：首次嘲讽/解释立即修改 Boss 伤害
func (s *BattleSystem) confirmAct(opt components.ActOption) {
	st := s.state
	bonus := st.Config.Boss

	switch opt {
	case components.ActExamine:
		s.active = s.scripts.Examine
	case components.ActInsult:
		if st.FirstInsult {
			st.BossDamage += bonus.InsultBonus
			s.active = s.scripts.Insult
		} else {
			s.active = s.scripts.InsultGeneric
		}
	case components.ActExplain:
		if st.FirstExplain {
			st.BossDamage += bonus.ExplainBonus
			if st.BossDamage < 0 {
				st.BossDamage = 0
			}
			s.active = s.scripts.Explain
		} else {
			s.active = s.scripts.ExplainGeneric
		}
	}
	st.OnDialogue = true
	log.Printf("[BattleSystem] Act %s (boss damage=%d)", opt, st.BossDamage)
}

// runActive 推进当前子菜单对话，完成时返回 true
func (s *BattleSystem) runActive(dt float64, input *utils.InputTracker) bool {
	if s.active == nil {
		return true
	}
	ctx := NewDialogueContext(HostBattle).WithConfirm(s.confirmEdge(input))
	if s.dialogue.Update(s.active, ctx, dt) == DialogueFinished {
		s.active = nil
		return true
	}
	return false
}

// ==========================================================================
// 道具 (Item)
// ==========================================================================

func (s *BattleSystem) updateItem(dt float64, input *utils.InputTracker) {
	st := s.state

	if !st.OnDialogue {
		if st.Food <= 0 {
			st.FoodEaten = false
			s.active = s.scripts.NoFood
			st.OnDialogue = true
			return
		}
		if s.held(input, types.KeyCancel) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Enter(components.BattleMenu)
			return
		}
		if s.pressed(input, types.KeyConfirm) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			s.play(s.assets.EatSound, types.ChannelSFX)
			st.Player.Health = min(st.Player.Health+st.Config.HealAmount, st.Player.MaxHealth)
			st.FoodEaten = true
			s.active = s.scripts.Eat
			st.OnDialogue = true
			st.MenuInput.Reset()
			log.Printf("[BattleSystem] Ate food (health=%d, food left=%d)", st.Player.Health, st.Food-1)
		}
		return
	}

	if s.runActive(dt, input) {
		if st.FoodEaten && st.Food > 0 {
			st.Food--
		}
		st.FoodEaten = false
		st.Enter(components.BattleDodge)
	}
}

// ==========================================================================
// 离开 (Leave)
// ==========================================================================

func (s *BattleSystem) updateLeave(dt float64, input *utils.InputTracker) {
	st := s.state

	if !st.OnDialogue {
		n := int(components.LeaveOptionCount)
		st.SubIndex = utils.Wrap(st.SubIndex, n)

		if s.held(input, types.KeyCancel) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			st.Enter(components.BattleMenu)
			return
		}
		if s.pressed(input, types.KeyConfirm) {
			s.play(s.assets.SelectSound, types.ChannelAny)
			if components.LeaveOption(st.SubIndex) == components.LeaveFlee {
				s.active = s.scripts.Flee
			} else {
				s.active = s.scripts.Spare
			}
			st.OnDialogue = true
			st.MenuInput.Reset()
			return
		}
		if s.held(input, types.KeyDown) {
			s.play(s.assets.MoveSound, types.ChannelAny)
			st.SubIndex = utils.Wrap(st.SubIndex+1, n)
			st.MenuInput.Reset()
		} else if s.held(input, types.KeyUp) {
			s.play(s.assets.MoveSound, types.ChannelAny)
			st.SubIndex = utils.Wrap(st.SubIndex-1, n)
			st.MenuInput.Reset()
		}
		return
	}

	if s.runActive(dt, input) {
		st.Enter(components.BattleMenu)
	}
}

// ==========================================================================
// 灵魂回合 (Dodge)
// ==========================================================================

func (s *BattleSystem) updateDodge(dt float64, input *utils.InputTracker) {
	st := s.state
	timing := st.Config.Timing

	st.BarX = config.BarAttackStart().X
	if !st.AttackSelected {
		st.Pattern = components.PatternFromRoll(s.rng.Intn(4) + 1)
		st.Bubble = s.rng.Intn(len(s.scripts.Bubbles)) + 1
		st.AttackSelected = true
		log.Printf("[BattleSystem] Soul turn: pattern=%s bubble=%d damage=%d", st.Pattern, st.Bubble, st.BossDamage)
	}

	if st.Invulnerable {
		st.InvulnTimer += dt
		s.soulTex = AdvanceAnimation(&s.soulAnim, dt, soulBlinkDelay, false)
		if st.InvulnTimer >= timing.Invulnerability {
			ResetAnimation(&s.soulAnim)
			s.soulTex = s.soulFrame()
			st.Invulnerable = false
			st.InvulnTimer = 0
		}
	}

	switch st.DodgePhase {
	case components.DodgeShrink:
		st.BoxTimer += dt
		p := utils.Progress(st.BoxTimer, timing.BoxAnimation)
		s.resizeBox(float64(st.BaseBox.W), float64(st.BaseBox.H), p)
		st.Soul.X = st.Box.CenterX() - st.Soul.W/2
		st.Soul.Y = st.Box.CenterY() - st.Soul.H/2
		if p >= 1 {
			st.DodgePhase = components.DodgeActive
			st.BoxTimer = 0
		}

	case components.DodgeActive:
		st.TurnTimer += dt
		if st.TurnTimer <= timing.DodgeDuration {
			s.moveSoul(input, dt)
			if st.TurnTimer >= timing.PatternStart {
				s.patterns.Advance(s.attackInput(dt))
				if b := s.bubble(); b != nil {
					s.dialogue.Update(b, BubbleContext(s.assets.TextBubble), dt)
				}
			}
			return
		}

		for _, b := range s.scripts.Bubbles {
			s.dialogue.Reset(b)
		}
		s.patterns.Advance(AttackInput{Clear: true})
		st.DodgePhase = components.DodgeExpand
		st.BoxTimer = 0
		st.TurnTimer = 0

	case components.DodgeExpand:
		st.BoxTimer += dt
		p := utils.Progress(st.BoxTimer, timing.BoxAnimation)
		s.resizeBox(float64(st.BaseBox.H), float64(st.BaseBox.W), p)
		if p >= 1 {
			st.Box = st.BaseBox
			st.BossDamage = st.BaseBossDamage
			st.AttackSelected = false
			st.Enter(components.BattleMenu)
		}
	}
}

// resizeBox 按三次缓出插值战斗框宽度，保持水平居中
func (s *BattleSystem) resizeBox(from, to, p float64) {
	st := s.state
	base := st.BaseBox
	w := utils.RoundInt(utils.Lerp(from, to, utils.EaseOutCubic(p)))
	st.Box = utils.Rect{X: base.CenterX() - w/2, Y: base.Y, W: w, H: base.H}
}

// moveSoul 按住方向键移动灵魂，撞到边框则该方向不动
func (s *BattleSystem) moveSoul(input *utils.InputTracker, dt float64) {
	if input == nil {
		return
	}
	st := s.state
	speed := s.soulMotion.Step(float64(st.Config.Player.SoulSpeed), dt)
	if speed == 0 {
		return
	}
	borders := utils.BorderRects(st.Box, config.BorderThickness)

	try := func(dx, dy int) {
		next := st.Soul.Offset(dx, dy)
		if !utils.CheckCollision(next, borders[:]...) {
			st.Soul = next
		}
	}
	if input.Held(types.KeyUp) {
		try(0, -speed)
	}
	if input.Held(types.KeyDown) {
		try(0, speed)
	}
	if input.Held(types.KeyLeft) {
		try(-speed, 0)
	}
	if input.Held(types.KeyRight) {
		try(speed, 0)
	}
}

func (s *BattleSystem) attackInput(dt float64) AttackInput {
	st := s.state
	return AttackInput{
		Soul:         st.Soul,
		Arena:        st.Box,
		Health:       &st.Player.Health,
		Damage:       st.BossDamage,
		Pattern:      st.Pattern,
		Invulnerable: &st.Invulnerable,
		Assets:       &s.assets.Patterns,
		DT:           dt,
		TurnTime:     st.TurnTimer,
	}
}

// bubble 本回合选中的气泡
func (s *BattleSystem) bubble() *components.DialogueComponent {
	i := s.state.Bubble - 1
	if i < 0 || i >= len(s.scripts.Bubbles) {
		return nil
	}
	return s.scripts.Bubbles[i]
}

// ==========================================================================
// 结束 (Victory / Defeat)
// ==========================================================================

func (s *BattleSystem) updateVictory(dt float64) BattleResult {
	st := s.state
	s.bossHurt = true
	s.bossShakeX = config.BossShake * math.Sin(st.SineTimer*bossShakeSpeed)

	if !AdvanceFade(&s.victoryFade, dt) {
		return BattleOngoing
	}

	log.Printf("[BattleSystem] Victory after %d deaths", st.DeathCount)
	s.finish()
	st.DeathCount = 0
	st.SetMode(components.ModeEnding)
	return BattleWon
}

func (s *BattleSystem) defeat() BattleResult {
	st := s.state
	st.Enter(components.BattleDefeat)
	st.DeathCount++
	log.Printf("[BattleSystem] Defeat (death count=%d)", st.DeathCount)

	s.finish()
	st.PlayerMode = components.PlayerDead
	st.SetMode(components.ModeDeath)
	return BattleLost
}

// finish 离开战斗：停止音乐，清空弹幕与对话，重置会话
func (s *BattleSystem) finish() {
	if s.audio != nil {
		s.audio.Stop(types.ChannelMusic)
	}
	s.patterns.Advance(AttackInput{Clear: true})
	for _, d := range s.scripts.All() {
		s.dialogue.Reset(d)
	}
	s.state.ResetBattle()
	s.resetPresentation()
}

// Reset 中断战斗（调试跳转）：与胜负相同的完整重置路径
func (s *BattleSystem) Reset() {
	s.finish()
}

func (s *BattleSystem) resetPresentation() {
	ResetAnimation(&s.soulAnim)
	ResetAnimation(&s.barAnim)
	ResetAnimation(&s.slashAnim)
	s.soulTex = s.soulFrame()
	s.barTex = s.firstFrame(s.assets.BarAttack)
	s.slashTex = nil
	s.bossHurt = false
	s.bossShakeX = 0
	s.damageTex = nil
	s.slashSoundPlayed = false
	s.active = nil
	s.victoryFade = components.FadeComponent{}
	s.approachMotion.Reset()
	s.barMotion.Reset()
	s.soulMotion.Reset()
}

func (s *BattleSystem) soulFrame() types.Texture {
	return s.firstFrame(s.assets.Soul)
}

func (s *BattleSystem) firstFrame(frames []types.Texture) types.Texture {
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}

// ==========================================================================
// 绘制 (Draw)
// ==========================================================================

// Draw 绘制战斗画面
func (s *BattleSystem) Draw(r types.Renderer) {
	if r == nil {
		return
	}
	st := s.state
	r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)

	if st.Battle == components.BattleApproach {
		s.drawSoul(r)
		return
	}

	s.drawArena(r)
	s.drawHUD(r)
	s.drawBoss(r)

	switch st.Battle {
	case components.BattleMenu:
		s.dialogue.Draw(r, s.menuDialogue(), NewDialogueContext(HostBattle))
	case components.BattleFight:
		s.drawFight(r)
	case components.BattleAct:
		s.drawAct(r)
	case components.BattleItem:
		s.drawItem(r)
	case components.BattleLeave:
		s.drawLeave(r)
	case components.BattleDodge:
		s.drawDodge(r)
	case components.BattleVictory:
		DrawFade(r, &s.victoryFade)
	}
}

func (s *BattleSystem) drawSoul(r types.Renderer) {
	if s.soulTex == nil {
		return
	}
	so := s.state.Soul
	r.DrawTexture(s.soulTex, so.X, so.Y, so.W, so.H)
}

func (s *BattleSystem) drawArena(r types.Renderer) {
	st := s.state
	r.FillRect(st.BaseBox.X, st.BaseBox.Y, st.BaseBox.W, st.BaseBox.H, color.Black)
	for _, b := range utils.BorderRects(st.Box, config.BorderThickness) {
		r.FillRect(b.X, b.Y, b.W, b.H, color.White)
	}
}

func (s *BattleSystem) drawHUD(r types.Renderer) {
	st := s.state
	life := config.PlayerLifeBar()
	r.FillRect(life.X, life.Y, life.W, life.H, lifeBarBackground)
	if st.Player.MaxHealth > 0 {
		w := life.W * max(st.Player.Health, 0) / st.Player.MaxHealth
		r.FillRect(life.X, life.Y, w, life.H, playerLifeColor)
	}

	buttons := config.MenuButtonRects()
	for i, b := range buttons {
		frame := 0
		if components.MenuButton(i) == st.Selected {
			frame = 1
		}
		if tex := s.assets.Buttons[i][frame]; tex != nil {
			r.DrawTexture(tex, b.X, b.Y, b.W, b.H)
		}
	}

	fight, act := buttons[components.ButtonFight], buttons[components.ButtonAct]
	_, h := s.measure(content.HeroName, content.BattleStyle)
	y := fight.Y - h - 8
	r.DrawText(content.HeroName, fight.X+6, y, content.BattleStyle)
	r.DrawText(content.HPLabel, act.X+35, y, content.BattleStyle)
	r.DrawText(fmt.Sprintf(content.HPFormat, max(st.Player.Health, 0), st.Player.MaxHealth), act.X+140, y, content.BattleStyle)
}

func (s *BattleSystem) drawBoss(r types.Renderer) {
	st := s.state
	x := float64(config.BossX) + s.bossShakeX
	bob := func(amp float64) float64 {
		return float64(int(config.BossBaseY + amp*math.Sin(st.SineTimer*bossBobSpeed)))
	}
	part := func(tex types.Texture, y float64) {
		if tex != nil {
			r.DrawTextureF(tex, math.Trunc(x), y, config.BossSize, config.BossSize, types.Opaque())
		}
	}

	frame := 0
	if s.bossHurt {
		frame = 1
	}
	part(s.assets.BossArms[frame], bob(4))
	part(s.assets.BossLegs[frame], config.BossBaseY)
	part(s.assets.BossTorso, bob(3))
	part(s.assets.BossHead[frame], bob(2))
}

// subMenuMarker 在文字左侧绘制灵魂光标
func (s *BattleSystem) subMenuMarker(r types.Renderer, x, y int) {
	so := s.state.Soul
	if s.soulTex != nil {
		r.DrawTexture(s.soulTex, x-so.W-config.SoulMarkerGap, y+2, so.W, so.H)
	}
}

func (s *BattleSystem) drawFight(r types.Renderer) {
	st := s.state
	if st.Turn == components.TurnChoice {
		s.drawTargetChoice(r, content.FightTarget)
		return
	}

	target := config.BarTarget()
	bar := config.BarAttackStart()
	if s.assets.BarTarget != nil {
		r.DrawTexture(s.assets.BarTarget, target.X, target.Y, target.W, target.H)
	}
	if s.barTex != nil {
		r.DrawTexture(s.barTex, st.BarX, bar.Y, bar.W, bar.H)
	}
	if !st.TriedToAttack {
		return
	}

	if s.slashTex != nil {
		torso := utils.Rect{X: config.BossX, Y: config.BossBaseY, W: config.BossSize, H: config.BossSize}
		sr := config.SlashRect(torso)
		r.DrawTexture(s.slashTex, sr.X, sr.Y, sr.W, sr.H)
	}

	life := config.BossLifeBar()
	r.FillRect(life.X, life.Y, life.W, life.H, lifeBarBackground)
	if st.Boss.MaxHealth > 0 {
		w := utils.RoundInt(st.BossBarWidth * float64(life.W) / float64(st.Boss.MaxHealth))
		r.FillRect(life.X, life.Y, w, life.H, bossLifeColor)
	}
	if st.HitApplied && s.damageTex != nil {
		d := s.damageRect
		r.DrawTexture(s.damageTex, d.X, d.Y, d.W, d.H)
	}
}

// drawTargetChoice 选择目标：单行文字加光标
func (s *BattleSystem) drawTargetChoice(r types.Renderer, label string) {
	x, y := config.SubMenuTextX, config.SubMenuTextY
	s.subMenuMarker(r, x, y)
	r.DrawText(label, x, y, content.DialogueStyle)
}

func (s *BattleSystem) drawAct(r types.Renderer) {
	st := s.state
	switch {
	case st.Turn == components.TurnChoice:
		s.drawTargetChoice(r, content.FightTarget)
	case !st.OnDialogue:
		pos := s.actLabelPositions()
		for i, label := range content.ActLabels {
			r.DrawText(label, pos[i][0], pos[i][1], content.DialogueStyle)
		}
		p := pos[utils.Wrap(st.SubIndex, len(pos))]
		s.subMenuMarker(r, p[0], p[1])
	default:
		s.dialogue.Draw(r, s.active, NewDialogueContext(HostBattle))
	}
}

// actLabelPositions 行动选项位置：两行一列加右侧第二列
func (s *BattleSystem) actLabelPositions() [components.ActOptionCount][2]int {
	x, y := config.SubMenuTextX, config.SubMenuTextY
	w0, h0 := s.measure(content.ActLabels[0], content.DialogueStyle)
	return [components.ActOptionCount][2]int{
		{x, y},
		{x, y + h0 + config.SubMenuRowGap},
		{x + w0 + config.SubMenuColumnGap, y},
	}
}

func (s *BattleSystem) drawItem(r types.Renderer) {
	st := s.state
	if st.OnDialogue {
		s.dialogue.Draw(r, s.active, NewDialogueContext(HostBattle))
		return
	}
	x, y := config.SubMenuTextX, config.SubMenuTextY
	s.subMenuMarker(r, x, y)
	r.DrawText(content.FoodLabel, x, y, content.DialogueStyle)
	w, _ := s.measure(content.FoodLabel, content.DialogueStyle)
	r.DrawText(fmt.Sprintf(content.FoodFormat, st.Food), x+w+5, y, content.BattleStyle)
}

func (s *BattleSystem) drawLeave(r types.Renderer) {
	st := s.state
	if st.OnDialogue {
		s.dialogue.Draw(r, s.active, NewDialogueContext(HostBattle))
		return
	}
	x, y := config.SubMenuTextX, config.SubMenuTextY
	_, h := s.measure(content.LeaveLabels[0], content.DialogueStyle)
	rows := [components.LeaveOptionCount]int{y, y + h + config.SubMenuRowGap}
	for i, label := range content.LeaveLabels {
		r.DrawText(label, x, rows[i], content.DialogueStyle)
	}
	s.subMenuMarker(r, x, rows[utils.Wrap(st.SubIndex, len(rows))])
}

func (s *BattleSystem) drawDodge(r types.Renderer) {
	st := s.state
	if st.DodgePhase != components.DodgeActive {
		return
	}
	s.drawSoul(r)
	if st.TurnTimer < st.Config.Timing.PatternStart {
		return
	}
	s.patterns.Draw(r)
	if b := s.bubble(); b != nil {
		s.dialogue.Draw(r, b, BubbleContext(s.assets.TextBubble))
	}
}

// measure 测量文字尺寸，没有字体时按 8x16 等宽估算
func (s *BattleSystem) measure(text string, style types.TextStyle) (int, int) {
	if s.glyphs != nil {
		if w, h := s.glyphs.MeasureText(text, style); w > 0 && h > 0 {
			return w, h
		}
	}
	return len(utils.SplitGlyphs(text)) * 8, config.DefaultLineHeight
}
