package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// BattleScene 遭遇战：先播放按死亡次数选择的战前对话，再交给 BattleSystem
type BattleScene struct {
	svc       *Services
	intro     *components.DialogueComponent
	introDone bool
	// result 战斗已分出胜负（BattleSystem 已完成重置）
	result systems.BattleResult
}

// NewBattleScene 创建遭遇战场景
// 每次进入都从全新的会话开始，热重载的数值在这里生效
func NewBattleScene(svc *Services) *BattleScene {
	st := svc.State
	st.ResetBattle()
	st.PlayerMode = components.PlayerDialogue

	s := &BattleScene{svc: svc, intro: svc.Scripts.IntroFor(st.DeathCount)}
	log.Printf("[BattleScene] Intro %s (death count=%d)", s.intro.Name, st.DeathCount)
	return s
}

// IntroDone 战前对话是否已结束
func (s *BattleScene) IntroDone() bool {
	return s.introDone
}

// Update 推进战前对话或战斗
func (s *BattleScene) Update(deltaTime float64) {
	if s.result != systems.BattleOngoing {
		return
	}
	if !s.introDone {
		ctx := systems.NewDialogueContext(systems.HostWorld).WithConfirm(s.svc.confirmed())
		if s.svc.Dialogue.Update(s.intro, ctx, deltaTime) == systems.DialogueFinished {
			s.introDone = true
			s.svc.State.PlayerMode = components.PlayerInBattle
			s.svc.State.Enter(components.BattleApproach)
		}
		return
	}
	s.result = s.svc.Battle.Update(deltaTime, s.svc.Input)
}

// Draw 绘制遭遇战
func (s *BattleScene) Draw(screen *ebiten.Image) {
	drawTo(s.svc, screen, s)
}

func (s *BattleScene) draw(r types.Renderer) {
	if !s.introDone {
		r.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, color.Black)
		s.svc.Dialogue.Draw(r, s.intro, systems.NewDialogueContext(systems.HostWorld))
		return
	}
	s.svc.Battle.Draw(r)
}

// OnLeave 战斗中途被切走（调试跳转）时走完整的重置路径
func (s *BattleScene) OnLeave() {
	if s.result != systems.BattleOngoing {
		return
	}
	if !s.introDone {
		s.svc.Dialogue.Reset(s.intro)
	}
	s.svc.Battle.Reset()
}
