// Package main provides a headless auto-play tool for the turn-based battle state machine.
//
// Usage:
//
//	go run ./cmd/verify_battle [flags]
//
// Flags:
//
//	--plan <list>     Comma separated menu choices, cycled every turn (default: "fight")
//	                  Choices: fight, act:examine, act:insult, act:explain, item, leave:spare, leave:flee
//	--aim <px>        Press confirm when the marker is this close to the bar centre (default: 4)
//	--wiggle          Move the soul left and right during the soul turn
//	--seed <n>        Random seed for pattern and bubble rolls (default: 1)
//	--limit <s>       Give up after this many simulated seconds (default: 900)
//	--verbose         Print system logs
//
// Purpose:
//   - Play a full encounter to victory or defeat without a window
//   - Check that menu, sub-menu and dialogue transitions never get stuck
//   - Compare damage output between aiming tolerances
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/decker502/ctale/internal/headless"
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/scenes"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

var (
	planFlag    = flag.String("plan", "fight", "Menu choices cycled every turn")
	aimFlag     = flag.Int("aim", 4, "Aim tolerance in pixels")
	wiggleFlag  = flag.Bool("wiggle", false, "Move the soul during the soul turn")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	limitFlag   = flag.Float64("limit", 900, "Simulated seconds before giving up")
	verboseFlag = flag.Bool("verbose", false, "Print system logs")
)

const dt = 1.0 / 60.0

// choice 一次菜单选择
type choice struct {
	button components.MenuButton
	sub    int
}

func parsePlan(s string) ([]choice, error) {
	var plan []choice
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "fight":
			plan = append(plan, choice{button: components.ButtonFight})
		case "act:examine":
			plan = append(plan, choice{components.ButtonAct, int(components.ActExamine)})
		case "act:insult":
			plan = append(plan, choice{components.ButtonAct, int(components.ActInsult)})
		case "act:explain":
			plan = append(plan, choice{components.ButtonAct, int(components.ActExplain)})
		case "item":
			plan = append(plan, choice{button: components.ButtonItem})
		case "leave:spare":
			plan = append(plan, choice{components.ButtonLeave, int(components.LeaveSpare)})
		case "leave:flee":
			plan = append(plan, choice{components.ButtonLeave, int(components.LeaveFlee)})
		default:
			return nil, fmt.Errorf("unknown plan entry %q", part)
		}
	}
	return plan, nil
}

// bot 根据会话状态决定每帧按下的键
type bot struct {
	state     *game.EncounterState
	plan      []choice
	step      int
	confirmed bool
	clock     float64
}

func (b *bot) current() choice {
	return b.plan[b.step%len(b.plan)]
}

// tap 确认键按一帧松一帧
func (b *bot) tap(keys []types.Key) []types.Key {
	if b.confirmed {
		b.confirmed = false
		return keys
	}
	b.confirmed = true
	return append(keys, types.KeyConfirm)
}

func (b *bot) keys() []types.Key {
	st := b.state
	want := b.current()
	var keys []types.Key

	switch st.Battle {
	case components.BattleMenu:
		if st.Selected != want.button {
			return []types.Key{types.KeyRight}
		}
		return b.tap(keys)

	case components.BattleFight:
		if st.Turn == components.TurnChoice {
			return b.tap(keys)
		}
		target := config.BarTarget()
		bar := config.BarAttackStart()
		if !st.TriedToAttack && abs(st.BarX+bar.W/2-target.CenterX()) <= *aimFlag {
			return []types.Key{types.KeyConfirm}
		}
		return nil

	case components.BattleAct:
		if st.Turn == components.TurnAct && !st.OnDialogue && st.SubIndex != want.sub {
			return []types.Key{types.KeyDown}
		}
		return b.tap(keys)

	case components.BattleLeave:
		if !st.OnDialogue && st.SubIndex != want.sub {
			return []types.Key{types.KeyDown}
		}
		return b.tap(keys)

	case components.BattleItem:
		return b.tap(keys)

	case components.BattleDodge:
		if *wiggleFlag {
			if int(b.clock*2)%2 == 0 {
				return []types.Key{types.KeyLeft}
			}
			return []types.Key{types.KeyRight}
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	plan, err := parsePlan(*planFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	audio := headless.NewAudio(false)
	glyphs := headless.NewGlyphs(12, 24)
	textures := headless.NewTextures(20)

	state := game.NewEncounterState(config.DefaultBattleConfig())
	state.ResetBattle()
	state.PlayerMode = components.PlayerInBattle

	dialogue := systems.NewDialogueSystem(glyphs, audio, content.Voices())
	scripts := content.NewBattleScripts()
	patterns := systems.NewAttackPatternSystem(audio, rng)
	battle := systems.NewBattleSystem(state, dialogue, patterns, scripts, scenes.BuildBattleAssets(textures), audio, glyphs, rng)

	b := &bot{state: state, plan: plan}
	input := &utils.InputTracker{}
	last := state.Battle
	turns := 0
	result := systems.BattleOngoing

	for b.clock = 0; b.clock < *limitFlag; b.clock += dt {
		input.Push(headless.Keys(b.keys()...))
		result = battle.Update(dt, input)

		if state.Battle != last {
			fmt.Printf("%7.2fs %-8s -> %-8s hp=%d/%d boss=%d/%d food=%d damage=%d",
				b.clock, last, state.Battle,
				state.Player.Health, state.Player.MaxHealth,
				state.Boss.Health, state.Boss.MaxHealth,
				state.Food, state.BossDamage)
			if last == components.BattleFight {
				fmt.Printf(" zone=%s hit=%d", state.Zone, state.AttackDamage)
			}
			if state.Battle == components.BattleDodge {
				fmt.Printf(" pattern=%s", state.Pattern)
			}
			fmt.Println()

			if state.Battle == components.BattleMenu && last != components.BattleApproach {
				b.step++
				turns++
			}
			last = state.Battle
		}
		if result != systems.BattleOngoing {
			break
		}
	}

	fmt.Printf("\nresult=%s turns=%d time=%.1fs glyphs live=%d\n", result, turns, b.clock, glyphs.Live())
	if result == systems.BattleOngoing {
		fmt.Println("WARNING: battle did not finish within the limit")
		os.Exit(1)
	}
}
