// Package main provides a headless verification tool for the boss attack patterns.
//
// Usage:
//
//	go run ./cmd/verify_attack_patterns [flags]
//
// Flags:
//
//	--pattern <name>  rain, pincer, spawner, barrier_rain or all (default: all)
//	--seed <n>        Random seed (default: 1)
//	--dodge           Move the soul around the arena instead of keeping it still
//	--trace           Print the live projectile count every second
//	--verbose         Print every played sound
//
// Purpose:
//   - Compare spawn counts and hit rates between patterns
//   - Verify the pool drains after the spawn freeze at the end of the turn
//   - Reproduce a pattern deterministically with a fixed seed
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/decker502/ctale/internal/headless"
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/scenes"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/utils"
)

var (
	patternFlag = flag.String("pattern", "all", "Pattern to run")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	dodgeFlag   = flag.Bool("dodge", false, "Move the soul in a circle")
	traceFlag   = flag.Bool("trace", false, "Print live projectiles every second")
	verboseFlag = flag.Bool("verbose", false, "Print every played sound")
)

const dt = 1.0 / 60.0

// report 单个模式的统计
type report struct {
	pattern  components.PatternID
	spawned  int
	maxLive  int
	hits     int
	health   int
	leftover int
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	patterns := []components.PatternID{
		components.PatternRain, components.PatternPincer,
		components.PatternSpawner, components.PatternBarrierRain,
	}
	if *patternFlag != "all" {
		selected := components.PatternNone
		for _, p := range patterns {
			if p.String() == *patternFlag {
				selected = p
			}
		}
		if selected == components.PatternNone {
			log.Fatalf("unknown pattern %q", *patternFlag)
		}
		patterns = []components.PatternID{selected}
	}

	cfg := config.DefaultBattleConfig()
	fmt.Printf("%-13s %8s %8s %6s %7s %9s\n", "pattern", "spawned", "maxLive", "hits", "health", "leftover")
	failed := false
	for _, p := range patterns {
		r := simulate(p, cfg)
		fmt.Printf("%-13s %8d %8d %6d %7d %9d\n", r.pattern, r.spawned, r.maxLive, r.hits, r.health, r.leftover)
		if r.leftover != 0 {
			failed = true
		}
	}
	if failed {
		fmt.Println("WARNING: projectiles still live after Clear")
		os.Exit(1)
	}
}

// simulate 按战斗状态机的节奏推进一个完整的躲避回合
func simulate(pattern components.PatternID, cfg config.BattleConfig) report {
	audio := headless.NewAudio(*verboseFlag)
	sys := systems.NewAttackPatternSystem(audio, rand.New(rand.NewSource(*seedFlag)))
	assets := scenes.BuildPatternAssets(headless.NewTextures(20))

	base := config.BaseBox()
	arena := utils.Rect{X: base.CenterX() - base.H/2, Y: base.Y, W: base.H, H: base.H}
	soul := utils.Rect{X: arena.CenterX() - config.SoulSize/2, Y: arena.CenterY() - config.SoulSize/2, W: config.SoulSize, H: config.SoulSize}
	origin := soul

	health := cfg.Player.MaxHealth
	invulnerable := false
	invulnTimer := 0.0
	r := report{pattern: pattern}

	for turn := 0.0; turn <= cfg.Timing.DodgeDuration; turn += dt {
		if invulnerable {
			invulnTimer += dt
			if invulnTimer >= cfg.Timing.Invulnerability {
				invulnerable = false
				invulnTimer = 0
			}
		}
		if *dodgeFlag {
			radius := float64(arena.W)/2 - float64(config.SoulSize) - float64(config.BorderThickness)
			soul.X = origin.X + int(radius*math.Cos(turn*2))
			soul.Y = origin.Y + int(radius*math.Sin(turn*2))
		}
		if turn < cfg.Timing.PatternStart {
			continue
		}

		before := health
		sys.Advance(systems.AttackInput{
			Soul:         soul,
			Arena:        arena,
			Health:       &health,
			Damage:       cfg.Boss.Damage,
			Pattern:      pattern,
			Invulnerable: &invulnerable,
			Assets:       &assets,
			DT:           dt,
			TurnTime:     turn,
		})
		if health < before {
			r.hits++
		}
		live := sys.Pool().Live()
		r.maxLive = max(r.maxLive, live)
		r.spawned = max(r.spawned, sys.Spawned())

		if *traceFlag && math.Mod(turn, 1) < dt {
			fmt.Printf("  %s t=%.1f live=%d spawned=%d hp=%d\n", pattern, turn, live, sys.Spawned(), health)
		}
	}

	sys.Advance(systems.AttackInput{Clear: true})
	r.health = health
	r.leftover = sys.Pool().Live()
	return r
}
