// Package main provides a headless verification tool for the footstep surfaces.
//
// Usage:
//
//	go run ./cmd/verify_surfaces [flags]
//
// Flags:
//
//	--speed <px>      Walking speed in pixels per frame (default: 4)
//	--origin-x <px>   Map origin on screen, X (default: 0)
//	--origin-y <px>   Map origin on screen, Y (default: 0)
//	--verbose         Print every played sound
//
// Purpose:
//   - Walk a fixed route across the map (pier, bridge, dirt, grass, sidewalk, sand)
//   - Verify every surface on the route is detected with the map offset applied
//   - Verify the looping footstep only restarts when the surface changes
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/ctale/internal/headless"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

var (
	speedFlag   = flag.Int("speed", 4, "Walking speed in pixels per frame")
	originXFlag = flag.Int("origin-x", 0, "Map origin X on screen")
	originYFlag = flag.Int("origin-y", 0, "Map origin Y on screen")
	verboseFlag = flag.Bool("verbose", false, "Print every played sound")
)

// 角色框尺寸，检测条落在框底部
const (
	bodyW    = 20
	bodyH    = 32
	feetSkip = 29
)

// point 路线上的脚下位置（相对地图原点）
type point struct{ x, feetY int }

// route 从码头走下桥，绕到草地，再沿人行道向东穿过斑马线到沙地
var route = []point{
	{630, 300},
	{630, 720},
	{400, 720},
	{400, 650},
	{400, 720},
	{1003, 720},
	{1003, 875},
}

// expected 路线必须经过的地面
var expected = []content.Surface{
	content.SurfaceWood, content.SurfaceBridge, content.SurfaceDirt,
	content.SurfaceGrass, content.SurfaceConcrete, content.SurfaceSand,
}

// walkReport 一次行走的统计
type walkReport struct {
	visited map[content.Surface]int
	changes int // 进入有脚步声地面的次数
	plays   int
	playing bool // 停下后脚步声是否仍在播放
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *speedFlag <= 0 {
		log.Fatalf("speed must be positive, got %d", *speedFlag)
	}

	r := walk(headless.NewAudio(*verboseFlag), *speedFlag, *originXFlag, *originYFlag, true)

	fmt.Printf("\n%-9s %7s\n", "surface", "frames")
	for _, s := range expected {
		fmt.Printf("%-9s %7d\n", s, r.visited[s])
	}
	fmt.Printf("%-9s %7d\n", content.SurfaceNone, r.visited[content.SurfaceNone])
	fmt.Printf("\nfootstep plays: %d, surface changes: %d\n", r.plays, r.changes)

	if missed := r.missed(); len(missed) > 0 {
		fmt.Printf("WARNING: route missed %v\n", missed)
		os.Exit(1)
	}
	if r.plays != r.changes {
		fmt.Println("WARNING: footstep restarted without a surface change")
		os.Exit(1)
	}
	if r.playing {
		fmt.Println("WARNING: footstep still playing after the walk stopped")
		os.Exit(1)
	}
}

// walk 沿 route 逐帧行走并驱动地面系统，最后停下
func walk(audio *headless.Audio, speed, ox, oy int, trace bool) walkReport {
	sys := systems.NewSurfaceSystem(audio, content.SurfaceRegions)
	r := walkReport{visited: make(map[content.Surface]int)}
	prev := content.SurfaceNone
	frames := 0

	bodyAt := func(p point) utils.Rect {
		return utils.Rect{X: p.x + ox, Y: p.feetY - feetSkip + oy, W: bodyW, H: bodyH}
	}

	pos := route[0]
	for _, target := range route[1:] {
		for pos != target {
			pos.x += stepToward(pos.x, target.x, speed)
			pos.feetY += stepToward(pos.feetY, target.feetY, speed)

			surface := sys.Update(bodyAt(pos), ox, oy, true)
			frames++
			r.visited[surface]++
			if surface == prev {
				continue
			}
			if trace {
				fmt.Printf("  frame %4d (%4d,%4d) %s -> %s\n", frames, pos.x, pos.feetY, prev, surface)
			}
			if surface.Footstep() != "" {
				r.changes++
			}
			prev = surface
		}
	}
	sys.Update(bodyAt(pos), ox, oy, false)

	r.plays = len(audio.Plays)
	r.playing = audio.IsPlaying(types.ChannelSFX)
	return r
}

// missed 返回路线上没有检测到的地面
func (r walkReport) missed() []content.Surface {
	var out []content.Surface
	for _, s := range expected {
		if r.visited[s] == 0 {
			out = append(out, s)
		}
	}
	return out
}

// stepToward 返回从 from 朝 to 前进一步的位移，不越过终点
func stepToward(from, to, speed int) int {
	switch d := to - from; {
	case d > speed:
		return speed
	case d < -speed:
		return -speed
	default:
		return d
	}
}
