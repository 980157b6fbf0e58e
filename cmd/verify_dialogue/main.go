// Package main provides a headless typewriter verification tool for the dialogue system.
//
// Usage:
//
//	go run ./cmd/verify_dialogue [flags]
//
// Flags:
//
//	--script <name>   Script to play (default: "intro"); --list prints every name
//	--host <name>     Dialogue host: cutscene, world, battle, ending (default: world)
//	--dt <seconds>    Frame step (default: 1/60)
//	--glyph <px>      Fixed glyph width used for layout (default: 12)
//	--skip            Press confirm while revealing to exercise skip-to-end
//	--list            List script names and exit
//	--verbose         Print every played sound
//
// Purpose:
//   - Check pagination and word wrap of long lines without launching a window
//   - Verify glyph textures are released when strings advance
//   - Measure how long each script takes at the default reveal speed
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/decker502/ctale/internal/headless"
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/systems"
)

var (
	scriptFlag  = flag.String("script", "intro", "Script name to play")
	hostFlag    = flag.String("host", "world", "Dialogue host (cutscene, world, battle, ending, bubble)")
	dtFlag      = flag.Float64("dt", 1.0/60.0, "Frame step in seconds")
	glyphFlag   = flag.Int("glyph", 12, "Glyph width in pixels")
	skipFlag    = flag.Bool("skip", false, "Press confirm while revealing")
	listFlag    = flag.Bool("list", false, "List script names and exit")
	verboseFlag = flag.Bool("verbose", false, "Print every played sound")
)

// maxFrames 防止脚本卡死时无限循环（约 10 分钟）
const maxFrames = 60 * 600

var hosts = map[string]systems.DialogueHost{
	"cutscene": systems.HostCutscene,
	"world":    systems.HostWorld,
	"battle":   systems.HostBattle,
	"ending":   systems.HostEnding,
	"bubble":   systems.HostBubble,
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	scripts := collectScripts()
	if *listFlag {
		names := make([]string, 0, len(scripts))
		for name := range scripts {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	d, ok := scripts[*scriptFlag]
	if !ok {
		log.Fatalf("unknown script %q (use --list)", *scriptFlag)
	}
	host, ok := hosts[*hostFlag]
	if !ok {
		log.Fatalf("unknown host %q", *hostFlag)
	}
	if d.Variant == components.DialogueBubble {
		host = systems.HostBubble
	}

	audio := headless.NewAudio(*verboseFlag)
	glyphs := headless.NewGlyphs(*glyphFlag, 24)
	ds := systems.NewDialogueSystem(glyphs, audio, content.Voices())

	ctx := systems.NewDialogueContext(host)
	if host == systems.HostBubble {
		ctx = systems.BubbleContext(&headless.Texture{Name: "bubble", W: 240, H: 120})
	}

	frames, pages := run(ds, d, ctx, glyphs)

	fmt.Printf("\nscript=%s host=%s strings=%d pages=%d\n", d.Name, ctx.Host, len(d.Lines), pages)
	fmt.Printf("frames=%d time=%.2fs\n", frames, float64(frames)*(*dtFlag))
	fmt.Printf("glyphs created=%d released=%d live=%d\n", glyphs.Created, glyphs.Released, glyphs.Live())
	fmt.Printf("voice ticks=%d\n", len(audio.Plays))
	if glyphs.Live() != 0 {
		fmt.Println("WARNING: glyph textures leaked")
		os.Exit(1)
	}
}

// collectScripts 按名称收集所有可播放的脚本
func collectScripts() map[string]*components.DialogueComponent {
	out := make(map[string]*components.DialogueComponent)
	for _, d := range content.NewBattleScripts().All() {
		name := d.Name
		for i := 2; ; i++ {
			if _, dup := out[name]; !dup {
				break
			}
			name = fmt.Sprintf("%s_%d", d.Name, i)
		}
		out[name] = d
	}
	for i, f := range content.NewStoryFrames() {
		out[fmt.Sprintf("story_%d", i+1)] = f.Text
	}
	out["ending"] = content.NewEndingScript()
	return out
}

// run 逐帧推进脚本，等待确认时自动按下确认键
// 返回总帧数与翻页次数
func run(ds *systems.DialogueSystem, d *components.DialogueComponent, ctx systems.DialogueContext, glyphs *headless.Glyphs) (int, int) {
	pages := 0
	lastStr := -1
	confirmHeld := false

	for frame := 1; frame <= maxFrames; frame++ {
		// 确认键按一帧、松开一帧，模拟边沿触发
		press := false
		if !confirmHeld && (d.WaitingForInput || *skipFlag) {
			press = true
		}
		confirmHeld = press

		if d.WaitingForInput && press {
			pages++
			fmt.Printf("  [page] str=%d shown=%q live=%d\n", d.CurStr, visible(d), glyphs.Live())
		}

		res := ds.Update(d, ctx.WithConfirm(press), *dtFlag)
		if res == systems.DialogueFinished {
			return frame, pages
		}
		if d.CurStr != lastStr && d.CurStr < len(d.Lines) {
			lastStr = d.CurStr
			line := d.Lines[d.CurStr]
			fmt.Printf("%4d %-8s %s\n", frame, line.Speaker, line.Text)
		}
		if d.State == components.DialogueComplete {
			fmt.Printf("  [complete] shown=%q\n", visible(d))
			ds.Reset(d)
			return frame, pages
		}
	}
	log.Fatalf("script %s did not finish in %d frames", d.Name, maxFrames)
	return 0, 0
}

// visible 返回当前排版中可见的文字
func visible(d *components.DialogueComponent) string {
	var b strings.Builder
	for _, g := range d.Layout {
		if g.Index < len(d.Glyphs) {
			b.WriteString(d.Glyphs[g.Index].Text)
		}
	}
	return b.String()
}
