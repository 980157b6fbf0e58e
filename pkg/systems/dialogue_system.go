package systems

import (
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// DialogueHost 对话框的宿主场景，决定对话框位置与行为
type DialogueHost int

const (
	HostCutscene DialogueHost = iota
	HostWorld
	HostBattle
	HostBubble
	HostEnding
)

// String 返回宿主名称
func (h DialogueHost) String() string {
	switch h {
	case HostCutscene:
		return "Cutscene"
	case HostWorld:
		return "World"
	case HostBattle:
		return "Battle"
	case HostBubble:
		return "Bubble"
	case HostEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// DialogueContext 单次对话推进所需的外部信息
type DialogueContext struct {
	Host DialogueHost
	// Box 对话框矩形
	Box utils.Rect
	// Confirm 本帧确认键是否刚按下（边沿触发）
	Confirm bool
	// AllowSkip 是否允许一键显示整句
	AllowSkip bool
	// Portraits 是否绘制头像
	Portraits bool
	// Background 气泡背景图（仅气泡）
	Background types.Texture
}

// NewDialogueContext 按宿主返回默认的对话框布局
// 战斗中的对话框不可跳过，气泡请使用 BubbleContext
func NewDialogueContext(host DialogueHost) DialogueContext {
	ctx := DialogueContext{Host: host}
	switch host {
	case HostCutscene:
		ctx.Box = config.CutsceneDialogueBox()
		ctx.AllowSkip = true
	case HostWorld:
		ctx.Box = config.WorldDialogueBox(0)
		ctx.AllowSkip = true
		ctx.Portraits = true
	case HostBattle:
		ctx.Box = config.BattleDialogueBox()
	case HostEnding:
		ctx.Box = config.EndingDialogueBox()
		ctx.AllowSkip = true
		ctx.Portraits = true
	}
	return ctx
}

// BubbleContext 返回战斗气泡的对话框布局
func BubbleContext(bubble types.Texture) DialogueContext {
	w, h := types.TextureSize(bubble)
	return DialogueContext{
		Host:       HostBubble,
		Box:        config.BubbleDialogueBox(w, h),
		Background: bubble,
	}
}

// WithConfirm 返回设置了确认键状态的副本
func (c DialogueContext) WithConfirm(confirm bool) DialogueContext {
	c.Confirm = confirm
	return c
}

// textOrigin 文本起点：有头像的说话者让出头像位置
func (c DialogueContext) textOrigin(speaker components.Speaker) (int, int) {
	switch {
	case c.Host == HostBubble:
		return c.Box.X + config.BubbleTextX, c.Box.Y + config.BubbleTextY
	case speaker.HasPortrait():
		return c.Box.X + config.DialoguePortraitTextX, c.Box.Y + config.DialogueTextInset
	default:
		return c.Box.X + config.DialogueTextInset, c.Box.Y + config.DialogueTextInset
	}
}

// margins 返回文本区域的右边界与下边界
func (c DialogueContext) margins() (int, int) {
	switch c.Host {
	case HostBubble:
		return c.Box.Right() - config.BubbleMargin, c.Box.Bottom() - config.BubbleMargin
	case HostBattle:
		return c.Box.Right() - config.DialogueRightMargin, c.Box.Bottom()
	default:
		return c.Box.Right() - config.DialogueRightMargin, c.Box.Bottom() - config.DialogueBottomMargin
	}
}

// DialogueResult 单帧推进结果
type DialogueResult int

const (
	// DialogueRunning 对话仍在进行
	DialogueRunning DialogueResult = iota
	// DialogueFinished 最后一条字符串已确认，脚本已重置
	DialogueFinished
)

// String 返回结果名称
func (r DialogueResult) String() string {
	if r == DialogueFinished {
		return "Finished"
	}
	return "Running"
}

// DialogueSystem 对话打字机系统
//
// 职责：
//   - 按固定间隔逐个显示 UTF-8 字形，每个字形单独生成纹理
//   - 贪心换行排版，超出底边时暂停等待确认
//   - 说话者头像动画与打字音
//   - 字符串切换与整段结束时释放字形纹理
//
// 打字音节流计时器由系统持有，与显示节奏无关；其余状态都在 DialogueComponent 中。
type DialogueSystem struct {
	glyphs types.GlyphFactory
	audio  types.Audio

	voices    map[components.VoiceCategory]types.SoundID
	portraits map[components.Speaker][]types.Texture

	tickTimer float64
}

// NewDialogueSystem 创建对话系统
// audio 可以为 nil（静音）
func NewDialogueSystem(glyphs types.GlyphFactory, audio types.Audio, voices map[components.VoiceCategory]types.SoundID) *DialogueSystem {
	return &DialogueSystem{
		glyphs:    glyphs,
		audio:     audio,
		voices:    voices,
		portraits: make(map[components.Speaker][]types.Texture),
	}
}

// SetPortrait 设置说话者的头像帧（1~3 帧）
func (s *DialogueSystem) SetPortrait(speaker components.Speaker, frames ...types.Texture) {
	s.portraits[speaker] = frames
}

// Update 推进一帧对话
func (s *DialogueSystem) Update(d *components.DialogueComponent, ctx DialogueContext, dt float64) DialogueResult {
	if d == nil || len(d.Lines) == 0 {
		return DialogueFinished
	}
	d.Box = ctx.Box

	if d.CurStr != d.LastStr {
		d.Input = utils.Debouncer{Interval: config.DialogueInputDebounce}
		d.PortraitFrame = 0
		d.PortraitTimer = 0
		d.LastStr = d.CurStr
	}

	d.Input.Tick(dt)
	s.tickTimer += dt

	confirm := d.Input.Accept(ctx.Confirm)

	standard := d.Variant == components.DialogueStandard && ctx.Host != HostBubble
	line, _ := d.CurrentLine()

	if !d.WaitingForInput {
		d.State = components.DialogueRevealing
		d.PortraitTimer += dt
		d.Timer += dt

		if confirm && standard && ctx.AllowSkip {
			for d.CurByte < len(line.Text) && len(d.Glyphs) < config.MaxRevealedGlyphs {
				s.revealGlyph(d, line.Text)
			}
			d.WaitingForInput = true
		} else if d.Timer >= config.RevealInterval {
			d.Timer = 0
			switch {
			case d.CurByte >= len(line.Text):
				if standard {
					d.WaitingForInput = true
				}
			case len(d.Glyphs) >= config.MaxRevealedGlyphs:
				if standard {
					d.WaitingForInput = true
				}
			default:
				s.revealGlyph(d, line.Text)
				s.playTick(line.Speaker)
			}
		}
	} else if confirm && standard {
		s.releaseGlyphs(d)
		d.CurByte = 0
		d.CurStr++
		d.WaitingForInput = false
		d.Timer = 0

		if d.CurStr >= len(d.Lines) {
			log.Printf("[DialogueSystem] %s complete", d.Name)
			s.Reset(d)
			return DialogueFinished
		}
		line, _ = d.CurrentLine()
	}

	originX, originY := ctx.textOrigin(line.Speaker)
	maxX, maxY := ctx.margins()
	lineHeight := config.DefaultLineHeight
	if s.glyphs != nil {
		if h := s.glyphs.LineHeight(d.Style); h > 0 {
			lineHeight = h
		}
	}
	var overflow bool
	d.Layout, overflow = LayoutGlyphs(d.Glyphs, originX, originY, maxX, maxY, lineHeight)
	if overflow && standard {
		d.WaitingForInput = true
	}

	s.updatePortrait(d, line.Speaker)

	switch {
	case d.WaitingForInput:
		d.State = components.DialogueAwaitingAdvance
	case !standard && d.CurByte >= len(line.Text):
		d.State = components.DialogueComplete
	default:
		d.State = components.DialogueRevealing
	}
	return DialogueRunning
}

// revealGlyph 从当前字节游标取出一个字形并生成纹理
func (s *DialogueSystem) revealGlyph(d *components.DialogueComponent, text string) {
	glyph, n := utils.NextGlyph(text, d.CurByte)
	d.CurByte += n

	var tex types.Texture
	if s.glyphs != nil {
		tex = s.glyphs.NewGlyph(glyph, d.Style)
	}
	w, h := types.TextureSize(tex)
	d.Glyphs = append(d.Glyphs, components.RevealedGlyph{Text: glyph, Texture: tex, W: w, H: h})
}

// playTick 按说话者类别播放打字音，受最小间隔节流
func (s *DialogueSystem) playTick(speaker components.Speaker) {
	if s.audio == nil || s.tickTimer < config.TickSoundCooldown {
		return
	}
	if id, ok := s.voices[speaker.Voice()]; ok && id != "" {
		s.audio.Play(id, types.ChannelDialogue, 0)
	}
	s.tickTimer = 0
}

// updatePortrait 显示中循环头像帧，等待输入时停在第 0 帧
func (s *DialogueSystem) updatePortrait(d *components.DialogueComponent, speaker components.Speaker) {
	frames := s.portraits[speaker]
	if !speaker.HasPortrait() || len(frames) == 0 {
		d.PortraitFrame = 0
		return
	}
	if d.WaitingForInput {
		d.PortraitFrame = 0
		return
	}
	if d.PortraitTimer >= config.PortraitFrameCooldown {
		d.PortraitFrame = (d.PortraitFrame + 1) % len(frames)
		d.PortraitTimer = 0
	}
	d.PortraitFrame %= len(frames)
}

// releaseGlyphs 释放已显示字形的纹理
func (s *DialogueSystem) releaseGlyphs(d *components.DialogueComponent) {
	if s.glyphs != nil {
		for _, g := range d.Glyphs {
			if g.Texture != nil {
				s.glyphs.Release(g.Texture)
			}
		}
	}
	d.Glyphs = d.Glyphs[:0]
	d.Layout = d.Layout[:0]
}

// Reset 将脚本恢复到初始状态（会话结束、中断或场景切换时调用）
func (s *DialogueSystem) Reset(d *components.DialogueComponent) {
	if d == nil {
		return
	}
	s.releaseGlyphs(d)
	d.State = components.DialogueIdle
	d.CurStr = 0
	d.CurByte = 0
	d.Timer = 0
	d.WaitingForInput = false
	d.Input.Reset()
	d.LastStr = -1
	d.PortraitTimer = 0
	d.PortraitFrame = 0
}

// LayoutGlyphs 贪心换行排版
//
// 字形按空格与 "|" 分成若干词：
//   - "|" 强制换行，本身不绘制
//   - 词放不下（超出 maxX）时换到左边界的新行，行高取上次换行以来的最大字形高度
//   - 字形底边超出 maxY 时停止排版并返回 overflow=true
//
// 比整个文本框还宽的单词会溢出右边界而不是反复换行。
func LayoutGlyphs(glyphs []components.RevealedGlyph, originX, originY, maxX, maxY, defaultLineHeight int) ([]components.PlacedGlyph, bool) {
	placed := make([]components.PlacedGlyph, 0, len(glyphs))
	x, y := originX, originY
	lineHeight := 0
	wordStart, wordWidth := -1, 0

	size := func(g components.RevealedGlyph) (int, int) {
		w, h := g.W, g.H
		if w == 0 {
			w = 8
		}
		if h == 0 {
			h = defaultLineHeight
		}
		return w, h
	}
	newLine := func() {
		x = originX
		if lineHeight > 0 {
			y += lineHeight
		} else {
			y += defaultLineHeight
		}
		lineHeight = 0
	}
	place := func(i int) bool {
		w, h := size(glyphs[i])
		if y+h > maxY {
			return false
		}
		placed = append(placed, components.PlacedGlyph{Index: i, X: x, Y: y, W: w, H: h})
		x += w
		lineHeight = max(lineHeight, h)
		return true
	}

	// flush 放置 [wordStart, end] 范围内的单词，放不下时先换行
	flush := func(end int) bool {
		if wordStart == -1 {
			return true
		}
		if x+wordWidth > maxX && x > originX {
			newLine()
		}
		for j := wordStart; j <= end; j++ {
			if !place(j) {
				return false
			}
		}
		wordStart, wordWidth = -1, 0
		return true
	}

	for i, g := range glyphs {
		switch g.Text {
		case "|":
			if !flush(i - 1) {
				return placed, true
			}
			newLine()
			continue
		case " ":
			if !flush(i - 1) {
				return placed, true
			}
			if w, _ := size(g); x+w > maxX {
				newLine()
			}
			if !place(i) {
				return placed, true
			}
			continue
		}

		if wordStart == -1 {
			wordStart, wordWidth = i, 0
		}
		w, _ := size(g)
		wordWidth += w
	}
	if !flush(len(glyphs) - 1) {
		return placed, true
	}
	return placed, false
}

// Draw 绘制对话框、字形与头像
func (s *DialogueSystem) Draw(r types.Renderer, d *components.DialogueComponent, ctx DialogueContext) {
	if d == nil || r == nil {
		return
	}
	box := ctx.Box

	switch ctx.Host {
	case HostBattle:
	case HostBubble:
		if ctx.Background != nil {
			r.DrawTexture(ctx.Background, box.X, box.Y, box.W, box.H)
		}
	default:
		r.FillRect(box.X, box.Y, box.W, box.H, color.Black)
	}
	if ctx.Host == HostWorld {
		for _, b := range utils.BorderRects(box, config.BorderThickness) {
			r.FillRect(b.X, b.Y, b.W, b.H, color.White)
		}
	}

	for _, p := range d.Layout {
		if p.Index < 0 || p.Index >= len(d.Glyphs) {
			continue
		}
		if tex := d.Glyphs[p.Index].Texture; tex != nil {
			r.DrawTexture(tex, p.X, p.Y, p.W, p.H)
		}
	}

	if !ctx.Portraits {
		return
	}
	line, ok := d.CurrentLine()
	if !ok || !line.Speaker.HasPortrait() {
		return
	}
	frames := s.portraits[line.Speaker]
	if len(frames) == 0 {
		return
	}
	rect := config.PortraitRect(box, line.Speaker == components.SpeakerBoss)
	r.DrawTexture(frames[d.PortraitFrame%len(frames)], rect.X, rect.Y, rect.W, rect.H)
}
