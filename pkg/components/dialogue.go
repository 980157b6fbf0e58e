package components

import (
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// Speaker 说话者标签，决定头像与打字音
type Speaker int

const (
	// SpeakerHero 主角（普通表情）
	SpeakerHero Speaker = iota
	// SpeakerHeroAngry 主角（愤怒）
	SpeakerHeroAngry
	// SpeakerHeroSad 主角（悲伤）
	SpeakerHeroSad
	// SpeakerBoss Boss
	SpeakerBoss
	// SpeakerNone 旁白，无头像
	SpeakerNone
	// SpeakerBubble 战斗中的 Boss 气泡，无头像
	SpeakerBubble
)

// String 返回说话者名称
func (s Speaker) String() string {
	switch s {
	case SpeakerHero:
		return "Hero"
	case SpeakerHeroAngry:
		return "HeroAngry"
	case SpeakerHeroSad:
		return "HeroSad"
	case SpeakerBoss:
		return "Boss"
	case SpeakerNone:
		return "None"
	case SpeakerBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}

// HasPortrait 该说话者是否显示头像
func (s Speaker) HasPortrait() bool {
	switch s {
	case SpeakerHero, SpeakerHeroAngry, SpeakerHeroSad, SpeakerBoss:
		return true
	default:
		return false
	}
}

// Voice 返回打字音类别
func (s Speaker) Voice() VoiceCategory {
	switch s {
	case SpeakerHero, SpeakerHeroAngry, SpeakerHeroSad:
		return VoiceHero
	case SpeakerBoss:
		return VoiceBoss
	case SpeakerNone:
		return VoiceNarrator
	case SpeakerBubble:
		return VoiceBattle
	default:
		return VoiceSilent
	}
}

// VoiceCategory 打字音类别
type VoiceCategory int

const (
	VoiceSilent VoiceCategory = iota
	VoiceHero
	VoiceBoss
	VoiceNarrator
	VoiceBattle
)

// DialogueVariant 对话框变体
type DialogueVariant int

const (
	// DialogueStandard 标准对话框：可跳过、逐页等待输入
	DialogueStandard DialogueVariant = iota
	// DialogueBubble 战斗气泡：不可跳过、不等待输入，播完即静默结束
	DialogueBubble
)

// String 返回变体名称
func (v DialogueVariant) String() string {
	switch v {
	case DialogueStandard:
		return "Standard"
	case DialogueBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}

// DialogueState 打字机状态
type DialogueState int

const (
	// DialogueIdle 尚未开始（或已重置）
	DialogueIdle DialogueState = iota
	// DialogueRevealing 正在逐字显示
	DialogueRevealing
	// DialogueAwaitingAdvance 当前页显示完毕，等待确认键
	DialogueAwaitingAdvance
	// DialogueComplete 气泡已播完（标准对话完成后直接回到 Idle）
	DialogueComplete
)

// String 返回状态名称
func (s DialogueState) String() string {
	switch s {
	case DialogueIdle:
		return "Idle"
	case DialogueRevealing:
		return "Revealing"
	case DialogueAwaitingAdvance:
		return "AwaitingAdvance"
	case DialogueComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// DialogueLine 一条对话文本及其说话者
// 文本中的 "|" 为强制换行标记
type DialogueLine struct {
	Text    string
	Speaker Speaker
}

// RevealedGlyph 已显示的单个字形
type RevealedGlyph struct {
	Text    string
	Texture types.Texture
	W, H    int
}

// PlacedGlyph 排版后的字形位置
type PlacedGlyph struct {
	Index      int // 对应 Glyphs 下标
	X, Y, W, H int
}

// DialogueComponent 对话脚本 + 打字机渲染状态（纯数据）
//
// 生命周期:
//  1. 启动时以固定内容创建（见 content 包）
//  2. DialogueSystem 每帧推进
//  3. 会话结束、被中断（调试跳转、场景切换）时重置到初始状态
//
// 注意事项:
//   - Glyphs 缓存在每次切换到新字符串时释放并重建
//   - 头像计数器为本组件独有，不与菜单动画共享
type DialogueComponent struct {
	// ==========================================================================
	// 脚本内容 (Script Content)
	// ==========================================================================

	// Name 脚本名称（日志用）
	Name string
	// Lines 按顺序显示的文本
	Lines []DialogueLine
	// Style 字体与颜色
	Style types.TextStyle
	// Variant 标准 / 气泡
	Variant DialogueVariant

	// ==========================================================================
	// 打字机状态 (Typewriter State)
	// ==========================================================================

	State DialogueState
	// CurStr 当前字符串下标
	CurStr int
	// CurByte 当前字符串内的字节游标
	CurByte int
	// Glyphs 已显示字形缓存
	Glyphs []RevealedGlyph
	// Timer 距上次显示字形的累计时间
	Timer float64
	// WaitingForInput 当前页已满或字符串已显示完，等待确认
	WaitingForInput bool
	// Input 确认键去抖，切换字符串时重新计时
	Input utils.Debouncer
	// LastStr 上一帧所在的字符串下标，-1 表示刚重置
	LastStr int

	// ==========================================================================
	// 排版与头像 (Layout & Portrait)
	// ==========================================================================

	// Box 对话框矩形（由宿主场景每帧设置）
	Box utils.Rect
	// Layout 最近一次排版结果，仅包含可见字形
	Layout []PlacedGlyph
	// PortraitTimer 头像动画计时
	PortraitTimer float64
	// PortraitFrame 头像当前帧
	PortraitFrame int
}

// NewDialogue 创建处于初始状态的对话脚本
func NewDialogue(name string, style types.TextStyle, variant DialogueVariant, lines ...DialogueLine) *DialogueComponent {
	return &DialogueComponent{
		Name:    name,
		Lines:   lines,
		Style:   style,
		Variant: variant,
		LastStr: -1,
	}
}

// CurrentLine 返回当前字符串，越界时返回 false
func (d *DialogueComponent) CurrentLine() (DialogueLine, bool) {
	if d.CurStr < 0 || d.CurStr >= len(d.Lines) {
		return DialogueLine{}, false
	}
	return d.Lines[d.CurStr], true
}
