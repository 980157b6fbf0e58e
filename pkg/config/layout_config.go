package config

import "github.com/decker502/ctale/pkg/utils"

// 布局配置常量
// 本文件定义了场景中的布局参数，包括战斗框、按钮、对话框位置等
// 所有坐标都是 640x480 逻辑屏幕坐标

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 640
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 480
	// GameTitle 窗口标题
	GameTitle = "C-Tale: Meneghetti Vs Python"
)

// Battle Box Configuration (战斗框配置)
const (
	// BorderThickness 战斗框边框厚度
	BorderThickness = 5

	// ButtonWidth / ButtonHeight 菜单按钮尺寸
	ButtonWidth  = 128
	ButtonHeight = 48
	// ButtonY 按钮所在行（距离底部 68 像素）
	ButtonY = ScreenHeight - 68
	// ButtonFightX 第一个按钮的X坐标
	ButtonFightX = 26
	// ButtonGapFirst FIGHT 与 ACT 之间的间距
	ButtonGapFirst = 26
	// ButtonGap 其余按钮之间的间距
	ButtonGap = 25

	// SoulSize 灵魂尺寸
	SoulSize = 20
	// SoulMarkerGap 菜单光标与文字之间的间距
	SoulMarkerGap = 11

	// BossX Boss 各部件的基准X坐标
	BossX = ScreenWidth/2 - 102
	// BossBaseY Boss 上下浮动的基准Y坐标
	BossBaseY = 25
	// BossSize Boss 各部件的绘制尺寸
	BossSize = 204
	// BossShake 受击抖动幅度
	BossShake = 4
)

// SlashRect 斩击动画位置（Boss 躯干右侧）
func SlashRect(torso utils.Rect) utils.Rect {
	return utils.Rect{X: torso.X + torso.W/2 + 16, Y: torso.Y + 32, W: 32, H: 164}
}

// BaseBox 静止状态的战斗框
func BaseBox() utils.Rect {
	return utils.Rect{X: 20, Y: ScreenHeight / 2, W: ScreenWidth - 40, H: 132}
}

// MenuButtonRects 返回 FIGHT / ACT / ITEM / LEAVE 四个按钮的矩形
func MenuButtonRects() [4]utils.Rect {
	var r [4]utils.Rect
	x := ButtonFightX
	for i := range r {
		r[i] = utils.Rect{X: x, Y: ButtonY, W: ButtonWidth, H: ButtonHeight}
		if i == 0 {
			x += ButtonWidth + ButtonGapFirst
		} else {
			x += ButtonWidth + ButtonGap
		}
	}
	return r
}

// BarTarget 攻击条目标区域
func BarTarget() utils.Rect {
	return utils.Rect{X: 25, Y: 245, W: 590, H: 122}
}

// BarAttackStart 攻击条游标的初始矩形
func BarAttackStart() utils.Rect {
	t := BarTarget()
	return utils.Rect{X: t.X + 20, Y: t.Y + 2, W: 14, H: t.H - 4}
}

// HitZoneRects 攻击条四个同心命中区域（Perfect, Good, Normal, Bad）
func HitZoneRects() [4]utils.Rect {
	t := BarTarget()
	return [4]utils.Rect{
		{X: t.X + 267, Y: t.Y, W: 56, H: t.H},
		{X: t.X + 183, Y: t.Y, W: 224, H: t.H},
		{X: t.X + 62, Y: t.Y, W: 466, H: t.H},
		{X: t.X, Y: t.Y, W: t.W, H: t.H},
	}
}

// Sub-menu text anchors (子菜单文字锚点)
const (
	// SubMenuTextX 子菜单第一列文字X坐标
	SubMenuTextX = 69
	// SubMenuTextY 子菜单第一行文字Y坐标
	SubMenuTextY = ScreenHeight/2 + 25
	// SubMenuRowGap 行间距（在文字高度之外）
	SubMenuRowGap = 10
	// SubMenuColumnGap 第二列与第一列文字之间的间距
	SubMenuColumnGap = 100
)

// BossLifeBar Boss 血条
func BossLifeBar() utils.Rect {
	return utils.Rect{X: ScreenWidth/2 - 100, Y: 200, W: 200, H: 10}
}

// PlayerLifeBar 玩家血条背景（宽度 = 最大生命 × 3）
func PlayerLifeBar() utils.Rect {
	return utils.Rect{X: ScreenWidth/2 - 72, Y: ButtonY - 30, W: 60, H: 20}
}

// Dialogue Box Configuration (对话框配置)
const (
	// DialogueTextInset 无头像时文字相对对话框的内边距
	DialogueTextInset = 27
	// DialoguePortraitTextX 有头像时文字的X偏移
	DialoguePortraitTextX = 130
	// DialogueRightMargin 标准对话框右侧留白
	DialogueRightMargin = 50
	// DialogueBottomMargin 非战斗对话框底部留白
	DialogueBottomMargin = 27
	// BubbleTextX / BubbleTextY 气泡文字偏移
	BubbleTextX = 35
	BubbleTextY = 5
	// BubbleMargin 气泡右侧与底部留白
	BubbleMargin = 2
	// BubbleScale 气泡图片缩放
	BubbleScale = 1.5
	// BubbleX / BubbleY 气泡位置
	BubbleX = 380
	BubbleY = 40

	// DefaultLineHeight 字体未提供行高时的默认值
	DefaultLineHeight = 16
)

// CutsceneDialogueBox 过场动画对话框
func CutsceneDialogueBox() utils.Rect {
	return utils.Rect{X: 20, Y: ScreenHeight - 200, W: ScreenWidth - 40, H: 180}
}

// WorldDialogueBox 大地图对话框：角色位于上半屏时放在底部，否则放在顶部
func WorldDialogueBox(playerBottom int) utils.Rect {
	if playerBottom < ScreenHeight/2 {
		return utils.Rect{X: 25, Y: ScreenHeight - 175, W: ScreenWidth - 50, H: 150}
	}
	return utils.Rect{X: 25, Y: 25, W: ScreenWidth - 50, H: 150}
}

// BattleDialogueBox 战斗对话框（与静止战斗框重合）
func BattleDialogueBox() utils.Rect {
	return utils.Rect{X: 20, Y: ScreenHeight / 2, W: ScreenWidth - 40, H: 132}
}

// EndingDialogueBox 结局对话框
func EndingDialogueBox() utils.Rect {
	return utils.Rect{X: 25, Y: ScreenHeight - 175, W: ScreenWidth - 50, H: 150}
}

// BubbleDialogueBox 气泡对话框，尺寸为气泡图片的 1.5 倍
func BubbleDialogueBox(bubbleW, bubbleH int) utils.Rect {
	return utils.Rect{
		X: BubbleX,
		Y: BubbleY,
		W: int(float64(bubbleW) * BubbleScale),
		H: int(float64(bubbleH) * BubbleScale),
	}
}

// PortraitRect 头像位置：主角 72x96，Boss 96x96
func PortraitRect(box utils.Rect, wide bool) utils.Rect {
	w := 72
	if wide {
		w = 96
	}
	return utils.Rect{X: box.X + DialogueTextInset, Y: box.Y + DialogueTextInset, W: w, H: 96}
}

// Dialogue Timing (对话计时)
const (
	// RevealInterval 每个字形的显示间隔（秒）
	RevealInterval = 0.04
	// DialogueInputDebounce 确认键最小间隔（秒）
	DialogueInputDebounce = 0.2
	// TickSoundCooldown 打字音最小间隔（秒）
	TickSoundCooldown = 0.03
	// PortraitFrameCooldown 头像动画帧间隔（秒）
	PortraitFrameCooldown = 0.2
	// MaxRevealedGlyphs 单条字符串最多显示的字形数
	MaxRevealedGlyphs = 512
)

// TitleLogoRect 标题 Logo 位置（居中，580x63）
func TitleLogoRect() utils.Rect {
	return utils.Rect{X: ScreenWidth/2 - 290, Y: ScreenHeight/2 - 32, W: 580, H: 63}
}

// CenterSoulRect 屏幕中央的灵魂（战斗开始与死亡画面）
func CenterSoulRect() utils.Rect {
	return utils.Rect{X: ScreenWidth/2 - SoulSize/2, Y: ScreenHeight/2 - SoulSize/2, W: SoulSize, H: SoulSize}
}

// Cutscene Timing (过场计时)
const (
	// CutsceneFade 每帧淡入、淡出时长（秒）
	CutsceneFade = 1.0
	// CutsceneFrameTail 淡出结束后到下一帧的停顿（秒）
	CutsceneFrameTail = 0.5
)
