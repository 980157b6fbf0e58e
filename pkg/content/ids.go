// Package content 编译进程序的游戏内容：对话脚本、资源ID表、弹幕资源表
//
// 内容不是数据驱动的：所有文本与资源ID都在这里以 Go 代码定义，
// 资源文件路径在 assets/config/resources.yaml 中与这些ID对应。
package content

import "github.com/decker502/ctale/pkg/types"

// 资源组名称（对应 resources.yaml 的 groups）
const (
	GroupInit     = "init"
	GroupStory    = "story"
	GroupBattle   = "battle"
	GroupPortrait = "portraits"
)

// AllGroups 启动时按顺序加载的资源组
var AllGroups = []string{GroupInit, GroupStory, GroupPortrait, GroupBattle}

// 字体ID
const (
	FontDialogue = "FONT_DIALOGUE"
	FontBattle   = "FONT_BATTLE"
)

// 字号
const (
	BaseFontSize   = 24.0
	BubbleFontSize = 14.0
)

// 标题与过场图片
const (
	ImageLogo        = "IMAGE_LOGO"
	ImageStoryFrame1 = "IMAGE_STORY_FRAME_1"
	ImageStoryFrame2 = "IMAGE_STORY_FRAME_2"
	ImageStoryFrame3 = "IMAGE_STORY_FRAME_3"
	ImageStoryFrame4 = "IMAGE_STORY_FRAME_4"
)

// 头像
const (
	ImageHeroPortrait1      = "IMAGE_HERO_PORTRAIT_1"
	ImageHeroPortrait2      = "IMAGE_HERO_PORTRAIT_2"
	ImageHeroAngryPortrait1 = "IMAGE_HERO_ANGRY_PORTRAIT_1"
	ImageHeroAngryPortrait2 = "IMAGE_HERO_ANGRY_PORTRAIT_2"
	ImageHeroSadPortrait1   = "IMAGE_HERO_SAD_PORTRAIT_1"
	ImageHeroSadPortrait2   = "IMAGE_HERO_SAD_PORTRAIT_2"
	ImageBossPortrait1      = "IMAGE_BOSS_PORTRAIT_1"
	ImageBossPortrait2      = "IMAGE_BOSS_PORTRAIT_2"
)

// 战斗界面
const (
	ImageSoul        = "IMAGE_SOUL"
	ImageSoulBroken  = "IMAGE_SOUL_BROKEN"
	ImageTextBubble  = "IMAGE_TEXT_BUBBLE"
	ImageBarTarget   = "IMAGE_BAR_TARGET"
	ImageBarAttack1  = "IMAGE_BAR_ATTACK_1"
	ImageBarAttack2  = "IMAGE_BAR_ATTACK_2"
	ImageBossHead1   = "IMAGE_BOSS_HEAD_1"
	ImageBossHead2   = "IMAGE_BOSS_HEAD_2"
	ImageBossTorso   = "IMAGE_BOSS_TORSO"
	ImageBossArms    = "IMAGE_BOSS_ARMS"
	ImageBossArmsHit = "IMAGE_BOSS_ARMS_HURT"
	ImageBossLegs    = "IMAGE_BOSS_LEGS"
	ImageBossLegsHit = "IMAGE_BOSS_LEGS_HURT"

	ImageButtonFight       = "IMAGE_BUTTON_FIGHT"
	ImageButtonFightSelect = "IMAGE_BUTTON_FIGHT_SELECT"
	ImageButtonAct         = "IMAGE_BUTTON_ACT"
	ImageButtonActSelect   = "IMAGE_BUTTON_ACT_SELECT"
	ImageButtonItem        = "IMAGE_BUTTON_ITEM"
	ImageButtonItemSelect  = "IMAGE_BUTTON_ITEM_SELECT"
	ImageButtonLeave       = "IMAGE_BUTTON_LEAVE"
	ImageButtonLeaveSelect = "IMAGE_BUTTON_LEAVE_SELECT"
)

// SlashFrames 斩击动画（6 帧）
var SlashFrames = []string{
	"IMAGE_SLASH_1", "IMAGE_SLASH_2", "IMAGE_SLASH_3",
	"IMAGE_SLASH_4", "IMAGE_SLASH_5", "IMAGE_SLASH_6",
}

// DamageNumbers 伤害数字，按命中等级从差到好（Bad, Normal, Good, Perfect）
var DamageNumbers = []string{
	"IMAGE_NUMBER_10", "IMAGE_NUMBER_20", "IMAGE_NUMBER_30", "IMAGE_NUMBER_40",
}

// 弹幕图片
const (
	ImageKeywordIf    = "IMAGE_KEYWORD_IF"
	ImageKeywordElse  = "IMAGE_KEYWORD_ELSE"
	ImageKeywordElif  = "IMAGE_KEYWORD_ELIF"
	ImageKeywordInput = "IMAGE_KEYWORD_INPUT"
	ImageKeywordPrint = "IMAGE_KEYWORD_PRINT"
	ImageKeywordIn    = "IMAGE_KEYWORD_IN"

	ImageParenLeft    = "IMAGE_PARENTHESIS_1"
	ImageParenRight   = "IMAGE_PARENTHESIS_2"
	ImageBracketLeft  = "IMAGE_BRACKETS_1"
	ImageBracketRight = "IMAGE_BRACKETS_2"
	ImageBraceLeft    = "IMAGE_KEY_1"
	ImageBraceRight   = "IMAGE_KEY_2"

	ImageMother1 = "IMAGE_PYTHON_1"
	ImageMother2 = "IMAGE_PYTHON_2"
	ImageChild1  = "IMAGE_PYTHON_BABY_1"
	ImageChild2  = "IMAGE_PYTHON_BABY_2"

	ImageBarrierTop1    = "IMAGE_BARRIER_RIGHT_1"
	ImageBarrierTop2    = "IMAGE_BARRIER_RIGHT_2"
	ImageBarrierBottom1 = "IMAGE_BARRIER_LEFT_1"
	ImageBarrierBottom2 = "IMAGE_BARRIER_LEFT_2"
)

// 音乐
const (
	MusicStory  types.SoundID = "MUSIC_STORY_OF_A_HERO"
	MusicBattle types.SoundID = "MUSIC_BATTLE_AGAINST_ABSTRACTION"
)

// 战斗音效
const (
	SoundHit           types.SoundID = "SOUND_DAMAGE_TAKEN"
	SoundAppear        types.SoundID = "SOUND_OBJECT_APPEARS"
	SoundBorn          types.SoundID = "SOUND_PYTHON_EJECTS"
	SoundSlam          types.SoundID = "SOUND_SLAM"
	SoundStrike        types.SoundID = "SOUND_STRIKE"
	SoundEnemyHit      types.SoundID = "SOUND_ENEMY_HIT"
	SoundSlash         types.SoundID = "SOUND_SLASH"
	SoundEat           types.SoundID = "SOUND_HEAL"
	SoundMoveSelection types.SoundID = "SOUND_MOVE_SELECTION"
	SoundSelect        types.SoundID = "SOUND_SELECT"
	SoundBattleAppears types.SoundID = "SOUND_BATTLE_APPEARS"
	SoundSoulShatter   types.SoundID = "SOUND_SOUL_SHATTER"
	SoundTextBattle    types.SoundID = "SOUND_TEXT_BATTLE"
	SoundLogo          types.SoundID = "SOUND_LOGO"
)

// 打字音
const (
	SoundHeroVoice types.SoundID = "SOUND_HERO_VOICE"
	SoundBossVoice types.SoundID = "SOUND_BOSS_VOICE"
	SoundTextVoice types.SoundID = "SOUND_TEXT"
)

// 脚步声（按地面类型）
const (
	SoundWalkGrass    types.SoundID = "SOUND_WALK_GRASS"
	SoundWalkConcrete types.SoundID = "SOUND_WALK_CONCRETE"
	SoundWalkSand     types.SoundID = "SOUND_WALK_SAND"
	SoundWalkBridge   types.SoundID = "SOUND_WALK_BRIDGE"
	SoundWalkWood     types.SoundID = "SOUND_WALK_WOOD"
	SoundWalkDirt     types.SoundID = "SOUND_WALK_DIRT"
)

// KeywordImages 关键字雨使用的字形
var KeywordImages = []string{
	ImageKeywordIf, ImageKeywordElse, ImageKeywordElif,
	ImageKeywordInput, ImageKeywordPrint, ImageKeywordIn,
}

// PairImages 钳形弹幕的左右配对
var PairImages = [][2]string{
	{ImageParenLeft, ImageParenRight},
	{ImageBracketLeft, ImageBracketRight},
	{ImageBraceLeft, ImageBraceRight},
}

// MenuButtonImages 菜单按钮（普通, 选中），按 MenuButton 顺序
var MenuButtonImages = [4][2]string{
	{ImageButtonFight, ImageButtonFightSelect},
	{ImageButtonAct, ImageButtonActSelect},
	{ImageButtonItem, ImageButtonItemSelect},
	{ImageButtonLeave, ImageButtonLeaveSelect},
}
