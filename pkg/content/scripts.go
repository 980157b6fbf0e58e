package content

import (
	"image/color"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/types"
	"golang.org/x/image/colornames"
)

// 文字样式
var (
	DialogueStyle = types.TextStyle{FontID: FontDialogue, Size: BaseFontSize, Color: color.White}
	BattleStyle   = types.TextStyle{FontID: FontBattle, Size: BaseFontSize, Color: color.White}
	BubbleStyle   = types.TextStyle{FontID: FontDialogue, Size: BubbleFontSize, Color: color.Black}
	TitleStyle    = types.TextStyle{FontID: FontDialogue, Size: BaseFontSize, Color: colornames.Gray}
)

// 简写
const (
	hero  = components.SpeakerHero
	angry = components.SpeakerHeroAngry
	sad   = components.SpeakerHeroSad
	boss  = components.SpeakerBoss
	none  = components.SpeakerNone
)

func line(speaker components.Speaker, text string) components.DialogueLine {
	return components.DialogueLine{Text: text, Speaker: speaker}
}

func narrate(name string, texts ...string) *components.DialogueComponent {
	lines := make([]components.DialogueLine, len(texts))
	for i, t := range texts {
		lines[i] = line(none, t)
	}
	return components.NewDialogue(name, DialogueStyle, components.DialogueStandard, lines...)
}

func conversation(name string, lines ...components.DialogueLine) *components.DialogueComponent {
	return components.NewDialogue(name, DialogueStyle, components.DialogueStandard, lines...)
}

// 菜单与界面文字
const (
	TitlePrompt = "APERTE ENTER PARA COMEÇAR"
	HeroName    = "MENEGHETTI"
	HPLabel     = "HP"
	FightTarget = "* Mr. Python"
	FoodLabel   = "* Picanha"
	HPFormat    = "%02d/%d"
	FoodFormat  = "%dx"
	ActExamine  = "* Examinar"
	ActInsult   = "* Insultar"
	ActExplain  = "* Explicar"
	LeaveSpare  = "* Poupar"
	LeaveFlee   = "* Fugir"
)

// ActLabels 行动子菜单文字（按 ActOption 顺序）
var ActLabels = [components.ActOptionCount]string{ActExamine, ActInsult, ActExplain}

// LeaveLabels 离开子菜单文字（按 LeaveOption 顺序）
var LeaveLabels = [components.LeaveOptionCount]string{LeaveSpare, LeaveFlee}

// BattleScripts 一场遭遇战用到的全部对话
// 每个脚本都是独立的组件实例，各自持有打字机状态
type BattleScripts struct {
	// Intro 按死亡次数选择的战前对话（0, 1, 2, 3, 4+）
	Intro [5]*components.DialogueComponent

	// Start 第一次进入菜单时的旁白，Generic 之后每次进入菜单的旁白
	Start   *components.DialogueComponent
	Generic *components.DialogueComponent

	Examine        *components.DialogueComponent
	Insult         *components.DialogueComponent
	InsultGeneric  *components.DialogueComponent
	Explain        *components.DialogueComponent
	ExplainGeneric *components.DialogueComponent

	Eat    *components.DialogueComponent
	NoFood *components.DialogueComponent

	Spare *components.DialogueComponent
	Flee  *components.DialogueComponent

	// Bubbles 躲避回合的 Boss 气泡（按 1~3 随机选择）
	Bubbles [3]*components.DialogueComponent
}

// NewBattleScripts 创建战斗对话
func NewBattleScripts() *BattleScripts {
	s := &BattleScripts{
		Intro: [5]*components.DialogueComponent{
			conversation("intro",
				line(boss, "* Há quanto tempo, Meneghetti."),
				line(hero, "* Mr. Python..."),
				line(boss, "* Você veio até aqui batalhar contra mim?"),
				line(boss, "* Lembra o que aconteceu da última vez, não é?"),
				line(boss, "* Você e as outras linguagens de baixo nível nem me arranharam. Foi realmente estúpido."),
				line(sad, "* Não vou cometer os mesmos erros do passado..."),
				line(angry, "* Você vai pagar pelo que fez com eles."),
				line(hero, "* As linguagens de baixo nível ainda não morreram."),
				line(angry, "* Eu ainda estou aqui para acabar com você."),
				line(boss, "* Que peninha... Deve ser tão triste ser o último que restou."),
				line(boss, "* Eu entendo a sua frustração."),
				line(boss, "* Vamos acabar com isso para que você se junte a eles logo."),
				line(angry, "* Venha, Mr. Python."),
			),
			conversation("intro_retry_1",
				line(boss, "* Hm? Você conseguiu voltar?"),
				line(boss, "* Você é realmente duro na queda, Meneghetti. Devo admitir."),
				line(angry, "* Eu ainda não desisti. Não pense que vai ser fácil."),
				line(boss, "* Vamos ver se você vai ter a mesma sorte desta vez."),
			),
			conversation("intro_retry_2",
				line(boss, "* Que insistência. Por que não desiste logo?"),
				line(angry, "* Não enquanto eu não acabar com você."),
				line(boss, "* Hahahah. Não precisa ser tão agressivo."),
			),
			conversation("intro_retry_3",
				line(boss, "* Acho que está um pouco difícil para você. Quer que eu diminua a dificuldade?"),
				line(hero, "* Cala a boca."),
				line(boss, "* Desculpa, pessoal, eu tentei. Vamos para mais um round então."),
			),
			conversation("intro_retry_4",
				line(hero, "* ..."),
				line(boss, "* Vamos logo com isso."),
			),
		},

		Start:   narrate("fight_start", "* Mr. Python bloqueia o seu caminho."),
		Generic: narrate("fight_generic", "* Mr. Python aguarda o seu próximo movimento."),

		Examine:        narrate("act_examine", "* Mr. Python - 2 ATQ, ? DEF |* O seu pior inimigo."),
		Insult:         narrate("act_insult", "* Você insulta a tipagem dinâmica. |* Mr. Python aumenta a sua própria variável de força."),
		InsultGeneric:  narrate("act_insult_generic", "* Você lembra do último turno... |* Você decide ficar calado."),
		Explain:        narrate("act_explain", "* Você explica ponteiros para Mr. Python. |* Ele enfraquece ao ouvir algo tão rudimentar."),
		ExplainGeneric: narrate("act_explain_generic", "* Você tenta explicar algo de baixo nível, mas Mr. Python dá de costas. |* Que rude!"),

		Eat:    narrate("item_eat", "* Você comeu PICANHA. |* Você recuperou 20 de HP!"),
		NoFood: narrate("item_none", "* Não sobrou mais nada comestível em seus bolsos."),

		Spare: narrate("leave_spare", "* A palavra 'perdão' não existe no seu vocabulário neste momento."),
		Flee:  narrate("leave_flee", "* Esta é uma batalha em que você não cogita fugir."),
	}

	bubbles := []string{
		"A abstração já venceu há muito tempo.",
		"As linguagens de baixo nível já estão ultrapassadas.",
		"Te darei um final digno.",
	}
	for i, text := range bubbles {
		s.Bubbles[i] = components.NewDialogue("bubble", BubbleStyle, components.DialogueBubble,
			line(components.SpeakerBubble, text))
	}
	return s
}

// IntroFor 按死亡次数选择战前对话
func (s *BattleScripts) IntroFor(deathCount int) *components.DialogueComponent {
	if deathCount < 0 {
		deathCount = 0
	}
	if deathCount >= len(s.Intro) {
		deathCount = len(s.Intro) - 1
	}
	return s.Intro[deathCount]
}

// All 返回全部脚本（统一重置用）
func (s *BattleScripts) All() []*components.DialogueComponent {
	all := make([]*components.DialogueComponent, 0, 20)
	all = append(all, s.Intro[:]...)
	all = append(all, s.Start, s.Generic,
		s.Examine, s.Insult, s.InsultGeneric, s.Explain, s.ExplainGeneric,
		s.Eat, s.NoFood, s.Spare, s.Flee)
	all = append(all, s.Bubbles[:]...)
	return all
}

// StoryFrame 开场过场的一帧
type StoryFrame struct {
	ImageID  string
	Duration float64
	Text     *components.DialogueComponent
}

// NewStoryFrames 创建开场过场
func NewStoryFrames() []StoryFrame {
	return []StoryFrame{
		{ImageStoryFrame1, 10.0, narrate("story_1",
			"Na época de ouro da computação, o mundo vivia em harmonia com diversas linguagens de programação.")},
		{ImageStoryFrame2, 10.0, narrate("story_2",
			"Porém, com os avanços tecnológicos, surgiu dependência e abstração na vida dos programadores.")},
		{ImageStoryFrame3, 12.0, narrate("story_3",
			"No fim, restaram mínimos usuários de linguagens de baixo nível, o mundo fora tomado pela praticidade. Mas ainda havia resistência.")},
		{ImageStoryFrame4, 13.5, narrate("story_4",
			"Para trazer a luz para o mundo novamente, um dos heróis restantes lutará contra todas as abstrações e seu maior inimigo...")},
	}
}

// NewEndingScript 创建结局对话
func NewEndingScript() *components.DialogueComponent {
	return conversation("ending",
		line(boss, "* Como... Como que isso foi acontecer?"),
		line(boss, "* Não faz sentido... Nós tínhamos ganhado essa luta."),
		line(boss, "* EU já havia ganhado."),
		line(boss, "* ..."),
		line(boss, "* Esse não é o fim, Meneghetti."),
		line(boss, "* Por agora, você venceu. Mas um dia..."),
		line(boss, "* Um dia, as linguagens de baixo nível serão esquecidas."),
		line(boss, "* E esse será o dia de sua ruína, e do meu triunfo."),
		line(none, "* Após anos de reinado das linguagens de alto nível..."),
		line(none, "* A luz que um dia havia sumido dos programadores finalmente voltou a brilhar."),
		line(none, "* Um raio de esperança e um futuro próspero agora poderiam ser contemplados."),
		line(none, "* Tudo isso graças à ele..."),
	)
}

// Voices 说话者类别到打字音的映射
func Voices() map[components.VoiceCategory]types.SoundID {
	return map[components.VoiceCategory]types.SoundID{
		components.VoiceHero:     SoundHeroVoice,
		components.VoiceBoss:     SoundBossVoice,
		components.VoiceNarrator: SoundTextVoice,
		components.VoiceBattle:   SoundTextBattle,
	}
}
