package scenes

import (
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
)

func textures(src TextureSource, ids ...string) []types.Texture {
	out := make([]types.Texture, len(ids))
	for i, id := range ids {
		out[i] = src.Texture(id)
	}
	return out
}

// BuildPatternAssets 从资源表组装弹幕资源
func BuildPatternAssets(src TextureSource) systems.PatternAssets {
	pairs := make([][2]types.Texture, len(content.PairImages))
	for i, p := range content.PairImages {
		pairs[i] = [2]types.Texture{src.Texture(p[0]), src.Texture(p[1])}
	}
	return systems.PatternAssets{
		Keywords:      textures(src, content.KeywordImages...),
		Pairs:         pairs,
		Mother:        [2]types.Texture{src.Texture(content.ImageMother1), src.Texture(content.ImageMother2)},
		Child:         textures(src, content.ImageChild1, content.ImageChild2),
		BarrierTop:    textures(src, content.ImageBarrierTop1, content.ImageBarrierTop2),
		BarrierBottom: textures(src, content.ImageBarrierBottom1, content.ImageBarrierBottom2),

		HitSound:    content.SoundHit,
		AppearSound: content.SoundAppear,
		BornSound:   content.SoundBorn,
		SlamSound:   content.SoundSlam,
		StrikeSound: content.SoundStrike,
	}
}

// BuildBattleAssets 从资源表组装战斗资源
func BuildBattleAssets(src TextureSource) *systems.BattleAssets {
	a := &systems.BattleAssets{
		// 第二帧为空，闪烁时隐藏灵魂
		Soul:      []types.Texture{src.Texture(content.ImageSoul), nil},
		BarTarget: src.Texture(content.ImageBarTarget),
		BarAttack: textures(src, content.ImageBarAttack1, content.ImageBarAttack2),
		Slash:     textures(src, content.SlashFrames...),

		BossHead:  [2]types.Texture{src.Texture(content.ImageBossHead1), src.Texture(content.ImageBossHead2)},
		BossTorso: src.Texture(content.ImageBossTorso),
		BossArms:  [2]types.Texture{src.Texture(content.ImageBossArms), src.Texture(content.ImageBossArmsHit)},
		BossLegs:  [2]types.Texture{src.Texture(content.ImageBossLegs), src.Texture(content.ImageBossLegsHit)},

		TextBubble: src.Texture(content.ImageTextBubble),
		Patterns:   BuildPatternAssets(src),

		MoveSound:     content.SoundMoveSelection,
		SelectSound:   content.SoundSelect,
		AppearSound:   content.SoundBattleAppears,
		SlashSound:    content.SoundSlash,
		EnemyHitSound: content.SoundEnemyHit,
		EatSound:      content.SoundEat,
		Music:         content.MusicBattle,
	}
	for i, id := range content.DamageNumbers {
		if i < len(a.Numbers) {
			a.Numbers[i] = src.Texture(id)
		}
	}
	for i, pair := range content.MenuButtonImages {
		a.Buttons[i] = [2]types.Texture{src.Texture(pair[0]), src.Texture(pair[1])}
	}
	return a
}

// ApplyPortraits 为对话系统设置各说话者的头像帧
func ApplyPortraits(ds *systems.DialogueSystem, src TextureSource) {
	ds.SetPortrait(components.SpeakerHero,
		textures(src, content.ImageHeroPortrait1, content.ImageHeroPortrait2)...)
	ds.SetPortrait(components.SpeakerHeroAngry,
		textures(src, content.ImageHeroAngryPortrait1, content.ImageHeroAngryPortrait2)...)
	ds.SetPortrait(components.SpeakerHeroSad,
		textures(src, content.ImageHeroSadPortrait1, content.ImageHeroSadPortrait2)...)
	ds.SetPortrait(components.SpeakerBoss,
		textures(src, content.ImageBossPortrait1, content.ImageBossPortrait2)...)
}
