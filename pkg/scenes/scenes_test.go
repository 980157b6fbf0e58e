package scenes

import (
	"testing"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/types"
)

// TestTitleScene 测试标题画面：Logo 音效结束前不接受输入
func TestTitleScene(t *testing.T) {
	env := newTestEnv(t)
	s := NewTitleScene(env.svc)

	s.Update(0.016)
	if env.audio.count(content.SoundLogo) != 1 {
		t.Fatal("logo sound should play on enter")
	}

	env.press(types.KeyConfirm)
	s.Update(0.016)
	if s.PromptVisible() || env.svc.State.Mode != components.ModeTitle {
		t.Error("prompt and input should wait for the logo sound")
	}

	env.audio.playing[types.ChannelSFX] = false
	env.press()
	s.Update(0.016)
	if !s.PromptVisible() {
		t.Error("prompt should appear after the logo sound")
	}

	env.press(types.KeyConfirm)
	s.Update(0.016)
	if env.svc.State.Mode != components.ModeCutscene {
		t.Errorf("Mode = %s, want Cutscene", env.svc.State.Mode)
	}

	s.OnLeave()
	if env.glyphs.released != 2 {
		t.Errorf("released = %d, want 2 prompt glyphs", env.glyphs.released)
	}
}

// TestTitleSceneDraw 测试标题画面绘制 Logo
func TestTitleSceneDraw(t *testing.T) {
	env := newTestEnv(t)
	s := NewTitleScene(env.svc)
	r := &fakeRenderer{}
	s.draw(r)
	if !r.drew(env.textures.Texture(content.ImageLogo)) {
		t.Error("logo should be drawn")
	}
	// 无渲染器时 Draw 不做任何事
	s.Draw(nil)
}

// TestCutsceneAdvancesFrames 每帧持续时间加停顿后切换到下一帧
func TestCutsceneAdvancesFrames(t *testing.T) {
	env := newTestEnv(t)
	s := NewCutsceneScene(env.svc)

	for i := 0; i < 41; i++ {
		s.Update(0.25)
	}
	if s.Index() != 0 {
		t.Fatalf("Index = %d before 10.5s, want 0", s.Index())
	}
	s.Update(0.25)
	if s.Index() != 1 {
		t.Errorf("Index = %d after 10.5s, want 1", s.Index())
	}
	if env.audio.count(content.MusicStory) != 1 {
		t.Error("story music should start once")
	}
}

// TestCutsceneRunsToBattle 全部故事帧结束后进入战斗
func TestCutsceneRunsToBattle(t *testing.T) {
	env := newTestEnv(t)
	s := NewCutsceneScene(env.svc)

	for i := 0; i < 200 && env.svc.State.Mode != components.ModeBattle; i++ {
		s.Update(0.25)
	}
	if env.svc.State.Mode != components.ModeBattle {
		t.Fatalf("Mode = %s, want Battle", env.svc.State.Mode)
	}
	if !env.audio.stopped(types.ChannelMusic) {
		t.Error("story music should stop")
	}
	if env.glyphs.created != env.glyphs.released {
		t.Errorf("glyph leak: created %d released %d", env.glyphs.created, env.glyphs.released)
	}
}

// TestCutsceneSkip 取消键跳过过场
func TestCutsceneSkip(t *testing.T) {
	env := newTestEnv(t)
	s := NewCutsceneScene(env.svc)
	s.Update(0.25)

	env.press(types.KeyCancel)
	s.Update(0.25)
	if env.svc.State.Mode != components.ModeBattle {
		t.Errorf("Mode = %s, want Battle", env.svc.State.Mode)
	}
	if !env.audio.stopped(types.ChannelMusic) {
		t.Error("skipping should stop the music")
	}
}

// TestBattleSceneIntroThenApproach 战前对话结束后开始入场动画
func TestBattleSceneIntroThenApproach(t *testing.T) {
	env := newTestEnv(t)
	st := env.svc.State
	st.SetMode(components.ModeBattle)
	s := NewBattleScene(env.svc)

	if s.intro != env.svc.Scripts.IntroFor(0) || st.PlayerMode != components.PlayerDialogue {
		t.Fatal("battle should open with the first intro")
	}

	env.runDialogue(t, s.Update, s.IntroDone)
	if st.PlayerMode != components.PlayerInBattle || st.Battle != components.BattleApproach {
		t.Errorf("after intro: player=%s battle=%s", st.PlayerMode, st.Battle)
	}

	env.press()
	s.Update(0.25)
	if env.audio.count(content.SoundBattleAppears) != 1 {
		t.Error("approach should play the battle-appears sound")
	}
}

// TestBattleSceneIntroByDeathCount 战前对话随死亡次数变化
func TestBattleSceneIntroByDeathCount(t *testing.T) {
	tests := []struct {
		name   string
		deaths int
	}{
		{"首次", 0},
		{"第二次", 1},
		{"多次", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.svc.State.DeathCount = tt.deaths
			s := NewBattleScene(env.svc)
			if s.intro != env.svc.Scripts.IntroFor(tt.deaths) {
				t.Errorf("intro = %s", s.intro.Name)
			}
		})
	}
}

// TestBattleSceneLeaveMidBattle 中途离开战斗走完整重置
func TestBattleSceneLeaveMidBattle(t *testing.T) {
	env := newTestEnv(t)
	st := env.svc.State
	s := NewBattleScene(env.svc)
	env.runDialogue(t, s.Update, s.IntroDone)

	st.Player.Health = 5
	s.OnLeave()
	if st.Player.Health != st.Player.MaxHealth || st.Battle != components.BattleApproach {
		t.Errorf("leaving should reset the encounter: hp=%d battle=%s", st.Player.Health, st.Battle)
	}
	if !env.audio.stopped(types.ChannelMusic) {
		t.Error("leaving should stop the battle music")
	}
}

// TestBattleSceneDefeat 生命归零进入死亡画面
func TestBattleSceneDefeat(t *testing.T) {
	env := newTestEnv(t)
	st := env.svc.State
	s := NewBattleScene(env.svc)
	env.runDialogue(t, s.Update, s.IntroDone)

	st.Player.Health = 0
	s.Update(0.016)
	if st.Mode != components.ModeDeath || st.DeathCount != 1 {
		t.Errorf("Mode = %s, DeathCount = %d", st.Mode, st.DeathCount)
	}

	stops := len(env.audio.stops)
	s.OnLeave()
	if len(env.audio.stops) != stops {
		t.Error("a finished battle should not be reset again")
	}
}

// TestDeathScene 碎裂灵魂停留后回到战斗
func TestDeathScene(t *testing.T) {
	env := newTestEnv(t)
	st := env.svc.State
	st.SetMode(components.ModeDeath)
	s := NewDeathScene(env.svc)

	s.Update(1.0)
	r := &fakeRenderer{}
	s.draw(r)
	if !r.drew(env.textures.Texture(content.ImageSoulBroken)) {
		t.Error("broken soul should be drawn")
	}

	s.Update(1.0)
	if st.Mode != components.ModeDeath {
		t.Error("death screen should last the full duration")
	}
	s.Update(0.1)
	if st.Mode != components.ModeBattle {
		t.Errorf("Mode = %s, want Battle", st.Mode)
	}
	if env.audio.count(content.SoundSoulShatter) != 1 {
		t.Error("shatter sound should play once")
	}
}

// TestEndingScene 结局对话结束后回到标题
func TestEndingScene(t *testing.T) {
	env := newTestEnv(t)
	st := env.svc.State
	st.SetMode(components.ModeEnding)
	st.DeathCount = 3
	s := NewEndingScene(env.svc)

	if s.fade.Alpha != 1 {
		t.Errorf("ending should start black, alpha = %v", s.fade.Alpha)
	}
	env.runDialogue(t, s.Update, func() bool { return st.Mode == components.ModeTitle })
	if st.DeathCount != 0 {
		t.Errorf("DeathCount = %d, want 0", st.DeathCount)
	}
	if !s.fade.Done {
		t.Error("fade should have finished")
	}
}

// TestFactory 测试场景工厂
func TestFactory(t *testing.T) {
	env := newTestEnv(t)
	factory := NewFactory(env.svc)

	tests := []struct {
		mode components.GameMode
		ok   func(Scene) bool
	}{
		{components.ModeTitle, func(s Scene) bool { _, ok := s.(*TitleScene); return ok }},
		{components.ModeCutscene, func(s Scene) bool { _, ok := s.(*CutsceneScene); return ok }},
		{components.ModeBattle, func(s Scene) bool { _, ok := s.(*BattleScene); return ok }},
		{components.ModeDeath, func(s Scene) bool { _, ok := s.(*DeathScene); return ok }},
		{components.ModeEnding, func(s Scene) bool { _, ok := s.(*EndingScene); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if !tt.ok(factory(tt.mode)) {
				t.Errorf("factory(%s) returned the wrong scene", tt.mode)
			}
		})
	}
	if factory(components.ModeOpenWorld) != nil {
		t.Error("open world has no scene")
	}
}

// TestBuildBattleAssets 测试战斗资源组装
func TestBuildBattleAssets(t *testing.T) {
	src := newFakeTextures()
	a := BuildBattleAssets(src)

	if a.Soul[0] != src.Texture(content.ImageSoul) || a.Soul[1] != nil {
		t.Error("soul blink frames should be {soul, nil}")
	}
	if a.Buttons[components.ButtonItem][1] != src.Texture(content.ImageButtonItemSelect) {
		t.Error("item button selected frame mismatch")
	}
	if a.Numbers[3] != src.Texture(content.DamageNumbers[3]) {
		t.Error("perfect damage number mismatch")
	}
	if len(a.Slash) != 6 || len(a.Patterns.Pairs) != 3 || len(a.Patterns.Keywords) != 6 {
		t.Errorf("slash=%d pairs=%d keywords=%d", len(a.Slash), len(a.Patterns.Pairs), len(a.Patterns.Keywords))
	}
	if a.Patterns.Mother[1] != src.Texture(content.ImageMother2) {
		t.Error("mother firing frame mismatch")
	}
	if a.Music != content.MusicBattle || a.Patterns.HitSound != content.SoundHit {
		t.Error("sound ids mismatch")
	}
}
