package components

import (
	"testing"

	"github.com/decker502/ctale/pkg/types"
)

// TestSpeakerTables 测试说话者头像与打字音类别
func TestSpeakerTables(t *testing.T) {
	tests := []struct {
		speaker  Speaker
		portrait bool
		voice    VoiceCategory
	}{
		{SpeakerHero, true, VoiceHero},
		{SpeakerHeroAngry, true, VoiceHero},
		{SpeakerHeroSad, true, VoiceHero},
		{SpeakerBoss, true, VoiceBoss},
		{SpeakerNone, false, VoiceNarrator},
		{SpeakerBubble, false, VoiceBattle},
		{Speaker(42), false, VoiceSilent},
	}

	for _, tt := range tests {
		t.Run(tt.speaker.String(), func(t *testing.T) {
			if got := tt.speaker.HasPortrait(); got != tt.portrait {
				t.Errorf("HasPortrait = %v, want %v", got, tt.portrait)
			}
			if got := tt.speaker.Voice(); got != tt.voice {
				t.Errorf("Voice = %v, want %v", got, tt.voice)
			}
		})
	}
}

// TestCurrentLine 测试当前字符串越界
func TestCurrentLine(t *testing.T) {
	d := NewDialogue("test", types.TextStyle{}, DialogueStandard,
		DialogueLine{Text: "a", Speaker: SpeakerHero},
		DialogueLine{Text: "b", Speaker: SpeakerBoss},
	)
	if d.State != DialogueIdle || d.LastStr != -1 {
		t.Errorf("new dialogue state=%s last=%d", d.State, d.LastStr)
	}

	d.CurStr = 1
	if line, ok := d.CurrentLine(); !ok || line.Text != "b" {
		t.Errorf("CurrentLine = %+v, %v", line, ok)
	}
	d.CurStr = 2
	if _, ok := d.CurrentLine(); ok {
		t.Error("past the last line should report false")
	}
}
