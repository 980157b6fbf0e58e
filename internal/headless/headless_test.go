package headless

import (
	"testing"

	"github.com/decker502/ctale/pkg/types"
)

// TestAudioChannels 测试声道占用与结束
func TestAudioChannels(t *testing.T) {
	a := NewAudio(false)
	a.Play("A", types.ChannelMusic, -1)
	a.Play("B", types.ChannelAny, 0)

	if !a.IsPlaying(types.ChannelMusic) {
		t.Error("music channel should be playing")
	}
	if a.IsPlaying(types.ChannelAny) {
		t.Error("ChannelAny should not be tracked")
	}

	a.Finish(types.ChannelMusic)
	if a.IsPlaying(types.ChannelMusic) {
		t.Error("Finish should release the channel")
	}

	a.Play("C", types.ChannelSFX, 0)
	a.Stop(types.ChannelAny)
	if a.IsPlaying(types.ChannelSFX) {
		t.Error("Stop(ChannelAny) should stop every channel")
	}
	if a.Count("A") != 1 || len(a.Plays) != 3 {
		t.Errorf("plays = %v", a.Plays)
	}
}

// TestGlyphsLive 测试字形计数
func TestGlyphsLive(t *testing.T) {
	g := NewGlyphs(10, 20)
	tex := g.NewGlyph("á", types.TextStyle{})
	if w, h := types.TextureSize(tex); w != 10 || h != 20 {
		t.Errorf("glyph size = %dx%d, want 10x20", w, h)
	}
	if w, _ := g.MeasureText("abc", types.TextStyle{}); w != 30 {
		t.Errorf("MeasureText width = %d, want 30", w)
	}
	g.Release(tex)
	if g.Live() != 0 {
		t.Errorf("Live = %d, want 0", g.Live())
	}
}

// TestTexturesCached 同一ID返回同一纹理
func TestTexturesCached(t *testing.T) {
	src := NewTextures(16)
	if src.Texture("A") != src.Texture("A") {
		t.Error("same id should return the same texture")
	}
	if src.Texture("A") == src.Texture("B") {
		t.Error("different ids should return different textures")
	}
}

// TestKeys 测试输入快照构造
func TestKeys(t *testing.T) {
	s := Keys(types.KeyConfirm, types.KeyLeft, types.KeyCount)
	if !s.Down(types.KeyConfirm) || !s.Down(types.KeyLeft) {
		t.Error("pressed keys should be down")
	}
	if s.Down(types.KeyRight) {
		t.Error("KeyRight should be up")
	}
}
