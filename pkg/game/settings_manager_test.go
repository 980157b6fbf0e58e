package game

import (
	"testing"

	"github.com/decker502/ctale/pkg/types"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.MusicVolume != 0.7 || s.SoundVolume != 0.8 || s.VoiceVolume != 0.6 {
		t.Errorf("volumes = %v/%v/%v", s.MusicVolume, s.SoundVolume, s.VoiceVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.Fullscreen || s.WindowScale != 1 {
		t.Errorf("display = fullscreen %v scale %d", s.Fullscreen, s.WindowScale)
	}
}

// TestVolumeForChannel 测试声道到音量的映射
func TestVolumeForChannel(t *testing.T) {
	s := &GameSettings{MusicVolume: 0.1, SoundVolume: 0.2, VoiceVolume: 0.3}

	tests := []struct {
		name    string
		channel int
		want    float64
	}{
		{"音乐", types.ChannelMusic, 0.1},
		{"音效", types.ChannelSFX, 0.2},
		{"任意声道", types.ChannelAny, 0.2},
		{"打字音", types.ChannelDialogue, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.volumeFor(tt.channel); got != tt.want {
				t.Errorf("volumeFor(%d) = %v, want %v", tt.channel, got, tt.want)
			}
		})
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级模式
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("degraded MusicVolume = %v", sm.GetSettings().MusicVolume)
	}

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Error("Load() in degraded mode should restore defaults")
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "ctale_settings_test")

	sm1, _ := NewSettingsManager(m)
	sm1.SetMusicVolume(0.5)
	sm1.SetSoundVolume(0.25)
	sm1.SetVoiceVolume(0.75)
	sm1.ToggleMusic()
	sm1.SetFullscreen(true)
	sm1.SetWindowScale(2)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, _ := NewSettingsManager(m)
	s := sm2.GetSettings()
	if s.MusicVolume != 0.5 || s.SoundVolume != 0.25 || s.VoiceVolume != 0.75 {
		t.Errorf("volumes = %v/%v/%v", s.MusicVolume, s.SoundVolume, s.VoiceVolume)
	}
	if s.MusicEnabled || !s.SoundEnabled {
		t.Errorf("enabled music=%v sound=%v", s.MusicEnabled, s.SoundEnabled)
	}
	if !s.Fullscreen || s.WindowScale != 2 {
		t.Errorf("display fullscreen=%v scale=%d", s.Fullscreen, s.WindowScale)
	}
}

// TestLoadNormalizesStoredValues 手工编辑的越界值在加载时被修正，缺失字段保留默认值
func TestLoadNormalizesStoredValues(t *testing.T) {
	m := openTestGdata(t, "ctale_settings_normalize_test")
	data := []byte("musicVolume: 3\nsoundVolume: -1\nwindowScale: 9\n")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm, _ := NewSettingsManager(m)
	s := sm.GetSettings()
	if s.MusicVolume != 1 || s.SoundVolume != 0 {
		t.Errorf("volumes not clamped: %v/%v", s.MusicVolume, s.SoundVolume)
	}
	if s.WindowScale != maxWindowScale {
		t.Errorf("WindowScale = %d, want %d", s.WindowScale, maxWindowScale)
	}
	if s.VoiceVolume != 0.6 || !s.MusicEnabled {
		t.Error("missing fields should keep defaults")
	}
}

// TestLoadCorruptSettings 损坏的存档回退到默认值并返回错误
func TestLoadCorruptSettings(t *testing.T) {
	m := openTestGdata(t, "ctale_settings_corrupt_test")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := &SettingsManager{gdataManager: m, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("corrupt settings should return an error")
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Error("corrupt settings should fall back to defaults")
	}
}

// TestToggles 测试开关
func TestToggles(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	if sm.ToggleSound() {
		t.Error("first toggle should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("second toggle should enable sound")
	}
}

// TestClampVolume 测试 clampVolume 辅助函数
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-1.0, 0.0},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		if result := clampVolume(tt.input); result != tt.expected {
			t.Errorf("clampVolume(%v): got %v, want %v", tt.input, result, tt.expected)
		}
	}
}
