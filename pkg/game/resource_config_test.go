package game

import (
	"strings"
	"testing"
)

// TestResourceConfigValidate 测试资源清单校验
func TestResourceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ResourceConfig
		wantErr string
	}{
		{
			name: "合法",
			cfg: ResourceConfig{Groups: map[string]ResourceGroup{
				"a": {Images: []ImageResource{{ID: "IMAGE_A", Path: "a.png"}}},
				"b": {Sounds: []SoundResource{{ID: "SOUND_B", Path: "b.wav"}}},
			}},
		},
		{
			name: "跨组重复ID",
			cfg: ResourceConfig{Groups: map[string]ResourceGroup{
				"a": {Images: []ImageResource{{ID: "X", Path: "a.png"}}},
				"b": {Fonts: []FontResource{{ID: "X", Path: "b.ttf"}}},
			}},
			wantErr: "declared in both",
		},
		{
			name: "空路径",
			cfg: ResourceConfig{Groups: map[string]ResourceGroup{
				"a": {Sounds: []SoundResource{{ID: "SOUND_A"}}},
			}},
			wantErr: "empty path",
		},
		{
			name: "空ID",
			cfg: ResourceConfig{Groups: map[string]ResourceGroup{
				"a": {Images: []ImageResource{{Path: "a.png"}}},
			}},
			wantErr: "empty id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestBuildFullPath 测试路径拼接
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"assets", "images/soul.png", "assets/images/soul.png"},
		{"assets", "/images/soul.png", "assets/images/soul.png"},
		{"", "images/soul.png", "images/soul.png"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}
