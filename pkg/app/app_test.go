package app

import (
	"testing"
	"time"
)

// TestFrameDelta 测试帧间隔的计算与截断
func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want float64
	}{
		{"第一帧", time.Time{}, base, 1.0 / 60.0},
		{"正常帧", base, base.Add(20 * time.Millisecond), 0.02},
		{"卡顿截断", base, base.Add(3 * time.Second), maxFrameDelta},
		{"时钟回拨", base, base.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now); got != tt.want {
				t.Errorf("frameDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestWindowSize 测试窗口缩放
func TestWindowSize(t *testing.T) {
	tests := []struct {
		scale int
		w, h  int
	}{
		{1, 640, 480},
		{2, 1280, 960},
		{0, 640, 480},
	}
	for _, tt := range tests {
		if w, h := WindowSize(tt.scale); w != tt.w || h != tt.h {
			t.Errorf("WindowSize(%d) = %dx%d, want %dx%d", tt.scale, w, h, tt.w, tt.h)
		}
	}
}

// TestDebugJumps 调试跳转键不包含没有场景的开放世界模式
func TestDebugJumps(t *testing.T) {
	if len(debugJumps) != 4 {
		t.Fatalf("debugJumps = %d entries, want 4", len(debugJumps))
	}
	for key, mode := range debugJumps {
		if mode.String() == "OpenWorld" {
			t.Errorf("key %v jumps to OpenWorld", key)
		}
	}
}
