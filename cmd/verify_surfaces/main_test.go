package main

import (
	"testing"

	"github.com/decker502/ctale/internal/headless"
)

// TestWalkRoute 路线经过全部地面，脚步声只在地面变化时重新播放
func TestWalkRoute(t *testing.T) {
	tests := []struct {
		name   string
		speed  int
		ox, oy int
	}{
		{"原点", 4, 0, 0},
		{"地图偏移", 4, 37, -12},
		{"慢速", 1, 0, 0},
		{"快速", 9, -80, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := walk(headless.NewAudio(false), tt.speed, tt.ox, tt.oy, false)
			if missed := r.missed(); len(missed) > 0 {
				t.Errorf("missed surfaces %v", missed)
			}
			if r.plays != r.changes {
				t.Errorf("plays = %d, changes = %d", r.plays, r.changes)
			}
			if r.playing {
				t.Error("footstep should stop after the walk")
			}
		})
	}
}

// TestStepToward 每步不超过速度且不越过终点
func TestStepToward(t *testing.T) {
	tests := []struct {
		from, to, speed, want int
	}{
		{0, 10, 4, 4},
		{0, -10, 4, -4},
		{8, 10, 4, 2},
		{10, 10, 4, 0},
	}
	for _, tt := range tests {
		if got := stepToward(tt.from, tt.to, tt.speed); got != tt.want {
			t.Errorf("stepToward(%d, %d, %d) = %d, want %d", tt.from, tt.to, tt.speed, got, tt.want)
		}
	}
}
