// Package ui 提供游戏内的设置面板
package ui

import (
	"fmt"
	"math"

	"github.com/decker502/ctale/pkg/game"
)

// volumeStep 音量按钮每次点击的增量
const volumeStep = 0.1

// menuOption 设置面板中的一行
type menuOption struct {
	label func(s *game.GameSettings) string
	apply func(sm *game.SettingsManager)
}

// settingsMenu 面板的纯逻辑部分：选项、光标与标签
// 不依赖任何控件，键盘导航与鼠标点击都落到 choose
type settingsMenu struct {
	settings *game.SettingsManager
	options  []menuOption
	cursor   int
}

func newSettingsMenu(sm *game.SettingsManager) *settingsMenu {
	return &settingsMenu{settings: sm, options: defaultOptions()}
}

func defaultOptions() []menuOption {
	return []menuOption{
		{
			label: func(s *game.GameSettings) string { return "Music: " + onOff(s.MusicEnabled) },
			apply: func(sm *game.SettingsManager) { sm.ToggleMusic() },
		},
		{
			label: func(s *game.GameSettings) string { return "Music Volume: " + percent(s.MusicVolume) },
			apply: func(sm *game.SettingsManager) { sm.SetMusicVolume(nextVolume(sm.GetSettings().MusicVolume)) },
		},
		{
			label: func(s *game.GameSettings) string { return "Sound: " + onOff(s.SoundEnabled) },
			apply: func(sm *game.SettingsManager) { sm.ToggleSound() },
		},
		{
			label: func(s *game.GameSettings) string { return "Sound Volume: " + percent(s.SoundVolume) },
			apply: func(sm *game.SettingsManager) { sm.SetSoundVolume(nextVolume(sm.GetSettings().SoundVolume)) },
		},
		{
			label: func(s *game.GameSettings) string { return "Voice Volume: " + percent(s.VoiceVolume) },
			apply: func(sm *game.SettingsManager) { sm.SetVoiceVolume(nextVolume(sm.GetSettings().VoiceVolume)) },
		},
		{
			label: func(s *game.GameSettings) string { return "Fullscreen: " + onOff(s.Fullscreen) },
			apply: func(sm *game.SettingsManager) { sm.SetFullscreen(!sm.GetSettings().Fullscreen) },
		},
		{
			label: func(s *game.GameSettings) string { return fmt.Sprintf("Window: x%d", s.WindowScale) },
			apply: func(sm *game.SettingsManager) { sm.SetWindowScale(nextScale(sm.GetSettings().WindowScale)) },
		},
	}
}

// Len 选项数量
func (m *settingsMenu) Len() int {
	return len(m.options)
}

// Label 返回第 i 行的显示文字，光标所在行带 "> " 前缀
func (m *settingsMenu) Label(i int) string {
	l := m.options[i].label(m.settings.GetSettings())
	if i == m.cursor {
		return "> " + l
	}
	return "  " + l
}

// Move 上下移动光标，越界时回绕
func (m *settingsMenu) Move(delta int) {
	n := len(m.options)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Choose 应用第 i 行，并把光标移到该行
func (m *settingsMenu) Choose(i int) {
	if i < 0 || i >= len(m.options) {
		return
	}
	m.cursor = i
	m.options[i].apply(m.settings)
}

// nextVolume 音量循环递增，超过 100% 后回到 0
func nextVolume(v float64) float64 {
	next := math.Round((v+volumeStep)*10) / 10
	if next > 1.0 {
		return 0
	}
	return next
}

// nextScale 窗口缩放在 1 ~ 3 之间循环
func nextScale(scale int) int {
	if scale >= 3 {
		return 1
	}
	return scale + 1
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}
