package game

import (
	"testing"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用的假场景，可在 Update 中切换模式
type MockScene struct {
	mode         components.GameMode
	updateCalled bool
	drawCalled   bool
	left         bool
	deltaTime    float64
	onUpdate     func()
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnLeave() {
	m.left = true
}

// mockFactory 记录创建过的场景
type mockFactory struct {
	created []*MockScene
}

func (f *mockFactory) create(mode components.GameMode) Scene {
	s := &MockScene{mode: mode}
	f.created = append(f.created, s)
	return s
}

func (f *mockFactory) last() *MockScene {
	return f.created[len(f.created)-1]
}

// TestNewSceneManager 创建时切换到当前模式的场景
func TestNewSceneManager(t *testing.T) {
	state := NewEncounterState(config.DefaultBattleConfig())
	f := &mockFactory{}
	sm := NewSceneManager(state, f.create)

	if len(f.created) != 1 || f.last().mode != components.ModeTitle {
		t.Fatalf("expected a title scene, created %d", len(f.created))
	}
	if sm.GetCurrentScene() != f.last() || sm.CurrentMode() != components.ModeTitle {
		t.Error("current scene not set")
	}
}

// TestSceneManagerUpdateDraw 更新与绘制转发给当前场景
func TestSceneManagerUpdateDraw(t *testing.T) {
	state := NewEncounterState(config.DefaultBattleConfig())
	f := &mockFactory{}
	sm := NewSceneManager(state, f.create)

	sm.Update(0.016)
	sm.Draw(nil)

	s := f.last()
	if !s.updateCalled || s.deltaTime != 0.016 {
		t.Errorf("update not forwarded: %+v", s)
	}
	if !s.drawCalled {
		t.Error("draw not forwarded")
	}
}

// TestSceneManagerFollowsMode 场景修改 Mode 后在帧末切换，旧场景收到 OnLeave
func TestSceneManagerFollowsMode(t *testing.T) {
	state := NewEncounterState(config.DefaultBattleConfig())
	f := &mockFactory{}
	sm := NewSceneManager(state, f.create)

	title := f.last()
	title.onUpdate = func() { state.SetMode(components.ModeBattle) }
	sm.Update(0.1)

	if !title.left {
		t.Error("old scene should be notified")
	}
	if sm.CurrentMode() != components.ModeBattle || f.last().mode != components.ModeBattle {
		t.Errorf("mode = %s", sm.CurrentMode())
	}
	if f.last().updateCalled {
		t.Error("new scene should not update in the frame it was created")
	}
}

// TestSceneManagerNoScene 工厂返回 nil 时不崩溃
func TestSceneManagerNoScene(t *testing.T) {
	state := NewEncounterState(config.DefaultBattleConfig())
	sm := NewSceneManager(state, func(components.GameMode) Scene { return nil })

	sm.Update(0.1)
	sm.Draw(nil)
	if sm.GetCurrentScene() != nil {
		t.Error("expected no scene")
	}
}
