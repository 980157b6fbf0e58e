package game

import (
	"log"

	"github.com/decker502/ctale/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按游戏模式创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(mode components.GameMode) Scene

// SceneManager 让活动场景跟随 EncounterState.Mode
//
// 场景只修改会话状态中的 Mode（SetMode），由管理器在帧末完成切换，
// 因此任意时刻只有一个场景的 Update 与 Draw 被调用。
type SceneManager struct {
	state        *EncounterState
	factory      SceneFactory
	currentScene Scene
	currentMode  components.GameMode
}

// NewSceneManager 创建场景管理器，并切换到 state.Mode 对应的场景
func NewSceneManager(state *EncounterState, factory SceneFactory) *SceneManager {
	sm := &SceneManager{state: state, factory: factory}
	sm.SwitchTo(state.Mode)
	return sm
}

// SwitchTo 立即切换到指定模式的新场景
func (sm *SceneManager) SwitchTo(mode components.GameMode) {
	if leaver, ok := sm.currentScene.(Leaver); ok {
		leaver.OnLeave()
	}

	sm.state.SetMode(mode)
	sm.currentMode = mode
	sm.currentScene = nil
	if sm.factory != nil {
		sm.currentScene = sm.factory(mode)
	}
	if sm.currentScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", mode)
		return
	}
	log.Printf("[SceneManager] 切换到场景: %s", mode)
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentMode 返回当前场景对应的模式
func (sm *SceneManager) CurrentMode() components.GameMode {
	return sm.currentMode
}

// Update 更新当前场景，场景改变了 Mode 时在帧末切换
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	if sm.state.Mode != sm.currentMode {
		sm.SwitchTo(sm.state.Mode)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
