// Package scenes 顶层游戏模式对应的场景：标题、过场、战斗、死亡、结局
//
// 场景只通过 EncounterState.SetMode 请求切换，由 game.SceneManager 在帧末完成。
package scenes

import (
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// TextureSource 按资源ID取纹理（*game.ResourceManager 实现）
type TextureSource interface {
	Texture(id string) types.Texture
}

// Services 所有场景共享的服务
// 由 App 创建一次，场景按引用持有
type Services struct {
	State    *game.EncounterState
	Textures TextureSource
	Audio    types.Audio
	Glyphs   types.GlyphFactory
	// Renderer 为 nil 时 Draw 不做任何事（无头测试）
	Renderer *game.EbitenRenderer
	Input    *utils.InputTracker

	Dialogue *systems.DialogueSystem
	Scripts  *content.BattleScripts
	Battle   *systems.BattleSystem
}

// confirmed 确认键是否在本帧按下
func (s *Services) confirmed() bool {
	return s.Input != nil && s.Input.JustPressed(types.KeyConfirm)
}

// cancelled 取消键是否在本帧按下
func (s *Services) cancelled() bool {
	return s.Input != nil && s.Input.JustPressed(types.KeyCancel)
}

func (s *Services) play(id types.SoundID, channel, loops int) {
	if s.Audio != nil && id != "" {
		s.Audio.Play(id, channel, loops)
	}
}

func (s *Services) stop(channel int) {
	if s.Audio != nil {
		s.Audio.Stop(channel)
	}
}

// drawer 场景内部的绘制入口，与具体画布无关
type drawer interface {
	draw(r types.Renderer)
}

// drawTo 绑定画布并绘制场景
func drawTo(svc *Services, screen *ebiten.Image, d drawer) {
	if svc.Renderer == nil {
		return
	}
	svc.Renderer.Begin(screen)
	d.draw(svc.Renderer)
}
