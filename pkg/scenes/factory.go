package scenes

import (
	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/game"
)

// NewFactory 返回按模式创建场景的工厂
// 大地图不在本模块范围内，ModeOpenWorld 没有对应的场景
func NewFactory(svc *Services) game.SceneFactory {
	return func(mode components.GameMode) game.Scene {
		switch mode {
		case components.ModeTitle:
			return NewTitleScene(svc)
		case components.ModeCutscene:
			return NewCutsceneScene(svc)
		case components.ModeBattle:
			return NewBattleScene(svc)
		case components.ModeDeath:
			return NewDeathScene(svc)
		case components.ModeEnding:
			return NewEndingScene(svc)
		default:
			return nil
		}
	}
}
