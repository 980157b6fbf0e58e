package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one top-level game mode (title, cutscene, battle, death, ending).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Leaver 可选接口：场景被切走时释放资源（停止音乐、释放字形）
type Leaver interface {
	OnLeave()
}
