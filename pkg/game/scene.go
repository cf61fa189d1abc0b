package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (start screen, gameplay, game over).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene to the given monotonic timestamp in milliseconds.
	// It is called once per display frame.
	Update(nowMs float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterer 是一个可选接口，场景被切换为活动场景时调用 OnEnter
//
// 用于在进入场景时重置计时（如开始新一局时记录开始时间）
type Enterer interface {
	OnEnter(nowMs float64)
}
