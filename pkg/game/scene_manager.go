package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	lastNowMs    float64 // 最近一次 Update 的时间戳，传给新场景的 OnEnter
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 如果新场景实现了 Enterer，立即以最近一次的时间戳调用 OnEnter
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] 切换场景: %T", scene)
	sm.currentScene = scene
	if e, ok := scene.(Enterer); ok {
		e.OnEnter(sm.lastNowMs)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(nowMs float64) {
	sm.lastNowMs = nowMs
	if sm.currentScene != nil {
		sm.currentScene.Update(nowMs)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
