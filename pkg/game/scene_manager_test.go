package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	nowMs        float64
}

// Update records that Update was called and stores the timestamp.
func (m *MockScene) Update(nowMs float64) {
	m.updateCalled = true
	m.nowMs = nowMs
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// enteringScene 实现 Enterer 的测试场景
type enteringScene struct {
	MockScene
	enteredAt []float64
}

func (e *enteringScene) OnEnter(nowMs float64) {
	e.enteredAt = append(e.enteredAt, nowMs)
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(1234.5)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.nowMs != 1234.5 {
		t.Errorf("Expected nowMs 1234.5, got %.1f", mockScene.nowMs)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(16)
	sm.Draw(ebiten.NewImage(80, 60))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(80, 60))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &enteringScene{}

	sm.SwitchTo(scene1)
	sm.Update(100)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}

	// 切换时以最近一次 Update 的时间戳调用 OnEnter
	sm.SwitchTo(scene2)
	if len(scene2.enteredAt) != 1 || scene2.enteredAt[0] != 100 {
		t.Errorf("OnEnter calls = %v, want [100]", scene2.enteredAt)
	}

	sm.Update(116)
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
	if sm.GetCurrentScene() != scene2 {
		t.Error("GetCurrentScene() did not return scene2")
	}
}
