package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/utils"
)

// StartScene 开始界面
// 点击、触摸或按回车开始新的一局
type StartScene struct {
	env          *Env
	sceneManager *game.SceneManager
}

// NewStartScene 创建开始界面
func NewStartScene(env *Env, sm *game.SceneManager) *StartScene {
	return &StartScene{env: env, sceneManager: sm}
}

// Update 检测开始操作
func (s *StartScene) Update(nowMs float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sceneManager.SwitchTo(NewPlayScene(s.env, s.sceneManager))
	}
}

// Draw 绘制标题和操作说明
func (s *StartScene) Draw(screen *ebiten.Image) {
	drawCanvas(screen, s.env, nil)

	rect := s.env.Canvas.Rect()
	cx := rect.Min.X + rect.Dx()/2
	cy := rect.Min.Y + rect.Dy()/2

	drawCenteredText(screen, s.env.Config.Window.Title, cx, cy-48)
	drawCenteredText(screen, "Click or hold to spawn balls.", cx, cy-16)
	drawCenteredText(screen, "The game ends when the frame rate collapses.", cx, cy)
	drawCenteredText(screen, "Click to start", cx, cy+32)
	if !utils.IsMobile() {
		drawCenteredText(screen, "F11: fullscreen  F3: show FPS", cx, cy+64)
	}
}
