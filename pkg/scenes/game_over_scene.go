package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/utils"
)

// GameOverScene 结束界面
//
// 画布保持结束时的画面，叠加遮罩和最终分数。
// 点击或按 R 回到开始界面。
type GameOverScene struct {
	env          *Env
	sceneManager *game.SceneManager
	session      *game.Session
	finalScore   int
}

// NewGameOverScene 创建结束界面
//
// 参数:
//   - env: 共享运行环境
//   - sm: 场景管理器
//   - session: 已结束的一局，用于绘制最后的画面
//   - finalScore: 最终球数
func NewGameOverScene(env *Env, sm *game.SceneManager, session *game.Session, finalScore int) *GameOverScene {
	return &GameOverScene{
		env:          env,
		sceneManager: sm,
		session:      session,
		finalScore:   finalScore,
	}
}

// FinalScore 返回最终分数
func (g *GameOverScene) FinalScore() int {
	return g.finalScore
}

// Update 检测重新开始
func (g *GameOverScene) Update(nowMs float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sceneManager.SwitchTo(NewStartScene(g.env, g.sceneManager))
	}
}

// Draw 绘制最终画面和分数
func (g *GameOverScene) Draw(screen *ebiten.Image) {
	drawCanvas(screen, g.env, g.session.Balls())

	rect := g.env.Canvas.Rect()
	drawOverlay(screen, rect)

	cx := rect.Min.X + rect.Dx()/2
	cy := rect.Min.Y + rect.Dy()/2
	drawCenteredText(screen, "Game Over", cx, cy-24)
	drawCenteredText(screen, fmt.Sprintf("Final Score: %d balls", g.finalScore), cx, cy)
	drawCenteredText(screen, "Click to restart", cx, cy+32)
}
