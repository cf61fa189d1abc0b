package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/utils"
)

// PlayScene 游戏进行中的场景
//
// 每帧先把指针事件转发给 Session，再调用 Session.Frame 推进调度器和模拟。
// 模拟结束后切换到 GameOverScene。
type PlayScene struct {
	env          *Env
	sceneManager *game.SceneManager

	session *game.Session
	events  []utils.PointerEvent

	over       bool
	finalScore int
}

// NewPlayScene 创建游戏场景
// 新的一局在 OnEnter 时创建，开始时间取切换场景的时刻
func NewPlayScene(env *Env, sm *game.SceneManager) *PlayScene {
	return &PlayScene{env: env, sceneManager: sm}
}

// OnEnter 开始新的一局
func (p *PlayScene) OnEnter(nowMs float64) {
	// 开始这一局的点击此时仍按住，不能算作画布上的按下
	p.env.Pointer.Reset(utils.SamplePointer().Pressed)
	p.session = game.NewSession(game.SessionConfig{
		Geometry:      p.env.Canvas,
		Sprites:       p.env.Catalog,
		Rand:          p.env.NextRand(),
		StartMs:       nowMs,
		HUDIntervalMs: p.env.Config.HUD.DisplayIntervalMs,
		OnGameOver: func(finalScore int) {
			p.over = true
			p.finalScore = finalScore
			if p.env.OnGameOver != nil {
				p.env.OnGameOver(finalScore, p.session.FPS())
			}
		},
	})
}

// Session 返回当前这一局（OnEnter 之前为 nil）
func (p *PlayScene) Session() *game.Session {
	return p.session
}

// Update 处理输入并推进一帧
func (p *PlayScene) Update(nowMs float64) {
	if p.session == nil {
		p.OnEnter(nowMs)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings := p.env.Settings
		settings.SetShowFPS(!settings.GetSettings().ShowFPS)
		if err := settings.Save(); err != nil {
			log.Printf("[PlayScene] Warning: failed to save settings: %v", err)
		}
	}

	// 指针状态在 nowMs 采样，先让到期的手势定时器生效
	p.session.AdvanceTimers(nowMs)
	p.env.Pointer.SetBounds(p.env.Canvas.Rect())
	p.events = p.env.Pointer.Update(utils.SamplePointer(), p.events[:0])
	for _, e := range p.events {
		p.dispatch(e)
	}

	p.session.Frame(nowMs)

	if p.over {
		p.sceneManager.SwitchTo(NewGameOverScene(p.env, p.sceneManager, p.session, p.finalScore))
	}
}

// dispatch 把指针事件转发给 Session
func (p *PlayScene) dispatch(e utils.PointerEvent) {
	x, y := float64(e.X), float64(e.Y)
	switch e.Phase {
	case utils.PointerDown:
		p.session.PointerDown(x, y)
	case utils.PointerMove:
		p.session.PointerMove(x, y)
	case utils.PointerUp:
		p.session.PointerUp(x, y)
	case utils.PointerLeave:
		p.session.PointerLeave()
	}
}

// Draw 绘制画布和 HUD
func (p *PlayScene) Draw(screen *ebiten.Image) {
	if p.session == nil {
		drawCanvas(screen, p.env, nil)
		return
	}
	drawCanvas(screen, p.env, p.session.Balls())

	rect := p.env.Canvas.Rect()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Balls: %d", p.session.Score()), rect.Min.X+8, rect.Min.Y+8)
	if p.env.Settings.GetSettings().ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %d", p.session.DisplayedFPS()), rect.Min.X+8, rect.Min.Y+24)
	}
}
