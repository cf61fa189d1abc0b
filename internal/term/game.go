// Package term 终端前端
//
// 在 tcell 屏幕上运行同一个游戏核心：按住鼠标左键即按住手势，
// 球以配置中的字符绘制，第一行显示球数和 FPS。
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/ballstorm/pkg/config"
	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/sim"
	"github.com/decker502/ballstorm/pkg/timeline"
)

// phase 终端前端的界面阶段
type phase int

const (
	phaseStart phase = iota
	phasePlaying
	phaseOver
)

// Options 终端游戏的依赖
type Options struct {
	Config   *config.GameConfig
	Catalog  *config.SpriteCatalog
	Settings *game.SettingsManager
	Clock    timeline.Clock

	// Cues 提示音，可为 nil
	Cues Cues
	// Seed 基础随机种子，第 n 局使用 Seed+n
	Seed uint64
	// OnGameOver 每局结束时调用，可为 nil
	OnGameOver func(finalScore, fps int)
}

// Game 终端游戏
// 所有方法必须在同一个 goroutine 上调用
type Game struct {
	screen tcell.Screen
	opts   Options
	cells  *CellGeometry
	styles []tcell.Style
	glyphs []rune

	phase   phase
	session *game.Session
	round   uint64

	// 鼠标状态
	rawDown   bool // 上一个事件中左键是否按下
	mouseDown bool // 是否有一次在画布内开始的按下
	lastCol   int
	lastRow   int

	lastScore  int
	finalScore int
}

// New 创建终端游戏
// screen 必须已经 Init
func New(screen tcell.Screen, opts Options) *Game {
	g := &Game{
		screen: screen,
		opts:   opts,
		cells:  NewCellGeometry(opts.Config.Terminal.CellWidth, opts.Config.Terminal.CellHeight),
		styles: make([]tcell.Style, opts.Catalog.Len()),
		glyphs: make([]rune, opts.Catalog.Len()),
	}
	for i := range g.styles {
		c := opts.Catalog.Color(i)
		g.styles[i] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		g.glyphs[i] = opts.Catalog.Glyph(i)
	}
	g.cells.SetScreenSize(screen.Size())
	return g
}

// Session 返回当前这一局（开始界面时为 nil）
func (g *Game) Session() *game.Session {
	return g.session
}

// Geometry 返回终端画布几何
func (g *Game) Geometry() *CellGeometry {
	return g.cells
}

// start 开始新的一局
func (g *Game) start() {
	seed := g.opts.Seed + g.round
	g.round++
	log.Printf("[Term] Round %d starts with seed %d", g.round, seed)

	g.session = game.NewSession(game.SessionConfig{
		Geometry:      g.cells,
		Sprites:       g.opts.Catalog,
		Rand:          sim.NewRand(seed),
		StartMs:       g.opts.Clock.NowMs(),
		HUDIntervalMs: g.opts.Config.HUD.DisplayIntervalMs,
		OnGameOver:    g.handleGameOver,
	})
	g.phase = phasePlaying
	g.mouseDown = false
	g.lastScore = 0
}

func (g *Game) handleGameOver(finalScore int) {
	g.phase = phaseOver
	g.finalScore = finalScore
	g.mouseDown = false
	if g.opts.Cues != nil {
		g.opts.Cues.GameOver()
	}
	if g.opts.OnGameOver != nil {
		g.opts.OnGameOver(finalScore, g.session.FPS())
	}
}

// HandleEvent 处理一个 tcell 事件
//
// 返回:
//   - bool: false 表示玩家要求退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		g.handleMouse(ev.Buttons()&tcell.Button1 != 0, col, row)
	case *tcell.EventResize:
		g.cells.SetScreenSize(g.screen.Size())
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		if ev.Key() == tcell.KeyEnter && g.phase != phasePlaying {
			g.start()
		}
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'r':
		if g.phase == phaseOver {
			g.start()
		}
	case 's':
		settings := g.opts.Settings
		settings.SetSoundEnabled(!settings.GetSettings().SoundEnabled)
		g.saveSettings()
	case '+', '=':
		g.changeVolume(volumeStep)
	case '-', '_':
		g.changeVolume(-volumeStep)
	}
	return true
}

// volumeStep 每次按键调整的音量
const volumeStep = 0.1

// changeVolume 调整音量并保存，结果限制在 [0, 1]
func (g *Game) changeVolume(delta float64) {
	settings := g.opts.Settings
	settings.SetSoundVolume(settings.GetSettings().SoundVolume + delta)
	log.Printf("[Term] Sound volume: %.0f%%", settings.GetSettings().SoundVolume*100)
	g.saveSettings()
}

func (g *Game) saveSettings() {
	if err := g.opts.Settings.Save(); err != nil {
		log.Printf("[Term] Warning: failed to save settings: %v", err)
	}
}

// handleMouse 把鼠标事件转换为手势输入
//
// 左键在画布内按下才算按下；按住拖到画布外（HUD 行）算离开，
// 之后需要松开重新按下。
func (g *Game) handleMouse(pressed bool, col, row int) {
	justPressed := pressed && !g.rawDown
	g.rawDown = pressed

	if g.phase != phasePlaying {
		// 开始这一局的点击不算作画布上的按下
		if justPressed {
			g.start()
		}
		return
	}

	// 鼠标事件在到达时处理，先让此前到期的手势定时器生效
	g.session.AdvanceTimers(g.opts.Clock.NowMs())

	inside := g.cells.InCanvas(col, row)
	x, y := g.cells.CellToPixel(col, row)

	switch {
	case justPressed:
		if inside {
			g.mouseDown = true
			g.session.PointerDown(x, y)
		}
	case pressed && g.mouseDown:
		if !inside {
			g.mouseDown = false
			g.session.PointerLeave()
		} else if col != g.lastCol || row != g.lastRow {
			g.session.PointerMove(x, y)
		}
	case !pressed && g.mouseDown:
		g.mouseDown = false
		g.session.PointerUp(x, y)
	}
	g.lastCol, g.lastRow = col, row
}

// Tick 推进一帧并重绘
func (g *Game) Tick() {
	if g.phase == phasePlaying {
		res := g.session.Frame(g.opts.Clock.NowMs())
		if res.Score > g.lastScore && !res.Over && g.opts.Cues != nil {
			g.opts.Cues.Burst()
		}
		g.lastScore = res.Score
	}
	g.draw()
}

func (g *Game) draw() {
	g.screen.Clear()

	if g.session != nil {
		for _, b := range g.session.Balls() {
			col, row, ok := g.cells.PixelToCell(b.X+b.Width/2, b.Y+b.Height/2)
			if !ok {
				continue
			}
			g.screen.SetContent(col, row, g.glyphs[b.Sprite], nil, g.styles[b.Sprite])
		}
	}

	switch g.phase {
	case phaseStart:
		g.drawHUD(fmt.Sprintf(" %s  click or press Enter to start  [q]uit", g.opts.Config.Window.Title))
		g.drawCentered("Click or hold to spawn balls. The game ends when the frame rate collapses.")
	case phasePlaying:
		hud := fmt.Sprintf(" Balls: %d", g.session.Score())
		if g.opts.Settings.GetSettings().ShowFPS {
			hud += fmt.Sprintf("  FPS: %d", g.session.DisplayedFPS())
		}
		sound := g.opts.Settings.GetSettings()
		hud += fmt.Sprintf("  [s]ound %s  [+/-] %.0f%%  [q]uit", onOff(sound.SoundEnabled), sound.SoundVolume*100)
		g.drawHUD(hud)
	case phaseOver:
		g.drawHUD(fmt.Sprintf(" Game Over  Final Score: %d balls  [r]estart  [q]uit", g.finalScore))
		g.drawCentered(fmt.Sprintf("Final Score: %d balls", g.finalScore))
	}

	g.screen.Show()
}

func (g *Game) drawHUD(s string) {
	style := tcell.StyleDefault.Reverse(true)
	cols, _ := g.screen.Size()
	col := 0
	for _, r := range s {
		if col >= cols {
			break
		}
		g.screen.SetContent(col, 0, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		g.screen.SetContent(col, 0, ' ', nil, style)
	}
}

func (g *Game) drawCentered(s string) {
	cols, rows := g.screen.Size()
	runes := []rune(s)
	col := max((cols-len(runes))/2, 0)
	row := hudRows + max(rows-hudRows, 1)/2
	for i, r := range runes {
		g.screen.SetContent(col+i, row, r, nil, tcell.StyleDefault.Bold(true))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Run 运行事件循环直到玩家退出或 ctx 取消
//
// tcell 事件在单独的 goroutine 中读取并送入通道，
// 游戏状态只在本 goroutine 中修改。
func (g *Game) Run(ctx context.Context) error {
	interval := time.Duration(g.opts.Config.Terminal.FrameIntervalMs * float64(time.Millisecond))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen.PollEvent, eventChan, done)

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

// pumpEvents 把 poll 返回的事件送入 out，直到 poll 返回 nil 或 done 关闭
// poll 返回 nil（屏幕已 Fini）时关闭 out
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
