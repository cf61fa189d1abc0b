package scenes

import (
	"image"
	"log"

	"github.com/decker502/ballstorm/pkg/config"
	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/sim"
	"github.com/decker502/ballstorm/pkg/utils"
)

// Env 场景之间共享的运行环境
//
// 由 app.NewApp 创建一次，传给每个新场景。场景自身只保存本局状态。
type Env struct {
	Config   *config.GameConfig
	Catalog  *config.SpriteCatalog
	Atlas    *SpriteAtlas
	Canvas   *CanvasGeometry
	Pointer  *utils.PointerTracker
	Settings *game.SettingsManager

	// OnGameOver 每局结束时调用，可为 nil
	OnGameOver func(finalScore, fps int)

	// Seed 基础随机种子，第 n 局使用 Seed+n
	Seed  uint64
	round uint64
}

// NextRand 为新一局创建随机源
func (e *Env) NextRand() sim.Rand {
	seed := e.Seed + e.round
	e.round++
	log.Printf("[Env] Round %d uses seed %d", e.round, seed)
	return sim.NewRand(seed)
}

// Round 返回已开始的局数
func (e *Env) Round() uint64 {
	return e.round
}

// CanvasGeometry 画布几何
//
// 画布为窗口尺寸减去四周的留白，随窗口大小变化。
// Layout 每帧写入窗口尺寸，模拟每一步通过 CanvasSize 读取最新值。
type CanvasGeometry struct {
	margin   int
	outsideW int
	outsideH int
}

// NewCanvasGeometry 创建画布几何
//
// 参数:
//   - margin: 画布与窗口边缘的留白（像素）
//   - width, height: 初始窗口尺寸
func NewCanvasGeometry(margin, width, height int) *CanvasGeometry {
	return &CanvasGeometry{margin: margin, outsideW: width, outsideH: height}
}

// SetOutsideSize 更新窗口尺寸
func (g *CanvasGeometry) SetOutsideSize(width, height int) {
	if width != g.outsideW || height != g.outsideH {
		log.Printf("[Canvas] Window resized: %dx%d -> %dx%d", g.outsideW, g.outsideH, width, height)
	}
	g.outsideW, g.outsideH = width, height
}

// OutsideSize 返回窗口尺寸
func (g *CanvasGeometry) OutsideSize() (int, int) {
	return g.outsideW, g.outsideH
}

// Rect 返回画布在窗口中的区域，宽高至少为 1
func (g *CanvasGeometry) Rect() image.Rectangle {
	w := max(g.outsideW-2*g.margin, 1)
	h := max(g.outsideH-2*g.margin, 1)
	return image.Rect(g.margin, g.margin, g.margin+w, g.margin+h)
}

// CanvasSize 实现 sim.Geometry
func (g *CanvasGeometry) CanvasSize() (float64, float64) {
	r := g.Rect()
	return float64(r.Dx()), float64(r.Dy())
}
