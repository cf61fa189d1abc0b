package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/ballstorm/pkg/sim"
)

// debugCharWidth ebitenutil 调试字体的字符宽度（像素）
const debugCharWidth = 6

var (
	backgroundColor = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	canvasColor     = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// drawCanvas 绘制画布背景和所有球
// 球绘制在画布子图上，越界部分被裁剪
func drawCanvas(screen *ebiten.Image, env *Env, balls []sim.Ball) {
	screen.Fill(backgroundColor)

	rect := env.Canvas.Rect()
	canvas := screen.SubImage(rect).(*ebiten.Image)
	canvas.Fill(canvasColor)

	for i := range balls {
		b := &balls[i]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(rect.Min.X)+b.X, float64(rect.Min.Y)+b.Y)
		canvas.DrawImage(env.Atlas.Image(b.Sprite), op)
	}
}

// drawOverlay 在画布上绘制半透明遮罩
func drawOverlay(screen *ebiten.Image, rect image.Rectangle) {
	vector.DrawFilledRect(screen,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		overlayColor, false)
}

// drawCenteredText 以 cx 为中心绘制一行调试文本
func drawCenteredText(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*debugCharWidth/2, y)
}
