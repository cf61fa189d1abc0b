package term

import "math"

// CellGeometry 终端画布几何
//
// 第 0 行是 HUD，其余行是画布。画布以虚拟像素计：
// 每个字符格对应 cellWidth x cellHeight 像素，物理常量因此与窗口版一致。
type CellGeometry struct {
	cellWidth  float64
	cellHeight float64
	cols       int
	rows       int
}

// hudRows 画布上方保留给 HUD 的行数
const hudRows = 1

// NewCellGeometry 创建终端画布几何
func NewCellGeometry(cellWidth, cellHeight float64) *CellGeometry {
	return &CellGeometry{cellWidth: cellWidth, cellHeight: cellHeight}
}

// SetScreenSize 更新终端尺寸（列数、行数）
func (g *CellGeometry) SetScreenSize(cols, rows int) {
	g.cols, g.rows = cols, rows
}

// CanvasCells 返回画布的列数和行数
func (g *CellGeometry) CanvasCells() (int, int) {
	return max(g.cols, 1), max(g.rows-hudRows, 1)
}

// CanvasSize 实现 sim.Geometry，返回虚拟像素尺寸
func (g *CellGeometry) CanvasSize() (float64, float64) {
	cols, rows := g.CanvasCells()
	return float64(cols) * g.cellWidth, float64(rows) * g.cellHeight
}

// InCanvas 屏幕坐标 (col, row) 是否位于画布内
func (g *CellGeometry) InCanvas(col, row int) bool {
	cols, rows := g.CanvasCells()
	return col >= 0 && col < cols && row >= hudRows && row < hudRows+rows
}

// CellToPixel 屏幕格子中心对应的画布像素坐标
func (g *CellGeometry) CellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.cellWidth, (float64(row-hudRows) + 0.5) * g.cellHeight
}

// PixelToCell 画布像素坐标所在的屏幕格子
//
// 返回:
//   - col, row: 屏幕坐标（已加上 HUD 行）
//   - ok: 是否位于画布内
func (g *CellGeometry) PixelToCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / g.cellWidth))
	row = int(math.Floor(y/g.cellHeight)) + hudRows
	return col, row, g.InCanvas(col, row)
}
