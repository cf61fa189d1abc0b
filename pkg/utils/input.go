// Package utils 提供前端通用的输入与平台工具
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPhase 指针事件类型
type PointerPhase int

const (
	// PointerDown 按下（鼠标左键或触摸开始）
	PointerDown PointerPhase = iota
	// PointerMove 按住或悬停时移动
	PointerMove
	// PointerUp 抬起
	PointerUp
	// PointerLeave 指针离开画布
	PointerLeave
)

// String 返回事件类型名称（用于日志）
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	case PointerLeave:
		return "Leave"
	default:
		return "Unknown"
	}
}

// PointerEvent 画布坐标系下的指针事件
type PointerEvent struct {
	Phase PointerPhase
	X, Y  int
}

// PointerSample 某一帧采样到的原始指针状态（屏幕坐标）
type PointerSample struct {
	// Pressed 鼠标左键按下或存在活动触摸
	Pressed bool
	// X, Y 指针位置；触摸刚结束时为最后一次触摸位置
	X, Y int
	// Touch 是否为触摸输入
	Touch bool
}

// PointerTracker 指针跟踪器
//
// 把逐帧采样的原始指针状态转换为画布上的 Down/Move/Up/Leave 事件序列。
// 鼠标离开画布区域时产生 Leave，回到画布后需要重新按下才会产生 Down；
// 触摸结束时在最后一次触摸位置产生 Up，不产生 Leave。
type PointerTracker struct {
	bounds  image.Rectangle // 画布在屏幕上的区域
	pressed bool            // 是否处于一次在画布内开始的按下
	raw     bool            // 上一帧原始按键状态，用于检测按下沿
	inside  bool            // 上一帧指针是否在画布内
	lastX   int
	lastY   int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// SetBounds 设置画布在屏幕上的区域（窗口尺寸变化后调用）
func (pt *PointerTracker) SetBounds(bounds image.Rectangle) {
	pt.bounds = bounds
}

// Bounds 返回当前画布区域
func (pt *PointerTracker) Bounds() image.Rectangle {
	return pt.bounds
}

// IsPressed 当前是否处于按下状态
func (pt *PointerTracker) IsPressed() bool {
	return pt.pressed
}

// Reset 丢弃按下状态（切换场景时调用，不产生事件）
//
// 参数:
//   - held: 当前原始按键是否仍按住；仍按住的按键不会在下一帧被当作新的按下
func (pt *PointerTracker) Reset(held bool) {
	pt.pressed = false
	pt.raw = held
	pt.inside = false
}

// Update 处理一帧的采样，返回本帧产生的事件（可能为空）
//
// 参数:
//   - s: 本帧指针采样
//   - dst: 事件追加到的切片，可传 nil
//
// 返回:
//   - []PointerEvent: 追加后的事件切片，坐标已转换为画布坐标
func (pt *PointerTracker) Update(s PointerSample, dst []PointerEvent) []PointerEvent {
	prevRaw := pt.raw
	pt.raw = s.Pressed

	pos := image.Pt(s.X, s.Y)
	inside := pos.In(pt.bounds)
	local := pos.Sub(pt.bounds.Min)

	emit := func(phase PointerPhase) {
		dst = append(dst, PointerEvent{Phase: phase, X: local.X, Y: local.Y})
	}

	// 触摸没有悬停，也不会离开画布：按下、移动、抬起
	if s.Touch {
		switch {
		case s.Pressed && !prevRaw:
			if inside {
				pt.pressed = true
				emit(PointerDown)
			}
		case s.Pressed && pt.pressed:
			if local.X != pt.lastX || local.Y != pt.lastY {
				emit(PointerMove)
			}
		case !s.Pressed && pt.pressed:
			pt.pressed = false
			emit(PointerUp)
		}
		pt.lastX, pt.lastY = local.X, local.Y
		pt.inside = inside
		return dst
	}

	// 鼠标移出画布；在画布外按下后拖入画布不算按下
	if !inside {
		if pt.inside {
			dst = append(dst, PointerEvent{Phase: PointerLeave, X: pt.lastX, Y: pt.lastY})
		}
		pt.inside = false
		pt.pressed = false
		return dst
	}

	switch {
	case s.Pressed && !prevRaw:
		pt.pressed = true
		emit(PointerDown)
	case !s.Pressed && pt.pressed:
		pt.pressed = false
		emit(PointerUp)
	case pt.inside && (local.X != pt.lastX || local.Y != pt.lastY):
		emit(PointerMove)
	}

	pt.inside = true
	pt.lastX, pt.lastY = local.X, local.Y
	return dst
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// SamplePointer 从 Ebitengine 读取本帧的指针状态
// 优先检测触摸，没有触摸时使用鼠标
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return PointerSample{Pressed: true, X: lastTouchX, Y: lastTouchY, Touch: true}
	}

	// 触摸释放时使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerSample{Pressed: false, X: lastTouchX, Y: lastTouchY, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
