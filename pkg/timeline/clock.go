package timeline

import "time"

// Clock 单调毫秒时间源
type Clock interface {
	NowMs() float64
}

// WallClock 基于 time.Now 单调读数的时钟，零点为创建时刻
type WallClock struct {
	origin time.Time
}

// NewWallClock 创建以当前时刻为零点的时钟
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// NowMs 返回自创建以来经过的毫秒数
func (c *WallClock) NowMs() float64 {
	return float64(time.Since(c.origin).Nanoseconds()) / 1e6
}

// ManualClock 手动推进的时钟，用于测试和逐帧回放
type ManualClock struct {
	Ms float64
}

// NowMs 实现 Clock 接口
func (c *ManualClock) NowMs() float64 {
	return c.Ms
}

// Add 推进 deltaMs 毫秒并返回新的时间
func (c *ManualClock) Add(deltaMs float64) float64 {
	c.Ms += deltaMs
	return c.Ms
}
