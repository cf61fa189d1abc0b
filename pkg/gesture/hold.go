// Package gesture 实现按住手势的状态机
//
// 按下后 200ms 内松开视为一次点击，生成一次爆发；按住超过 200ms 进入连续生成，
// 每 50ms 在最新位置生成一次爆发，直到松开。鼠标与触摸只是把事件转发到这里的薄适配层。
package gesture

import (
	"log"

	"github.com/decker502/ballstorm/pkg/timeline"
)

const (
	// ActivationDelayMs 按住多久进入连续生成
	ActivationDelayMs = 200.0
	// RepeatIntervalMs 连续生成的间隔
	RepeatIntervalMs = 50.0
)

// State 手势状态
type State int

const (
	// Idle 未按下
	Idle State = iota
	// Pending 已按下，等待激活
	Pending
	// Activated 已激活连续生成
	Activated
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Pending:
		return "Pending"
	case Activated:
		return "Activated"
	}
	return "Unknown"
}

// Burster 在指定位置生成一次爆发
// sim.Spawner 实现了此接口
type Burster interface {
	SpawnBurst(x, y float64) int
}

// Scheduler 可注入的调度器：一次性、重复与取消
// timeline.Scheduler 实现了此接口
type Scheduler interface {
	After(delayMs float64, fn func()) timeline.Handle
	Every(intervalMs float64, fn func()) timeline.Handle
	Cancel(h timeline.Handle)
}

// Hold 按住手势状态机
// 非并发安全，所有方法与调度器回调必须在同一个 goroutine 上执行
type Hold struct {
	burster   Burster
	scheduler Scheduler

	state   State
	x, y    float64
	timer   timeline.Handle // 激活定时器或重复定时器
	stopped bool
}

// NewHold 创建手势状态机
func NewHold(burster Burster, scheduler Scheduler) *Hold {
	return &Hold{
		burster:   burster,
		scheduler: scheduler,
		state:     Idle,
	}
}

// State 返回当前状态
func (h *Hold) State() State {
	return h.state
}

// Position 返回最近记录的按住位置
func (h *Hold) Position() (float64, float64) {
	return h.x, h.y
}

// Down 指针按下：Idle → Pending，记录位置并启动激活定时器
// 非 Idle 状态下的重复按下（如多点触摸）被忽略
func (h *Hold) Down(x, y float64) {
	if h.stopped || h.state != Idle {
		return
	}
	h.x, h.y = x, y
	h.state = Pending
	h.timer = h.scheduler.After(ActivationDelayMs, h.activate)
}

// Move 指针移动：只更新位置，不改变状态
func (h *Hold) Move(x, y float64) {
	if h.stopped || h.state == Idle {
		return
	}
	h.x, h.y = x, y
}

// Up 指针抬起
// Pending 状态视为点击，在抬起位置生成一次爆发；
// Activated 状态只停止连续生成，不额外生成
func (h *Hold) Up(x, y float64) {
	if h.stopped || h.state == Idle {
		return
	}
	h.x, h.y = x, y
	h.release()
}

// Leave 指针离开画布，按在最后记录位置抬起处理
func (h *Hold) Leave() {
	if h.stopped || h.state == Idle {
		return
	}
	h.release()
}

// Stop 取消所有定时器并永久停止响应输入（游戏结束时调用）
func (h *Hold) Stop() {
	h.cancelTimer()
	h.state = Idle
	h.stopped = true
}

func (h *Hold) release() {
	wasPending := h.state == Pending
	h.cancelTimer()
	h.state = Idle

	if wasPending {
		n := h.burster.SpawnBurst(h.x, h.y)
		log.Printf("[Hold] Click burst at (%.0f, %.0f): %d balls", h.x, h.y, n)
	}
}

// activate 激活定时器到期：Pending → Activated，开始每 50ms 生成一次
func (h *Hold) activate() {
	if h.state != Pending {
		return
	}
	h.state = Activated
	h.timer = h.scheduler.Every(RepeatIntervalMs, h.repeat)
	log.Printf("[Hold] Activated at (%.0f, %.0f)", h.x, h.y)
}

func (h *Hold) repeat() {
	if h.state != Activated {
		return
	}
	h.burster.SpawnBurst(h.x, h.y)
}

func (h *Hold) cancelTimer() {
	if h.timer != 0 {
		h.scheduler.Cancel(h.timer)
		h.timer = 0
	}
}
