// Package sim 实现弹球游戏的无头核心：
// 重力积分、边界碰撞策略、基于帧率的游戏结束判定，以及球的生成。
//
// 核心不依赖任何渲染或输入框架。驱动方每个显示刷新调用一次 Simulation.Step，
// 渲染、HUD、结束画面都由调用方根据返回值完成。
package sim

import "math"

// Geometry 画布尺寸提供者
// 画布尺寸可能随时变化（如窗口缩放），Simulation 每一步都重新读取，不做缓存
type Geometry interface {
	CanvasSize() (width, height float64)
}

// FixedGeometry 固定尺寸的画布
type FixedGeometry struct {
	Width, Height float64
}

// CanvasSize 实现 Geometry 接口
func (g FixedGeometry) CanvasSize() (float64, float64) {
	return g.Width, g.Height
}

// GameOverFunc 游戏结束回调，参数为最终得分（球数）
type GameOverFunc func(finalScore int)

// StepResult 单步推进的结果
type StepResult struct {
	Score   int  // 当前球数
	FPS     int  // 平滑后的帧率估计
	Over    bool // 游戏是否已结束
	Bounces int  // 本帧发生底部反弹的球数
}

// Simulation 模拟状态
// 生命周期：游戏开始时创建，每帧修改一次，游戏结束后冻结。
// 非并发安全：Step 与 Spawner 必须在同一个 goroutine 上按顺序调用
type Simulation struct {
	geometry Geometry
	rng      Rand

	balls []Ball

	startMs         float64
	lastFrameMs     float64
	smoothedDeltaMs float64
	fps             int
	over            bool
	onGameOver      GameOverFunc
	terminalResult  StepResult
}

// NewSimulation 创建模拟
//
// 参数:
//   - geometry: 画布尺寸提供者
//   - rng: 随机源
//   - startMs: 游戏开始时刻（毫秒时间戳），也作为第一帧的上一帧时间
//
// 返回:
//   - *Simulation: 新的模拟实例
func NewSimulation(geometry Geometry, rng Rand, startMs float64) *Simulation {
	return &Simulation{
		geometry:        geometry,
		rng:             rng,
		balls:           make([]Ball, 0, 256),
		startMs:         startMs,
		lastFrameMs:     startMs,
		smoothedDeltaMs: InitialSmoothedDeltaMs,
		fps:             int(math.Round(1000 / InitialSmoothedDeltaMs)),
	}
}

// OnGameOver 注册游戏结束回调
// 回调只会在 isOver 由 false 变为 true 的那一刻触发一次
func (s *Simulation) OnGameOver(fn GameOverFunc) {
	s.onGameOver = fn
}

// Step 推进一帧
//
// 计算原始帧间隔并更新指数平滑值，推导 FPS，对所有球施加重力、
// 积分位置并处理边界碰撞。宽限期过后如果平滑 FPS 低于临界值，游戏结束。
// 游戏结束后再调用 Step 不做任何事，只返回终局结果。
//
// 参数:
//   - nowMs: 当前单调时间戳（毫秒）
//
// 返回:
//   - StepResult: 当前得分、FPS 与是否结束
func (s *Simulation) Step(nowMs float64) StepResult {
	if s.over {
		return s.terminalResult
	}

	rawDelta := nowMs - s.lastFrameMs
	s.lastFrameMs = nowMs

	s.smoothedDeltaMs = s.smoothedDeltaMs*SmoothingFactor + rawDelta*(1-SmoothingFactor)
	s.fps = int(math.Round(1000 / s.smoothedDeltaMs))

	width, height := s.geometry.CanvasSize()
	bounces := 0
	for i := range s.balls {
		b := &s.balls[i]
		b.integrate()
		if b.resolveBounds(width, height, s.rng) {
			bounces++
		}
	}

	result := StepResult{
		Score:   len(s.balls),
		FPS:     s.fps,
		Bounces: bounces,
	}

	if s.Elapsed(nowMs) > CriticalFPSDelayMs && s.fps < CriticalFPS {
		s.over = true
		result.Over = true
		s.terminalResult = result
		s.terminalResult.Bounces = 0
		if s.onGameOver != nil {
			s.onGameOver(result.Score)
		}
	}

	return result
}

// Elapsed 返回自游戏开始以来经过的时间（毫秒）
func (s *Simulation) Elapsed(nowMs float64) float64 {
	return nowMs - s.startMs
}

// IsOver 游戏是否已结束
func (s *Simulation) IsOver() bool {
	return s.over
}

// Score 当前得分，即已生成的球数
func (s *Simulation) Score() int {
	return len(s.balls)
}

// FPS 返回最近一次计算的平滑帧率
func (s *Simulation) FPS() int {
	return s.fps
}

// SmoothedDeltaMs 返回当前平滑后的帧间隔（毫秒）
func (s *Simulation) SmoothedDeltaMs() float64 {
	return s.smoothedDeltaMs
}

// Balls 返回当前所有球（按生成顺序）
// 返回的切片供渲染读取，调用方不应修改
func (s *Simulation) Balls() []Ball {
	return s.balls
}

// add 追加一个球，游戏结束后拒绝
func (s *Simulation) add(b Ball) bool {
	if s.over {
		return false
	}
	s.balls = append(s.balls, b)
	return true
}
