package game

import (
	"log"

	"github.com/decker502/ballstorm/pkg/gesture"
	"github.com/decker502/ballstorm/pkg/sim"
	"github.com/decker502/ballstorm/pkg/timeline"
)

// DefaultHUDIntervalMs FPS 显示的默认刷新间隔（每秒两次）
const DefaultHUDIntervalMs = 500.0

// HUDFunc 分数/FPS 显示回调
type HUDFunc func(ballCount, fps int)

// SessionConfig 创建一局游戏所需的协作者
type SessionConfig struct {
	Geometry sim.Geometry      // 画布尺寸提供者（每帧重新读取）
	Sprites  sim.SpriteCatalog // 精灵目录
	Rand     sim.Rand          // 随机源
	StartMs  float64           // 开局时间戳

	// HUDIntervalMs HUD 回调的最小间隔，0 表示每帧回调
	HUDIntervalMs float64

	OnHUD      HUDFunc          // 可为 nil
	OnGameOver sim.GameOverFunc // 可为 nil，只在结束的那一刻调用一次
}

// Session 一局游戏
//
// 把模拟、生成器、手势状态机和调度器绑在一起。驱动方每帧调用 Frame，
// 输入适配层调用 PointerDown/Move/Up/Leave。所有调用必须在同一个 goroutine 上。
// 每一帧先推进调度器（触发到期的手势定时器，可能生成新球），再推进模拟，
// 因此生成与推进是严格有序的原子操作序列。
type Session struct {
	sim       *sim.Simulation
	spawner   *sim.Spawner
	scheduler *timeline.Scheduler
	hold      *gesture.Hold

	hudIntervalMs float64
	lastHUDMs     float64
	hudShown      bool
	displayedFPS  int

	onHUD      HUDFunc
	onGameOver sim.GameOverFunc

	last sim.StepResult
}

// NewSession 创建一局新游戏
func NewSession(cfg SessionConfig) *Session {
	simulation := sim.NewSimulation(cfg.Geometry, cfg.Rand, cfg.StartMs)
	spawner := sim.NewSpawner(simulation, cfg.Sprites, cfg.Rand)
	scheduler := timeline.NewScheduler(cfg.StartMs)

	s := &Session{
		sim:           simulation,
		spawner:       spawner,
		scheduler:     scheduler,
		hold:          gesture.NewHold(spawner, scheduler),
		hudIntervalMs: cfg.HUDIntervalMs,
		onHUD:         cfg.OnHUD,
		onGameOver:    cfg.OnGameOver,
		displayedFPS:  simulation.FPS(),
		last:          sim.StepResult{FPS: simulation.FPS()},
	}
	simulation.OnGameOver(s.handleGameOver)

	log.Printf("[Session] New session started at %.0fms", cfg.StartMs)
	return s
}

// Frame 推进一帧
//
// 参数:
//   - nowMs: 当前单调时间戳（毫秒）
//
// 返回:
//   - sim.StepResult: 本帧结果；游戏结束后始终返回终局结果
func (s *Session) Frame(nowMs float64) sim.StepResult {
	if s.sim.IsOver() {
		return s.sim.Step(nowMs)
	}

	s.scheduler.Advance(nowMs)
	res := s.sim.Step(nowMs)
	s.last = res

	if !res.Over && s.hudDue(nowMs) {
		s.lastHUDMs = nowMs
		s.hudShown = true
		s.displayedFPS = res.FPS
		if s.onHUD != nil {
			s.onHUD(res.Score, res.FPS)
		}
	}

	return res
}

// AdvanceTimers 只推进手势定时器到 nowMs，不推进物理
//
// 输入在 nowMs 时刻被观察到时，先调用本方法再转发指针事件，
// 这样在上一帧之后到期的激活和重复生成先于该输入生效。
// 随后的 Frame(nowMs) 不会重复执行这些定时器。
func (s *Session) AdvanceTimers(nowMs float64) {
	if s.sim.IsOver() {
		return
	}
	s.scheduler.Advance(nowMs)
}

func (s *Session) hudDue(nowMs float64) bool {
	return !s.hudShown || nowMs-s.lastHUDMs >= s.hudIntervalMs
}

// handleGameOver 模拟结束时调用：停止手势、取消全部定时器、通知调用方
func (s *Session) handleGameOver(finalScore int) {
	s.hold.Stop()
	s.scheduler.CancelAll()
	log.Printf("[Session] Game over: final score %d balls, fps %d", finalScore, s.sim.FPS())
	if s.onGameOver != nil {
		s.onGameOver(finalScore)
	}
}

// PointerDown 指针按下
func (s *Session) PointerDown(x, y float64) {
	if s.sim.IsOver() {
		return
	}
	s.hold.Down(x, y)
}

// PointerMove 指针移动
func (s *Session) PointerMove(x, y float64) {
	if s.sim.IsOver() {
		return
	}
	s.hold.Move(x, y)
}

// PointerUp 指针抬起
func (s *Session) PointerUp(x, y float64) {
	if s.sim.IsOver() {
		return
	}
	s.hold.Up(x, y)
}

// PointerLeave 指针离开画布
func (s *Session) PointerLeave() {
	if s.sim.IsOver() {
		return
	}
	s.hold.Leave()
}

// Balls 返回当前所有球，供渲染使用
func (s *Session) Balls() []sim.Ball {
	return s.sim.Balls()
}

// Score 当前球数（实时）
func (s *Session) Score() int {
	return s.sim.Score()
}

// DisplayedFPS 最近一次 HUD 刷新时的 FPS（按 HUD 间隔节流）
func (s *Session) DisplayedFPS() int {
	return s.displayedFPS
}

// FPS 最近一步计算出的实时 FPS（不节流）
func (s *Session) FPS() int {
	return s.sim.FPS()
}

// IsOver 游戏是否已结束
func (s *Session) IsOver() bool {
	return s.sim.IsOver()
}

// Last 返回最近一帧的结果
func (s *Session) Last() sim.StepResult {
	return s.last
}

// HoldState 返回当前手势状态
func (s *Session) HoldState() gesture.State {
	return s.hold.State()
}

// PendingTimers 返回调度器中尚未执行的定时器数量
func (s *Session) PendingTimers() int {
	return s.scheduler.Pending()
}
