package gesture

import (
	"testing"

	"github.com/decker502/ballstorm/pkg/sim"
	"github.com/decker502/ballstorm/pkg/timeline"
)

// burstCall 记录一次爆发调用
type burstCall struct {
	at    float64
	x, y  float64
	count int
}

// recordingBurster 包装真实 Spawner，记录每次调用的时间、位置与数量
type recordingBurster struct {
	sched   *timeline.Scheduler
	spawner *sim.Spawner
	calls   []burstCall
}

func (r *recordingBurster) SpawnBurst(x, y float64) int {
	n := r.spawner.SpawnBurst(x, y)
	r.calls = append(r.calls, burstCall{at: r.sched.Now(), x: x, y: y, count: n})
	return n
}

type oneSprite struct{}

func (oneSprite) Len() int { return 1 }
func (oneSprite) Size(int) (float64, float64) { return 40, 40 }

// newTestHold 创建使用虚拟时间的手势状态机
func newTestHold(t *testing.T) (*Hold, *timeline.Scheduler, *recordingBurster, *sim.Simulation) {
	t.Helper()
	rng := sim.NewRand(11)
	s := sim.NewSimulation(sim.FixedGeometry{Width: 800, Height: 600}, rng, 0)
	sched := timeline.NewScheduler(0)
	rec := &recordingBurster{sched: sched, spawner: sim.NewSpawner(s, oneSprite{}, rng)}
	return NewHold(rec, sched), sched, rec, s
}

// TestHold_QuickClick 按住 60ms 后松开：恰好一次爆发，数量在 [7, 11]
func TestHold_QuickClick(t *testing.T) {
	h, sched, rec, s := newTestHold(t)

	h.Down(100, 200)
	if h.State() != Pending {
		t.Fatalf("state after Down = %v, want Pending", h.State())
	}

	sched.Advance(60)
	h.Up(110, 210)
	if h.State() != Idle {
		t.Fatalf("state after Up = %v, want Idle", h.State())
	}

	sched.Advance(1000)

	if len(rec.calls) != 1 {
		t.Fatalf("burst calls = %d, want 1", len(rec.calls))
	}
	call := rec.calls[0]
	if call.x != 110 || call.y != 210 {
		t.Errorf("burst at (%.0f, %.0f), want release position (110, 210)", call.x, call.y)
	}
	if call.count < sim.BurstMin || call.count > sim.BurstMax {
		t.Errorf("burst count = %d, want [7, 11]", call.count)
	}
	if s.Score() != call.count {
		t.Errorf("score = %d, want %d", s.Score(), call.count)
	}
	if sched.Pending() != 0 {
		t.Errorf("dangling timers: %d", sched.Pending())
	}
}

// TestHold_LongPress 按住超过 200ms 并在 260ms 松开：
// 200ms 激活，250ms 重复生成一次，松开时不额外生成
func TestHold_LongPress(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Down(300, 300)

	sched.Advance(199)
	if h.State() != Pending {
		t.Fatalf("state at 199ms = %v, want Pending", h.State())
	}

	sched.Advance(200)
	if h.State() != Activated {
		t.Fatalf("state at 200ms = %v, want Activated", h.State())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("burst at activation instant: %d calls", len(rec.calls))
	}

	sched.Advance(260)
	h.Up(300, 300)
	sched.Advance(2000)

	if len(rec.calls) != 1 {
		t.Fatalf("burst calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0].at != 250 {
		t.Errorf("repeat burst at %.0fms, want 250ms", rec.calls[0].at)
	}
	if h.State() != Idle {
		t.Errorf("state after release = %v, want Idle", h.State())
	}
	if sched.Pending() != 0 {
		t.Errorf("dangling timers: %d", sched.Pending())
	}
}

// TestHold_MoveUpdatesRepeatPosition 连续生成使用最新的按住位置
func TestHold_MoveUpdatesRepeatPosition(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Down(10, 10)
	sched.Advance(120)
	h.Move(50, 60)
	if h.State() != Pending {
		t.Fatalf("Move changed state to %v", h.State())
	}

	sched.Advance(250)
	h.Move(70, 80)
	if h.State() != Activated {
		t.Fatalf("Move changed state to %v", h.State())
	}
	sched.Advance(300)
	h.Leave()

	if len(rec.calls) != 2 {
		t.Fatalf("burst calls = %d, want 2", len(rec.calls))
	}
	if rec.calls[0].x != 50 || rec.calls[0].y != 60 {
		t.Errorf("first burst at (%.0f, %.0f), want (50, 60)", rec.calls[0].x, rec.calls[0].y)
	}
	if rec.calls[1].x != 70 || rec.calls[1].y != 80 {
		t.Errorf("second burst at (%.0f, %.0f), want (70, 80)", rec.calls[1].x, rec.calls[1].y)
	}
}

// TestHold_LeaveWhilePending 等待激活时离开画布视为点击，在最后位置生成
func TestHold_LeaveWhilePending(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Down(10, 20)
	h.Move(30, 40)
	sched.Advance(100)
	h.Leave()
	sched.Advance(1000)

	if len(rec.calls) != 1 {
		t.Fatalf("burst calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0].x != 30 || rec.calls[0].y != 40 {
		t.Errorf("burst at (%.0f, %.0f), want (30, 40)", rec.calls[0].x, rec.calls[0].y)
	}
}

// TestHold_IgnoredInputs Idle 状态下的移动、抬起、离开都无效果；重复按下被忽略
func TestHold_IgnoredInputs(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Move(1, 1)
	h.Up(1, 1)
	h.Leave()
	if h.State() != Idle || len(rec.calls) != 0 {
		t.Fatalf("idle inputs had effect: state=%v calls=%d", h.State(), len(rec.calls))
	}

	h.Down(5, 5)
	h.Down(9, 9)
	if x, y := h.Position(); x != 5 || y != 5 {
		t.Errorf("second Down moved position to (%.0f, %.0f)", x, y)
	}
	if sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", sched.Pending())
	}
}

// TestHold_StallGivesOneBurst 按住期间一帧卡顿 1000ms，错过的重复生成合并为一次
func TestHold_StallGivesOneBurst(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Down(100, 100)
	sched.Advance(300)
	if len(rec.calls) != 2 {
		t.Fatalf("burst calls before stall = %d, want 2", len(rec.calls))
	}

	sched.Advance(1300)
	if len(rec.calls) != 3 {
		t.Fatalf("burst calls after 1000ms stall = %d, want 3", len(rec.calls))
	}

	sched.Advance(1349)
	sched.Advance(1350)
	if len(rec.calls) != 4 {
		t.Fatalf("burst calls after stall = %d, want 4", len(rec.calls))
	}
	if rec.calls[3].at != 1350 {
		t.Errorf("first repeat after stall at %.0fms, want 1350ms", rec.calls[3].at)
	}
	h.Up(100, 100)
}

// TestHold_Stop 停止后取消所有定时器，之后的输入全部忽略
func TestHold_Stop(t *testing.T) {
	h, sched, rec, _ := newTestHold(t)

	h.Down(100, 100)
	sched.Advance(300)
	if len(rec.calls) != 2 {
		t.Fatalf("burst calls before stop = %d, want 2", len(rec.calls))
	}

	h.Stop()
	if sched.Pending() != 0 {
		t.Errorf("timers left after Stop: %d", sched.Pending())
	}
	sched.Advance(5000)
	h.Down(1, 1)
	h.Up(1, 1)
	sched.Advance(10000)

	if len(rec.calls) != 2 {
		t.Errorf("burst calls after stop = %d, want 2", len(rec.calls))
	}
	if h.State() != Idle {
		t.Errorf("state after Stop = %v, want Idle", h.State())
	}
}

// TestState_String 状态名称
func TestState_String(t *testing.T) {
	tests := map[State]string{Idle: "Idle", Pending: "Pending", Activated: "Activated", State(9): "Unknown"}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
