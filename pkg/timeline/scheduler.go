// Package timeline 提供虚拟时间调度器与单调时钟
//
// 调度器不启动任何 goroutine：驱动方每帧调用 Advance(nowMs)，到期的回调
// 在调用方的 goroutine 上按（到期时间, 注册顺序）依次执行。
// 这样定时生成与帧推进构成一个严格有序的原子修改序列，不需要加锁。
package timeline

import "log"

// Handle 定时任务句柄，0 为无效句柄
type Handle uint64

type task struct {
	handle   Handle
	due      float64
	interval float64 // 0 表示一次性任务
	seq      uint64
	fn       func()
}

// Scheduler 虚拟时间调度器
type Scheduler struct {
	now     float64
	nextID  Handle
	nextSeq uint64
	tasks   map[Handle]*task
}

// NewScheduler 创建调度器，startMs 为初始虚拟时间
func NewScheduler(startMs float64) *Scheduler {
	return &Scheduler{
		now:    startMs,
		nextID: 1,
		tasks:  make(map[Handle]*task),
	}
}

// Now 返回调度器当前的虚拟时间（毫秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delayMs 毫秒后执行一次 fn
func (s *Scheduler) After(delayMs float64, fn func()) Handle {
	return s.add(delayMs, 0, fn)
}

// Every 每隔 intervalMs 毫秒执行一次 fn，首次执行在一个间隔之后
// intervalMs 必须大于 0
func (s *Scheduler) Every(intervalMs float64, fn func()) Handle {
	if intervalMs <= 0 {
		log.Printf("[Scheduler] Warning: invalid interval %.1fms, task ignored", intervalMs)
		return 0
	}
	return s.add(intervalMs, intervalMs, fn)
}

func (s *Scheduler) add(delayMs, intervalMs float64, fn func()) Handle {
	h := s.nextID
	s.nextID++
	s.tasks[h] = &task{
		handle:   h,
		due:      s.now + delayMs,
		interval: intervalMs,
		seq:      s.nextSeq,
		fn:       fn,
	}
	s.nextSeq++
	return h
}

// Cancel 取消任务，已取消或不存在的句柄被忽略
// 取消后该任务保证不会再执行，即使在同一次 Advance 中已经到期
func (s *Scheduler) Cancel(h Handle) {
	delete(s.tasks, h)
}

// CancelAll 取消所有任务
func (s *Scheduler) CancelAll() {
	for h := range s.tasks {
		delete(s.tasks, h)
	}
}

// Pending 返回尚未执行（或仍在重复）的任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance 推进虚拟时间到 nowMs，依次执行所有到期任务
//
// 时间倒退时只执行已到期任务，不回拨时钟。
// 回调中可以安全地调度或取消任务；新任务如果在 nowMs 之前到期，
// 会在本次 Advance 内执行。
//
// 重复任务错过的周期会合并：执行一次后，如果下一个周期已经落在 nowMs 之前，
// 下一次到期时间改为 nowMs + 间隔。一帧卡顿 1000ms 时，50ms 的重复任务只执行一次。
//
// 返回:
//   - int: 本次执行的回调数量
func (s *Scheduler) Advance(nowMs float64) int {
	fired := 0
	for {
		next := s.earliestDue(nowMs)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
			if next.due < nowMs {
				next.due = nowMs + next.interval
			}
			next.seq = s.nextSeq
			s.nextSeq++
		} else {
			delete(s.tasks, next.handle)
		}

		next.fn()
		fired++
	}

	if nowMs > s.now {
		s.now = nowMs
	}
	return fired
}

// earliestDue 找出最早到期（到期时间相同时按注册顺序）且不晚于 limit 的任务
func (s *Scheduler) earliestDue(limit float64) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
