// Package clock provides the simulation clock and the deferred callbacks
// that hang off it. Nothing here starts a goroutine: callbacks run on the
// caller's update pass when Advance reaches their deadline.
package clock

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

type timer struct {
	token    Token
	deadline time.Duration
	seq      uint64
	interval time.Duration // 0 for one-shot timers
	fn       func()
	index    int
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is a monotonic simulation clock with a deadline-ordered queue of
// callbacks. It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	queue  timerQueue
	timers map[Token]*timer
	next   Token
	seq    uint64
}

func New() *Scheduler {
	return &Scheduler{
		timers: make(map[Token]*timer),
	}
}

// Now returns the elapsed simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks still waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once, delay after the current time. A delay of
// zero or less runs fn on the next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	return s.schedule(s.now+delay, 0, fn)
}

// Every schedules fn to run each interval, first at now+interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) Token {
	if interval <= 0 {
		panic("clock: Every requires a positive interval")
	}
	return s.schedule(s.now+interval, interval, fn)
}

// Cancel removes a pending callback. It reports whether anything was removed.
// Canceling a loop timer from inside its own callback stops it.
func (s *Scheduler) Cancel(token Token) bool {
	t, ok := s.timers[token]
	if !ok {
		return false
	}
	delete(s.timers, token)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Active reports whether token still refers to a pending callback.
func (s *Scheduler) Active(token Token) bool {
	_, ok := s.timers[token]
	return ok
}

// Advance moves the clock forward by dt and runs every callback whose
// deadline falls inside the step, earliest first. Callbacks scheduled while
// draining run in the same pass if they are already due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for len(s.queue) > 0 && s.queue[0].deadline <= target {
		t := heap.Pop(&s.queue).(*timer)
		// The clock reads the callback's own deadline while it runs so that
		// anything it schedules is relative to when it was due.
		s.now = t.deadline

		if t.interval > 0 {
			t.deadline += t.interval
			s.seq++
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.timers, t.token)
		}

		t.fn()
	}

	s.now = target
}

func (s *Scheduler) schedule(deadline, interval time.Duration, fn func()) Token {
	s.next++
	s.seq++
	t := &timer{
		token:    s.next,
		deadline: deadline,
		seq:      s.seq,
		interval: interval,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	s.timers[t.token] = t
	return t.token
}
