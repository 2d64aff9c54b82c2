// Package sched runs continuations on the display-refresh tick.
//
// Nothing here is goroutine-safe: Tick and every callback run on the game's
// update loop, which is also the only writer of the state the callbacks read.
package sched

import "time"

// Task is a scheduled continuation. The zero value is not usable.
type Task struct {
	name      string
	fn        func()
	due       time.Time
	repeat    bool
	done      bool
	cancelled bool
}

// Cancel deregisters the task. It is safe to call more than once, and from
// inside the task's own callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task will still run.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Name is the label given at scheduling time.
func (t *Task) Name() string { return t.name }

type Scheduler struct {
	now   func() time.Time
	tasks []*Task
	ticks int64
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// SetNowFunc overrides the clock. Tests use it to step time deterministically.
func (s *Scheduler) SetNowFunc(f func() time.Time) {
	s.now = f
}

// Now reads the scheduler clock.
func (s *Scheduler) Now() time.Time { return s.now() }

// Ticks is the number of Tick calls so far.
func (s *Scheduler) Ticks() int64 { return s.ticks }

// Every registers fn to run once per tick until cancelled.
func (s *Scheduler) Every(name string, fn func()) *Task {
	t := &Task{name: name, fn: fn, repeat: true}
	s.tasks = append(s.tasks, t)
	return t
}

// After registers fn to run once, on the first tick at or after now+d.
func (s *Scheduler) After(name string, d time.Duration, fn func()) *Task {
	t := &Task{name: name, fn: fn, due: s.now().Add(d)}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick runs every due task. Tasks registered during a tick first run on the
// following tick.
func (s *Scheduler) Tick() {
	s.ticks++
	now := s.now()
	batch := s.tasks
	for _, t := range batch {
		if !t.Active() {
			continue
		}
		if t.repeat {
			t.fn()
			continue
		}
		if now.Before(t.due) {
			continue
		}
		t.done = true
		t.fn()
	}
	s.compact()
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pending counts tasks that are still registered and active.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

// CancelAll drops every task, e.g. when the window closes.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.compact()
}
