// Package sched is a tick-indexed queue of delayed callbacks. The game loop
// drains it at the start of every tick, so delayed work (staggered volleys,
// riposte shots) runs on the loop and stepping the simulation stays
// deterministic.
package sched

import "container/heap"

// Task is a callback scheduled for a future tick.
type Task func()

type entry struct {
	at   uint64
	seq  uint64
	task Task
}

type queue []entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(entry)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*q = old[:n-1]
	return e
}

// Scheduler holds pending tasks ordered by fire tick, then by submission.
type Scheduler struct {
	now uint64
	seq uint64
	q   queue
}

// New returns an empty scheduler positioned at tick 0.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.q)
}

// After queues task to run delay ticks from now. A delay below one is
// treated as one, so a task never runs inside the Advance that queued it.
func (s *Scheduler) After(delay int, task Task) {
	if task == nil {
		return
	}
	if delay < 1 {
		delay = 1
	}
	at := s.now + uint64(delay)
	s.seq++
	heap.Push(&s.q, entry{at: at, seq: s.seq, task: task})
}

// Advance moves to the next tick and runs every task due at or before it.
func (s *Scheduler) Advance() int {
	s.now++
	ran := 0
	for len(s.q) > 0 && s.q[0].at <= s.now {
		e := heap.Pop(&s.q).(entry)
		e.task()
		ran++
	}
	return ran
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.q = s.q[:0]
}
