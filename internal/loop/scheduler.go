package loop

// Task is a unit of per-frame work.
type Task func()

// Scheduler holds at most one task for the next display frame, the way an
// animation-frame callback works: a task runs once and must re-arm itself
// to keep running. Not armed means idle.
type Scheduler struct {
	pending Task
	frames  uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame arms task for the next frame, replacing any pending task.
func (s *Scheduler) RequestFrame(task Task) {
	s.pending = task
}

// Cancel drops the pending task.
func (s *Scheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a task is armed.
func (s *Scheduler) Pending() bool {
	return s.pending != nil
}

// RunFrame runs the armed task, if any, and reports whether one ran.
// The slot is cleared before the task runs so the task may re-arm.
func (s *Scheduler) RunFrame() bool {
	task := s.pending
	if task == nil {
		return false
	}
	s.pending = nil
	s.frames++
	task()
	return true
}

// Frames counts the tasks run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
