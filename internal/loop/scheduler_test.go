package loop

import "testing"

func TestRunFrameWithoutTaskIsIdle(t *testing.T) {
	s := NewScheduler()
	if s.RunFrame() {
		t.Fatal("idle scheduler ran a task")
	}
	if s.Frames() != 0 {
		t.Fatalf("frames = %d, want 0", s.Frames())
	}
}

func TestTaskRunsOnceUnlessRearmed(t *testing.T) {
	s := NewScheduler()
	runs := 0
	s.RequestFrame(func() { runs++ })

	if !s.RunFrame() || runs != 1 {
		t.Fatalf("first frame: runs = %d", runs)
	}
	if s.Pending() {
		t.Fatal("task should not stay armed")
	}
	if s.RunFrame() || runs != 1 {
		t.Fatalf("second frame ran again: runs = %d", runs)
	}
}

func TestSelfRearmingTaskStopsOnFlag(t *testing.T) {
	s := NewScheduler()
	running := true
	ticks := 0
	var tick Task
	tick = func() {
		if !running {
			return
		}
		ticks++
		s.RequestFrame(tick)
	}
	s.RequestFrame(tick)

	for i := 0; i < 5; i++ {
		s.RunFrame()
	}
	if ticks != 5 {
		t.Fatalf("ticks = %d, want 5", ticks)
	}

	running = false
	s.RunFrame()
	if ticks != 5 || s.Pending() {
		t.Fatalf("stopped loop kept going: ticks=%d pending=%v", ticks, s.Pending())
	}
	if s.Frames() != 6 {
		t.Fatalf("frames = %d, want 6", s.Frames())
	}
}

func TestRequestFrameReplacesPending(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.RequestFrame(func() { got = append(got, "a") })
	s.RequestFrame(func() { got = append(got, "b") })
	s.RunFrame()
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("ran %v, want [b]", got)
	}

	s.RequestFrame(func() { got = append(got, "c") })
	s.Cancel()
	if s.RunFrame() {
		t.Fatal("cancelled task ran")
	}
}
