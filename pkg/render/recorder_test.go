package render

import (
	"image/color"
	"testing"
)

func TestRecorderClearStartsNewFrame(t *testing.T) {
	r := NewRecorder(800, 600)
	r.Clear()
	r.BeginPath()
	r.Rect(1, 2, 3, 4)
	r.Fill(color.Black)
	if got := len(r.Commands()); got != 4 {
		t.Fatalf("commands after first frame = %d, want 4", got)
	}

	r.Clear()
	cmds := r.Commands()
	if len(cmds) != 1 || cmds[0].Op != OpClear {
		t.Fatalf("second frame = %v, want a single Clear", cmds)
	}
	if r.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", r.Frames())
	}
}

func TestRecorderReplayReproducesFrame(t *testing.T) {
	src := NewRecorder(100, 100)
	src.Clear()
	src.BeginPath()
	src.MoveTo(1, 1)
	src.LineTo(5, 5)
	src.Stroke(color.White, 4)
	src.Arc(10, 10, 5, 0, 3)
	src.ClosePath()
	src.SetAlpha(0.5)
	src.FillText("+12", 3, 4, 20, color.White)
	src.ResetAlpha()

	dst := NewRecorder(100, 100)
	src.Replay(dst)

	want := src.Commands()
	got := dst.Commands()
	if len(got) != len(want) {
		t.Fatalf("replayed %d commands, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecorderTextsAndCount(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Clear()
	r.FillText("a", 0, 0, 10, color.White)
	r.FillText("b", 0, 0, 10, color.White)
	r.Fill(color.White)

	texts := r.Texts()
	if len(texts) != 2 || texts[0] != "a" || texts[1] != "b" {
		t.Fatalf("texts = %v", texts)
	}
	if n := r.Count(OpFill); n != 1 {
		t.Fatalf("fill count = %d, want 1", n)
	}
	if OpFillText.String() != "FillText" || Op(99).String() != "Unknown" {
		t.Fatalf("unexpected op names %q %q", OpFillText, Op(99))
	}
}
