package ui

import (
	"testing"

	"gold-miner/internal/config"
	"gold-miner/internal/event"
	"gold-miner/pkg/render"
)

func TestButtonClick(t *testing.T) {
	b := NewButton(100, 20, "Start", config.ButtonColor)

	if b.Click(10, 10) {
		t.Fatal("click outside accepted")
	}
	if !b.Click(110, 30) {
		t.Fatal("click inside rejected")
	}
	if b.Click(110, 30) {
		t.Fatal("second click inside the cooldown accepted")
	}

	d := NewButton(100, 20, "Stop", config.ButtonStopColor)
	d.Disabled = true
	if d.Click(110, 30) {
		t.Fatal("disabled button accepted a click")
	}
}

func TestButtonDrawsLabel(t *testing.T) {
	rec := render.NewRecorder(800, 600)
	b := NewButton(100, 20, "Stop", config.ButtonStopColor)
	b.Disabled = true
	b.Draw(rec)

	if texts := rec.Texts(); len(texts) != 1 || texts[0] != "Stop" {
		t.Fatalf("texts = %v", texts)
	}
	if rec.Count(render.OpSetAlpha) != 1 || rec.Count(render.OpResetAlpha) != 1 {
		t.Fatal("disabled button should be drawn translucent and restore alpha")
	}
}

func TestPauseButtonToggle(t *testing.T) {
	b := NewPauseButton(730, 30, 10, config.PausedColor, config.RunningColor)
	if !b.Contains(735, 32) || b.Contains(760, 30) {
		t.Fatal("hit test wrong")
	}
	if !b.Ready() {
		t.Fatal("fresh button should accept a toggle")
	}
	b.TogglePause()
	if !b.IsPaused || b.Ready() {
		t.Fatalf("after toggle: paused=%v ready=%v", b.IsPaused, b.Ready())
	}

	rec := render.NewRecorder(800, 600)
	b.Draw(rec)
	if rec.Count(render.OpRect) != 0 || rec.Count(render.OpLineTo) != 2 {
		t.Fatal("paused button should show the play triangle")
	}
	b.SetPaused(false)
	b.Draw(rec)
	if rec.Count(render.OpRect) != 2 {
		t.Fatal("running button should show two bars")
	}
}

func TestScoreBoardFollowsEvents(t *testing.T) {
	d := event.NewDispatcher()
	b := NewScoreBoard(config.ScoreX, config.ScoreY, config.ScoreFontSize)
	b.Subscribe(d)

	if b.Text() != "Score: 0" {
		t.Fatalf("initial text %q", b.Text())
	}
	d.Dispatch(event.Event{Type: event.MineralCaptured, Data: event.Capture{Value: 12, Score: 12}})
	d.Dispatch(event.Event{Type: event.MineralCaptured, Data: event.Capture{Value: 20, Score: 32}})
	if b.Score() != 32 || b.Text() != "Score: 32" {
		t.Fatalf("after captures: %d %q", b.Score(), b.Text())
	}

	d.Dispatch(event.Event{Type: event.SessionStarted, Data: event.Summary{Score: 0, Remaining: 10}})
	if b.Score() != 0 {
		t.Fatal("new session should reset the board")
	}

	rec := render.NewRecorder(800, 600)
	b.Draw(rec)
	if texts := rec.Texts(); len(texts) != 1 || texts[0] != "Score: 0" {
		t.Fatalf("texts = %v", texts)
	}
}

func TestNoticeCoversScreen(t *testing.T) {
	rec := render.NewRecorder(400, 300)
	n := &Notice{Title: "Game over", Lines: []string{"Score: 7", "Press Enter"}}
	n.Draw(rec)

	cmds := rec.Commands()
	if cmds[1].Op != render.OpRect || cmds[1].W != 400 || cmds[1].H != 300 {
		t.Fatalf("overlay = %+v", cmds[1])
	}
	texts := rec.Texts()
	if len(texts) != 3 || texts[0] != "Game over" || texts[2] != "Press Enter" {
		t.Fatalf("texts = %v", texts)
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abcd", 10); got != 4*10*config.TextCharWidth {
		t.Fatalf("TextWidth = %v", got)
	}
}
