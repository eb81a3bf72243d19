package input

// Commands is what the player asked for during one frame. Each frontend
// fills it from its own key and mouse events.
type Commands struct {
	Fire  bool // стрелка вниз
	Start bool // Enter
	Stop  bool // S
	Pause bool // P
	Quit  bool // Esc

	Clicked        bool
	ClickX, ClickY float64
}

// Merge folds o into c. Flags accumulate; the later click wins. Used by
// frontends that receive several events between two frames.
func (c Commands) Merge(o Commands) Commands {
	c.Fire = c.Fire || o.Fire
	c.Start = c.Start || o.Start
	c.Stop = c.Stop || o.Stop
	c.Pause = c.Pause || o.Pause
	c.Quit = c.Quit || o.Quit
	if o.Clicked {
		c.Clicked = true
		c.ClickX, c.ClickY = o.ClickX, o.ClickY
	}
	return c
}

// Click returns a snapshot holding only a click at (x, y).
func Click(x, y float64) Commands {
	return Commands{Clicked: true, ClickX: x, ClickY: y}
}
