// cmd/game_term/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gold-miner/internal/app"
	"gold-miner/internal/audio"
	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/state"
	"gold-miner/internal/utils"
)

const logFile = "gold-miner.log"

// mouseState tracks the left button so that holding it is one click.
type mouseState struct {
	down bool
}

// translate turns a terminal event into commands. Clicks are reported in
// canvas coordinates.
func translate(ev tcell.Event, surface *termSurface, mouse *mouseState) input.Commands {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyDown:
			return input.Commands{Fire: true}
		case tcell.KeyEnter:
			return input.Commands{Start: true}
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return input.Commands{Quit: true}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 's', 'S':
				return input.Commands{Stop: true}
			case 'p', 'P':
				return input.Commands{Pause: true}
			case 'q', 'Q':
				return input.Commands{Quit: true}
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasDown := mouse.down
		mouse.down = pressed
		if pressed && !wasDown {
			col, row := ev.Position()
			return input.Click(surface.toCanvas(col, row))
		}
	case *tcell.EventResize:
		surface.screen.Sync()
		surface.resize()
	}
	return input.Commands{}
}

// forwardEvents пересылает события экрана в out, пока экран открыт и quit
// не закрыт.
func forwardEvents(screen tcell.Screen, out chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // экран закрыт
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

func run(settings config.Settings) error {
	game, field, err := app.NewSession(settings)
	if err != nil {
		return err
	}
	defer game.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	sounds := audio.NewSoundManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		// Не критично, играем без звука
		log.Printf("sound disabled: %v", err)
	}
	defer sounds.Close()
	sounds.Subscribe(game.EventDispatcher)

	surface := newTermSurface(screen, settings.Width, settings.Height)
	sm := state.NewRoot(game, field, game.EventDispatcher)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go forwardEvents(screen, eventChan, quit)

	var (
		mouse   mouseState
		pending input.Commands
		last    = time.Now()
	)
	for {
		select {
		case ev := <-eventChan:
			pending = pending.Merge(translate(ev, surface, &mouse))

		case now := <-ticker.C:
			if pending.Quit {
				return nil
			}
			dt := utils.Clamp(now.Sub(last).Seconds(), 0, config.MaxDeltaTime)
			last = now

			sm.Update(dt, pending)
			pending = input.Commands{}

			screen.Clear()
			sm.Draw(surface)
			screen.Show()
		}
	}
}

func main() {
	settings, err := config.FromCommandLine(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(2)
	}

	// Терминал занят игрой, лог пишем в файл или никуда
	log.SetOutput(io.Discard)
	if settings.Verbose {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "gold-miner: %v\n", err)
		os.Exit(1)
	}
}
