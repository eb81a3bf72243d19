// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gold-miner/internal/app"
	"gold-miner/internal/audio"
	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	surface        *ebitenSurface
	width, height  int
	verbose        bool
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	a.stateMachine.Update(deltaTime, in)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.bind(screen)
	a.stateMachine.Draw(a.surface)
	if a.verbose {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), 10, a.height-20)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// readInput собирает команды за кадр
func readInput() input.Commands {
	in := input.Commands{
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Start: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Stop:  inpututil.IsKeyJustPressed(ebiten.KeyS),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in = in.Merge(input.Click(float64(x), float64(y)))
	}
	return in
}

func main() {
	settings, err := config.FromCommandLine(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if settings.Pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.Pprof, nil))
		}()
	}

	game, field, err := app.NewSession(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	sounds := audio.NewSoundManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer sounds.Close()
	sounds.Subscribe(game.EventDispatcher)

	appGame := &AppGame{
		stateMachine:   state.NewRoot(game, field, game.EventDispatcher),
		surface:        newEbitenSurface(),
		width:          settings.Width,
		height:         settings.Height,
		verbose:        settings.Verbose,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%s)", config.WindowTitle, settings.Variant))
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
