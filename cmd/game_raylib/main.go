// cmd/game_raylib/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gold-miner/internal/app"
	"gold-miner/internal/audio"
	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/state"
)

func readInput() input.Commands {
	in := input.Commands{
		Fire:  rl.IsKeyPressed(rl.KeyDown),
		Start: rl.IsKeyPressed(rl.KeyEnter),
		Stop:  rl.IsKeyPressed(rl.KeyS),
		Pause: rl.IsKeyPressed(rl.KeyP),
		Quit:  rl.IsKeyPressed(rl.KeyEscape),
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		in = in.Merge(input.Click(float64(pos.X), float64(pos.Y)))
	}
	return in
}

func main() {
	// --- Флаги командной строки ---
	settings, err := config.FromCommandLine(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	game, field, err := app.NewSession(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	// --- Инициализация Raylib ---
	rl.InitWindow(int32(settings.Width), int32(settings.Height), fmt.Sprintf("%s (%s)", config.WindowTitle, settings.Variant))
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)
	rl.SetExitKey(rl.KeyNull) // Esc обрабатываем сами

	sounds := audio.NewSoundManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer sounds.Close()
	sounds.Subscribe(game.EventDispatcher)

	sm := state.NewRoot(game, field, game.EventDispatcher)
	surface := newRaylibSurface(settings.Width, settings.Height)

	lastUpdateTime := time.Now()

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		in := readInput()
		if in.Quit {
			break
		}
		sm.Update(deltaTime, in)

		// --- Отрисовка ---
		rl.BeginDrawing()
		surface.Clear()
		sm.Draw(surface)
		if settings.Verbose {
			rl.DrawFPS(10, int32(settings.Height-20))
		}
		rl.EndDrawing()
	}
}
