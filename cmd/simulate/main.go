package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/metroidvania/assets"
	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/headless"
	"github.com/automoto/metroidvania/shared/movement"
)

func main() {
	scenarioPath := flag.String("scenario", "scenarios/jump.yaml", "Scenario file to replay")
	realtime := flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	levelsDir := flag.String("levels", "", "Directory containing levels/*.tmx (empty = embedded assets)")
	trace := flag.Bool("trace", false, "Log the actor state every tick")
	flag.Parse()

	scenario, err := headless.LoadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	var levels fs.FS = assets.FS()
	if *levelsDir != "" {
		levels = os.DirFS(*levelsDir)
	}

	sim, err := headless.NewSimulation(scenario, headless.Options{
		Tuning:  config.Player.Movement(),
		Width:   config.Player.CollisionWidth,
		Height:  config.Player.CollisionHeight,
		OffsetX: config.Player.CollisionOffsetX,
		OffsetY: config.Player.CollisionOffsetY,
		Levels:  levels,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	if *trace {
		sim.OnTick(func(tick int, s movement.Snapshot) {
			log.Printf("tick %d: %s pos=(%.2f, %.2f) vel=(%.2f, %.2f) grounded=%t",
				tick, s.State, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.Grounded)
		})
	}

	log.Printf("Replaying %s on level %q (%d frames, dt %.4f)",
		*scenarioPath, sim.Level().Name, scenario.Frames(), scenario.DT)

	if *realtime {
		loop, err := headless.NewGameLoop(sim, config.C.TickRate)
		if err != nil {
			log.Fatalf("Failed to create game loop: %v", err)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Stopping simulation...")
			loop.Stop()
		}()

		if err := loop.Run(); err != nil {
			log.Fatalf("Simulation error: %v", err)
		}
	} else if _, err := sim.Run(); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}

	result := sim.Result()
	final := result.Final
	log.Printf("Finished after %d ticks: %s at (%.2f, %.2f), grounded=%t, landings=%d, apex y=%.2f",
		result.Ticks, final.State, final.Position.X, final.Position.Y, final.Grounded, result.Landings, result.Apex)
}
