package headless

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// GameLoop paces a simulation in real time, one tick per ticker period.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

// ErrInvalidTickRate is returned by NewGameLoop for a rate that cannot pace a ticker.
var ErrInvalidTickRate = errors.New("invalid tick rate")

func NewGameLoop(sim *Simulation, tickRate int) (*GameLoop, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTickRate, tickRate)
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}, nil
}

// Run blocks until the simulation finishes, fails, or Stop is called.
func (g *GameLoop) Run() error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for !g.sim.Done() {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			if err := g.sim.Tick(); err != nil {
				return err
			}
		}
	}

	log.Println("Game loop finished")
	return nil
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
