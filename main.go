package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/fonts"
	"github.com/automoto/metroidvania/scenes"
	"github.com/automoto/metroidvania/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levelName string) *Game {
	if err := fonts.LoadHUD(goregular.TTF, 12); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(levelName),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", config.Level.Default, "level to load from assets/levels (file name without .tmx)")
	debug := flag.Bool("debug", false, "start with the collision overlay enabled")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("metroidvania")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Overlay = true
	}

	err := ebiten.RunGame(NewGame(*levelName))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
