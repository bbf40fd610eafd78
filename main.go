package main

import (
	"image"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts *config.Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deps := scenes.Deps{
		Input: systems.Keyboard{},
		Clock: systems.TickClock{},
		Rand:  rand.New(rand.NewSource(seed)),
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if opts.SkipMenu {
		systems.SaveCurrentSettings(opts.Mode)
		g.scene = scenes.NewModeScene(g, opts.Mode, deps)
	} else {
		g.scene = scenes.NewMenuScene(g, deps)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	opts, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		systems.ApplySavedSettings(saved)
	}
	// Flags win over saved settings
	opts.Apply()

	if err := config.Game.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := config.C.Validate(config.Game); err != nil {
		log.Fatal(err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
