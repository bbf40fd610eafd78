package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Deps are the collaborators a mode pipeline reads from.
type Deps struct {
	Input systems.InputSource
	Clock systems.Clock
	Rand  systems.Random
}

// BuildMode creates the court for a mode and its per-frame pipeline.
// Gameplay stages are frozen while paused. Back navigation and rendering
// are left to the caller.
func BuildMode(mode cfg.ModeID, deps Deps) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateMode(e, mode, firstServer(mode, deps.Rand))

	for _, system := range systems.ModeSystems(deps.Input, deps.Clock, deps.Rand) {
		e.AddSystem(system)
	}

	return e
}

// firstServer picks the side serving first: random when the mode allows
// it, otherwise the left paddle.
func firstServer(mode cfg.ModeID, rng systems.Random) components.Side {
	if cfg.Modes[mode].RandomServe && rng.Intn(2) == 1 {
		return components.SideRight
	}
	return components.SideLeft
}

// ModeScene runs one game mode until the player goes back to the menu
type ModeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	mode         cfg.ModeID
	deps         Deps
	once         sync.Once
}

// NewModeScene creates a scene for a mode
func NewModeScene(sc SceneChanger, mode cfg.ModeID, deps Deps) *ModeScene {
	return &ModeScene{sceneChanger: sc, mode: mode, deps: deps}
}

func (ms *ModeScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *ModeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *ModeScene) configure() {
	ms.ecs = BuildMode(ms.mode, ms.deps)

	createMenuScene := func() interface{} {
		return NewMenuScene(ms.sceneChanger, ms.deps)
	}
	// Last: it despawns the mode.
	ms.ecs.AddSystem(systems.NewUpdateBack(ms.sceneChanger, createMenuScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	if cfg.Debug.LogRounds {
		subscribeCueLog(ms.ecs.World)
	}
	log.Printf("Starting %v", ms.mode)
}

// subscribeCueLog logs the events an audio collaborator would turn into sounds.
func subscribeCueLog(w donburi.World) {
	systems.BallHitPaddleEvent.Subscribe(w, func(w donburi.World, ev components.BallHitPaddle) {
		log.Printf("cue: %v paddle, %v face", ev.Paddle, ev.Face)
	})
	systems.BallHitWallEvent.Subscribe(w, func(w donburi.World, ev components.BallHitWall) {
		log.Printf("cue: wall, %v face", ev.Face)
	})
	systems.GameOverEvent.Subscribe(w, func(w donburi.World, ev components.GameOver) {
		log.Printf("cue: game over, %v wins", ev.Winner)
	})
}
