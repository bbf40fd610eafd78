package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the mode picker
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createModeScene := func(mode cfg.ModeID) interface{} {
		return NewModeScene(ms.sceneChanger, mode, ms.deps)
	}

	lastMode, hasLast := cfg.Mode1P, false
	if saved, err := systems.LoadSettings(); err == nil {
		lastMode, hasLast = saved.Mode()
	}

	ms.ecs.AddSystem(systems.NewUpdateInput(ms.deps.Input))
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createModeScene))

	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(lastMode, hasLast))
}
