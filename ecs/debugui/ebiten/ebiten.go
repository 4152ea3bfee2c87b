// Package ebiten connects the Dear ImGui ebiten backend to debugui.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sokoban/ecs"
	"github.com/plus3/sokoban/ecs/debugui"
)

// ImguiBackend wraps the ebiten Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay owns a storage of ImguiItem panels and the scheduler running
// debugui.ImguiSystem over it. Call Update from ebiten's Update and Draw from
// ebiten's Draw, after the game has drawn.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[debugui.ImguiInputState]
}

// NewOverlay creates the backend window. It must be called before
// ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[ImguiBackend](storage, ImguiBackend{EbitenBackend: backend})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	return &Overlay{
		backend:   backend,
		storage:   storage,
		scheduler: scheduler,
		input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
	}
}

// Add spawns a panel.
func (o *Overlay) Add(render func()) {
	o.storage.Spawn(debugui.ImguiItem{Render: render})
}

// WantsKeyboard reports whether ImGui captured the keyboard last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

func (o *Overlay) Update(dt float64) error {
	o.backend.BeginFrame()
	err := o.scheduler.Once(dt)
	o.backend.EndFrame()
	return err
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
