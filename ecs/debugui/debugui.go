// Package debugui draws Dear ImGui panels over an ECS storage. Panels are
// entities carrying an ImguiItem, so they live in their own storage next to
// the world they inspect.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sokoban/ecs"
)

// ImguiItem holds a render function called once per frame between the
// backend's BeginFrame and EndFrame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring whether ImGui wants the mouse or
// keyboard this frame. Front-ends skip their own input handling when it does.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem render
// function to the end of the tick.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) error {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
	return nil
}

// RegisterComponents registers the component types of this package.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
