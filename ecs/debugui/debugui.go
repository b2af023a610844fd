// Package debugui draws Dear ImGui debug windows for an ECS world. Windows are
// ordinary entities carrying an ImguiItem; ImguiSystem queues their render
// functions so they run when the frame's commands flush.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/carshooter/ecs"
)

// ImguiItem renders one or more ImGui windows each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring whether ImGui wants the mouse or
// keyboard this frame. Game input should be ignored while it does.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}

// RegisterComponents adds the debug UI component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Install spawns the entity browser, component inspector and performance
// windows and registers the ImguiSystem. labeler may be nil.
func Install(storage *ecs.Storage, scheduler *ecs.Scheduler, labeler func(ecs.EntityId) string) {
	RegisterComponents(storage.Registry())
	ecs.NewSingleton[ImguiInputState](storage)

	browser := NewEntityBrowser(50, labeler)
	inspector := &ComponentInspector{}
	perf := NewPerformanceStats(120)

	storage.Spawn(ImguiItem{Render: func() {
		browser.Render(storage)
		inspector.Render(storage, browser.Selected())
	}})
	storage.Spawn(ImguiItem{Render: func() {
		perf.Render(storage, scheduler)
	}})

	scheduler.Register(&ImguiSystem{})
}
