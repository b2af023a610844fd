package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/carshooter/ecs/debugui"
	"github.com/plus3/carshooter/world"
)

const eventTail = 12

// spawnGameWindow adds a debug window showing the simulation state.
func spawnGameWindow(game *world.Game) {
	game.Storage.Spawn(debugui.ImguiItem{Render: func() {
		state := game.State.Get()
		if state == nil {
			return
		}

		imgui.SetNextWindowPosV(imgui.NewVec2(770, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)
		if !imgui.BeginV("Car Shooter", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		imgui.Text(fmt.Sprintf("Points: %d", state.Score.Points))
		imgui.Text(fmt.Sprintf("Cars remaining: %d", state.Score.CarsRemaining))
		imgui.Text(fmt.Sprintf("Ammo: %v", state.Ammo.Identities()))
		imgui.Text(fmt.Sprintf("Next car in %.2fs", state.Spawner.Remaining()))
		imgui.Text(fmt.Sprintf("Contacts: %d", game.Engine.Contacts()))
		imgui.Separator()

		debugui.Inspect("Stats", &state.Stats)
		debugui.Inspect("Tuning", &state.Tuning)

		if imgui.TreeNodeStr("Events") {
			entries := game.Engine.Log().Entries()
			for _, e := range entries[max(len(entries)-eventTail, 0):] {
				imgui.Text(e.String())
			}
			imgui.TreePop()
		}
		imgui.End()
	}})
}
