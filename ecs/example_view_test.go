package ecs_test

import (
	"fmt"

	"github.com/plus3/carshooter/ecs"
)

// ExampleView shows on-demand iteration. Views need no Execute call, which
// makes them the right tool outside of systems and for one-off lookups.
func ExampleView() {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Name{Value: "car24"}, Position{X: -740, Y: 120})
	storage.Spawn(Name{Value: "marble3"}, Position{X: 0, Y: -275}, Velocity{DY: 600})
	storage.Spawn(Name{Value: "car23"}, Position{X: -740, Y: 10})

	movers := ecs.NewView[struct {
		*Name
		*Position
		Velocity *Velocity `ecs:"optional"`
	}](storage)

	for item := range movers.Values() {
		moving := item.Velocity != nil
		fmt.Printf("%s at (%.0f, %.0f) moving=%v\n", item.Name.Value, item.Position.X, item.Position.Y, moving)
	}

	// Output:
	// car24 at (-740, 120) moving=false
	// car23 at (-740, 10) moving=false
	// marble3 at (0, -275) moving=true
}
