package shooter

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MarbleSpeed  = 600.0
	CarSpeed     = 250.0
	TopBound     = 400.0  // entities above this are culled
	RightBound   = 750.0  // entities right of this are culled
	PlayerY      = -325.0 // fixed baseline of the player
	MarbleSpawnY = -275.0 // just above the player
	MarbleLayer  = 5.0
	PlayerLayer  = 10.0
	CarSpawnX    = -740.0
	CarMinY      = -100.0
	CarMaxY      = 325.0
	SpawnMin     = 0.1  // seconds
	SpawnMax     = 1.25 // seconds
	InitialCars  = 25
	FireVolume   = 0.7
	HitVolume    = 0.5
)

// DefaultMarbles is the initial contents of the ammo pool, bottom first.
var DefaultMarbles = []string{"marble1", "marble2", "marble3"}

// Tuning holds the gameplay numbers. DefaultTuning reproduces the classic game.
type Tuning struct {
	MarbleSpeed  float64
	CarSpeed     float64
	TopBound     float64
	RightBound   float64
	MarbleSpawnY float64
	MarbleLayer  float64
	CarSpawnX    float64
	CarMinY      float64
	CarMaxY      float64
	SpawnMin     float64
	SpawnMax     float64
	InitialCars  int
	Marbles      []string
	FireVolume   float64
	HitVolume    float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MarbleSpeed:  MarbleSpeed,
		CarSpeed:     CarSpeed,
		TopBound:     TopBound,
		RightBound:   RightBound,
		MarbleSpawnY: MarbleSpawnY,
		MarbleLayer:  MarbleLayer,
		CarSpawnX:    CarSpawnX,
		CarMinY:      CarMinY,
		CarMaxY:      CarMaxY,
		SpawnMin:     SpawnMin,
		SpawnMax:     SpawnMax,
		InitialCars:  InitialCars,
		Marbles:      append([]string(nil), DefaultMarbles...),
		FireVolume:   FireVolume,
		HitVolume:    HitVolume,
	}
}

// Validate checks the tuning for values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.SpawnMin < 0 || t.SpawnMax <= t.SpawnMin {
		errs = append(errs, fmt.Errorf("spawn interval [%g, %g) is empty or negative", t.SpawnMin, t.SpawnMax))
	}
	if t.CarMaxY <= t.CarMinY {
		errs = append(errs, fmt.Errorf("car spawn range [%g, %g) is empty", t.CarMinY, t.CarMaxY))
	}
	if t.InitialCars < 0 {
		errs = append(errs, fmt.Errorf("initial cars %d is negative", t.InitialCars))
	}
	seen := make(map[string]bool, len(t.Marbles))
	for _, id := range t.Marbles {
		switch {
		case id == "" || id == PlayerLabel:
			errs = append(errs, fmt.Errorf("invalid marble identity %q", id))
		case strings.HasPrefix(id, CarLabelPrefix):
			// a spawned car with the same label would replace the live marble
			errs = append(errs, fmt.Errorf("marble identity %q uses the car prefix %q", id, CarLabelPrefix))
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate marble identity %q", id))
		}
		seen[id] = true
	}
	return errors.Join(errs...)
}
