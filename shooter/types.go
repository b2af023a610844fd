package shooter

import "strconv"

// Vec2 is a position in world units. The origin is the centre of the play
// area, X grows to the right and Y grows upwards.
type Vec2 struct {
	X, Y float64
}

// Category is the explicit type tag every entity carries.
type Category uint8

const (
	CategoryPlayer Category = iota + 1
	CategoryCar
	CategoryProjectile
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryCar:
		return "car"
	case CategoryProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Preset selects the visual representation the host uses for an entity.
type Preset uint8

const (
	PresetRacingBarrierRed Preset = iota
	PresetRollingBallBlue
	PresetRacingCarBlack
	PresetRacingCarBlue
	PresetRacingCarGreen
	PresetRacingCarRed
	PresetRacingCarYellow
)

// CarPresets are the variants a spawned car is drawn from.
var CarPresets = []Preset{
	PresetRacingCarBlack,
	PresetRacingCarBlue,
	PresetRacingCarGreen,
	PresetRacingCarRed,
	PresetRacingCarYellow,
}

var presetNames = [...]string{
	PresetRacingBarrierRed: "RacingBarrierRed",
	PresetRollingBallBlue:  "RollingBallBlue",
	PresetRacingCarBlack:   "RacingCarBlack",
	PresetRacingCarBlue:    "RacingCarBlue",
	PresetRacingCarGreen:   "RacingCarGreen",
	PresetRacingCarRed:     "RacingCarRed",
	PresetRacingCarYellow:  "RacingCarYellow",
}

func (p Preset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return "Unknown"
}

// SoundEffect identifies a one-shot sound the host plays on request.
type SoundEffect uint8

const (
	SfxImpact2 SoundEffect = iota
	SfxConfirmation1
)

func (s SoundEffect) String() string {
	switch s {
	case SfxImpact2:
		return "Impact2"
	case SfxConfirmation1:
		return "Confirmation1"
	default:
		return "Unknown"
	}
}

// TextID names a display text owned by the host.
type TextID string

const (
	TextCarsLeft TextID = "cars left"
	TextPoints   TextID = "points"
)

// PlayerLabel is the label of the one player entity.
const PlayerLabel = "player"

// CarLabelPrefix starts every car label. Marble identities may not use it.
const CarLabelPrefix = "car"

// CarLabel names the car spawned when n cars remain.
func CarLabel(n int) string {
	return CarLabelPrefix + strconv.Itoa(n)
}
