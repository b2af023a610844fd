// Package config collects the settings of the car shooter commands: window,
// audio, headless run parameters and gameplay tuning.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/plus3/carshooter/shooter"
)

const (
	EnvAudioEnabled = "CARSHOOTER_AUDIO_ENABLED"
	EnvMasterVolume = "CARSHOOTER_MASTER_VOLUME"
	EnvSFXVolumes   = "CARSHOOTER_SFX_VOLUMES"
	EnvSeed         = "CARSHOOTER_SEED"
)

// Audio controls sound output.
type Audio struct {
	Enabled      bool
	Music        bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	// EffectVolumes scales individual sounds, keyed by lower-case name
	// ("impact2", "confirmation1", "music").
	EffectVolumes map[string]float64
}

// Headless controls a windowless run.
type Headless struct {
	Ticks     int
	DeltaTime float64
	// FireEvery presses fire on every n-th tick. Zero never fires.
	FireEvery int
	Report    string // template file, empty uses the built-in report
}

type Config struct {
	Title         string
	Width, Height int
	Debug         bool
	ShowColliders bool
	Verbose       bool
	Seed          uint64 // zero picks a seed at startup
	Audio         Audio
	Headless      Headless
	Tuning        shooter.Tuning
}

func Default() Config {
	return Config{
		Title:         "Car Shooter",
		Width:         1280,
		Height:        720,
		ShowColliders: true,
		Audio: Audio{
			Enabled:      true,
			Music:        true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			EffectVolumes: map[string]float64{
				"impact2":       1.0,
				"confirmation1": 1.0,
				"music":         1.0,
			},
		},
		Headless: Headless{
			Ticks:     3600,
			DeltaTime: 1.0 / 60.0,
			FireEvery: 20,
		},
		Tuning: shooter.DefaultTuning(),
	}
}

// BindFlags registers the command-line flags that override c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the imgui debug overlay")
	fs.BoolVar(&c.ShowColliders, "colliders", c.ShowColliders, "draw collider outlines")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log every host event")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 = random)")

	fs.BoolVar(&c.Audio.Enabled, "audio", c.Audio.Enabled, "enable sound")
	fs.BoolVar(&c.Audio.Music, "music", c.Audio.Music, "play background music")
	fs.Float64Var(&c.Audio.MasterVolume, "volume", c.Audio.MasterVolume, "master volume 0.0-1.0")

	fs.IntVar(&c.Headless.Ticks, "ticks", c.Headless.Ticks, "headless: number of ticks to simulate")
	fs.Float64Var(&c.Headless.DeltaTime, "dt", c.Headless.DeltaTime, "headless: seconds per tick")
	fs.IntVar(&c.Headless.FireEvery, "fire-every", c.Headless.FireEvery, "headless: press fire every n ticks (0 = never)")
	fs.StringVar(&c.Headless.Report, "report", c.Headless.Report, "headless: report template file")

	fs.IntVar(&c.Tuning.InitialCars, "cars", c.Tuning.InitialCars, "cars to spawn")
	fs.Float64Var(&c.Tuning.MarbleSpeed, "marble-speed", c.Tuning.MarbleSpeed, "marble speed")
	fs.Float64Var(&c.Tuning.CarSpeed, "car-speed", c.Tuning.CarSpeed, "car speed")
	fs.Func("marbles", "comma separated marble identities", func(s string) error {
		c.Tuning.Marbles = strings.Split(s, ",")
		return nil
	})
}

// LoadEnvFile merges the variables of a .env style file into the process
// environment. Variables that are already set win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// envFlags names the flag that sets the same field as each variable.
var envFlags = map[string]string{
	EnvAudioEnabled: "audio",
	EnvMasterVolume: "volume",
	EnvSeed:         "seed",
}

// ApplyEnv fills c from CARSHOOTER_* environment variables. A variable is
// skipped when fs was given its flag on the command line, so explicit flags
// win. fs may be nil. Malformed values are reported and leave the field
// unchanged.
func (c *Config) ApplyEnv(fs *flag.FlagSet) error {
	var errs []error

	explicit := make(map[string]bool)
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	}
	getenv := func(key string) string {
		if name, ok := envFlags[key]; ok && explicit[name] {
			return ""
		}
		return os.Getenv(key)
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMasterVolume, err))
		}
	}

	if v := getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.EffectVolumes == nil {
				c.Audio.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				c.Audio.EffectVolumes[strings.ToLower(name)] = vol
			}
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSFXVolumes, err))
		}
	}

	if v := getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		}
	}

	return errors.Join(errs...)
}

// EffectVolume returns the scale for the named sound, 1.0 if unset.
func (a Audio) EffectVolume(name string) float64 {
	if v, ok := a.EffectVolumes[strings.ToLower(name)]; ok {
		return v
	}
	return 1.0
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master volume %g outside [0, 1]", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate %d must be positive", c.Audio.SampleRate))
	}
	for name, v := range c.Audio.EffectVolumes {
		if v < 0 {
			errs = append(errs, fmt.Errorf("volume for %s is negative", name))
		}
	}
	if c.Headless.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks %d is negative", c.Headless.Ticks))
	}
	if c.Headless.DeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("dt %g must be positive", c.Headless.DeltaTime))
	}
	if c.Headless.FireEvery < 0 {
		errs = append(errs, fmt.Errorf("fire-every %d is negative", c.Headless.FireEvery))
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tuning: %w", err))
	}
	return errors.Join(errs...)
}
