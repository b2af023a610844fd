package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/world"
)

// options are the headless-only flags.
type options struct {
	profile    string // "", "cpu" or "mem"
	profileDir string
	limit      time.Duration
	template   string // report template text, empty for the built-in one
}

func main() {
	cfg := config.Default()
	var opts options
	envFile := flag.String("env", "", "load CARSHOOTER_* variables from this file")
	flag.StringVar(&opts.profile, "profile", "", "write a pprof profile of the run: cpu or mem")
	flag.StringVar(&opts.profileDir, "profile-dir", ".", "directory for the profile")
	flag.DurationVar(&opts.limit, "limit", 0, "stop after this much wall time (0 = no limit)")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if *envFile != "" {
		if err := config.LoadEnvFile(*envFile); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if err := cfg.ApplyEnv(flag.CommandLine); err != nil {
		log.Printf("config: ignoring environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Headless.Report != "" {
		data, err := os.ReadFile(cfg.Headless.Report)
		if err != nil {
			log.Fatalf("report template: %v", err)
		}
		opts.template = string(data)
	}

	if err := execute(cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// startProfile begins the requested profile. The returned stop func is never nil.
func startProfile(mode, dir string) (func(), error) {
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.NoShutdownHook).Stop, nil
}

// execute runs one game and writes its report to w. The profile is stopped
// on every return path.
func execute(cfg config.Config, opts options, w io.Writer) error {
	stop, err := startProfile(opts.profile, opts.profileDir)
	if err != nil {
		return err
	}
	defer stop()

	game, err := world.NewGame(cfg, nil)
	if err != nil {
		return err
	}
	log.Printf("headless run: seed %d, up to %d ticks of %gs", game.Seed, cfg.Headless.Ticks, cfg.Headless.DeltaTime)

	ctx := context.Background()
	if opts.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.limit)
		defer cancel()
	}

	report := run(ctx, game, cfg.Headless)
	log.Println("Simulation finished.")

	fmt.Fprintln(w, "\n--- Car Shooter Report ---")
	if err := report.Generate(w, opts.template); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Fprintln(w, "--- End of Report ---")
	return nil
}

// run steps the game until the tick budget is spent, every car is gone or
// ctx is done. Fire is pressed on every FireEvery-th tick and released on
// the one after it.
func run(ctx context.Context, game *world.Game, h config.Headless) *Report {
	report := &Report{
		Seed:      game.Seed,
		DeltaTime: h.DeltaTime,
		FireEvery: h.FireEvery,
		FrameTime: Stats{Samples: make([]time.Duration, 0, h.Ticks)},
	}

	start := time.Now()
Loop:
	for tick := 0; tick < h.Ticks; tick++ {
		select {
		case <-ctx.Done():
			report.Interrupted = true
			break Loop
		default:
		}

		game.Engine.SetFireButton(h.FireEvery > 0 && tick%h.FireEvery == 0)

		frameStart := time.Now()
		game.Step(h.DeltaTime)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))

		if game.Finished() {
			report.Finished = true
			break
		}
	}
	report.WallTime = time.Since(start)
	report.FrameTime.Finalize()
	report.collect(game)
	return report
}
