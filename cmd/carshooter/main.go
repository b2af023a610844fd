package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/carshooter/audio"
	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/world"
)

func main() {
	cfg := config.Default()
	envFile := flag.String("env", "", "load CARSHOOTER_* variables from this file")
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

	sounds := audio.NewPlayer(cfg.Audio)
	if err := sounds.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sounds.Close()

	game, err := world.NewGame(cfg, sounds)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("car shooter: seed %d, %d cars", game.Seed, cfg.Tuning.InitialCars)

	app := newApp(cfg, game)
	sounds.StartMusic()

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("run: %v", err)
	}

	state := game.State.Get()
	log.Printf("final score: %d points, %d shots, %d cars escaped", state.Score.Points, state.Stats.Shots, state.Stats.CarsEscaped)
}
