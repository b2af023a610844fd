package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
	"github.com/plus3/carshooter/world"
)

type Report struct {
	// Configuration
	Seed      uint64
	DeltaTime float64
	FireEvery int

	// Results
	Ticks       int
	Finished    bool
	Interrupted bool
	WallTime    time.Duration
	FrameTime   Stats
	Score       shooter.ScoreBoard
	Stats       shooter.Stats
	Ammo        []string
	Entities    int
	Systems     []ecs.SystemStats
	Events      map[world.EventKind]int
	Tail        []world.Event
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const tailLength = 10

func (r *Report) collect(game *world.Game) {
	state := game.State.Get()
	r.Ticks = game.Scheduler.Frames()
	r.Score = state.Score
	r.Stats = state.Stats
	r.Ammo = state.Ammo.Identities()
	r.Entities = game.Engine.Len()
	r.Systems = game.Scheduler.GetStats().Systems

	log := game.Engine.Log()
	r.Events = make(map[world.EventKind]int)
	for _, kind := range []world.EventKind{world.EventCreate, world.EventRemove, world.EventCollision, world.EventSound, world.EventText} {
		r.Events[kind] = log.Count(kind)
	}
	entries := log.Entries()
	r.Tail = entries[max(0, len(entries)-tailLength):]
}

const reportTemplate = `
# Car Shooter Headless Report

## Run Configuration
- **Seed:** {{.Seed}}
- **Tick Length:** {{.DeltaTime | seconds}}
- **Fire Every:** {{if .FireEvery}}{{.FireEvery}} ticks{{else}}never{{end}}

## Outcome
- **Ticks Simulated:** {{.Ticks}}{{if .Finished}} (all cars gone){{end}}{{if .Interrupted}} (wall time limit){{end}}
- **Points:** {{.Score.Points}}
- **Cars Remaining:** {{.Score.CarsRemaining}}
- **Cars Escaped:** {{.Stats.CarsEscaped}}
- **Shots / Hits:** {{.Stats.Shots}} / {{.Stats.Hits}} ({{pct .Stats.Hits .Stats.Shots}})
- **Ammo Left:** {{len .Ammo}} {{.Ammo}}
- **Projectiles Lost:** {{.Stats.Lost}}
- **Live Entities:** {{.Entities}}

## Frame Time
- **Wall Time:** {{.WallTime}}
- **Avg:** {{.FrameTime.Avg}}
- **Min:** {{.FrameTime.Min}}
- **Max:** {{.FrameTime.Max}}

## Systems
{{range .Systems}}- {{printf "%-18s" .Name}} runs {{.ExecutionCount}}, avg {{.AvgDuration}}, max {{.MaxDuration}}, total {{.TotalDuration}}
{{end}}
## Events
{{range $kind, $n := .Events}}- {{$kind}}: {{$n}}
{{end}}{{if .Tail}}
Last {{len .Tail}}:
{{range .Tail}}    {{.}}
{{end}}{{end}}`

// Generate renders the report with text, or with the built-in template when
// text is empty.
func (r *Report) Generate(w io.Writer, text string) error {
	if text == "" {
		text = reportTemplate
	}

	fm := template.FuncMap{
		"seconds": func(s float64) string {
			return time.Duration(s * float64(time.Second)).String()
		},
		"pct": func(a, b int) string {
			if b == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(a)/float64(b))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(text)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
