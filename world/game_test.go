package world_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/shooter"
	"github.com/plus3/carshooter/world"
)

func TestNewGameSetup(t *testing.T) {
	g, _ := newTestGame(t, nil)

	player, ok := g.Engine.Entity(shooter.PlayerLabel)
	require.True(t, ok)
	assert.Equal(t, shooter.PresetRacingBarrierRed, player.Appearance.Preset)
	assert.Equal(t, math.Pi/2, player.Transform.Rotation)
	assert.Equal(t, 0.5, player.Transform.Scale)
	assert.Equal(t, shooter.Vec2{X: 0, Y: shooter.PlayerY}, player.Transform.Translation)
	assert.Equal(t, shooter.PlayerLayer, player.Transform.Layer)

	assert.Equal(t, "Cars left: 25", g.Engine.Text(shooter.TextCarsLeft))
	assert.Equal(t, "Points: 0", g.Engine.Text(shooter.TextPoints))

	state := g.State.Get()
	require.NotNil(t, state)
	assert.Equal(t, shooter.DefaultMarbles, state.Ammo.Identities())
	assert.Equal(t, 25, state.Score.CarsRemaining)
	assert.Equal(t, uint64(7), g.Seed)
}

func TestNewGameRejectsBadTuning(t *testing.T) {
	cfg := config.Default()
	cfg.Tuning.SpawnMax = cfg.Tuning.SpawnMin

	_, err := world.NewGame(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn interval")
}

func TestNewGameRejectsMarbleNamedLikeCar(t *testing.T) {
	cfg := config.Default()
	cfg.Tuning.Marbles = []string{"marble1", "car24"}
	require.Error(t, cfg.Validate())

	_, err := world.NewGame(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"car24" uses the car prefix`)
}

func TestNewGamePicksSeed(t *testing.T) {
	cfg := config.Default()
	g, err := world.NewGame(cfg, nil)
	require.NoError(t, err)
	assert.NotZero(t, g.Seed)
}

func TestFirstStepSpawnsCar(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(dt)

	car, ok := g.Engine.Entity("car24")
	require.True(t, ok)
	assert.True(t, car.Is(shooter.CategoryCar))
	assert.Equal(t, shooter.CarSpawnX, car.Transform.Translation.X)
	assert.GreaterOrEqual(t, car.Transform.Translation.Y, shooter.CarMinY)
	assert.Less(t, car.Transform.Translation.Y, shooter.CarMaxY)
	assert.True(t, car.Collider.Enabled)
	assert.Equal(t, "Cars left: 24", g.Engine.Text(shooter.TextCarsLeft))
	assert.Equal(t, 1, g.Scheduler.Frames())
}

func TestFirePopsPoolInOrder(t *testing.T) {
	g, sounds := newTestGame(t, nil)

	for _, want := range []string{"marble3", "marble2", "marble1"} {
		press(g)
		// let the marble clear the spawn point before the next one appears
		for range 5 {
			g.Step(dt)
		}
		marble, ok := g.Engine.Entity(want)
		require.True(t, ok, want)
		assert.True(t, marble.Is(shooter.CategoryProjectile))
		assert.True(t, marble.Collider.Enabled)
		assert.Equal(t, shooter.MarbleLayer, marble.Transform.Layer)
	}
	assert.Zero(t, g.State.Get().Ammo.Len())

	press(g)
	assert.Equal(t, 3, g.State.Get().Stats.Shots, "firing with an empty pool does nothing")
	assert.Len(t, sounds.played, 3)
	for _, p := range sounds.played {
		assert.Equal(t, played{shooter.SfxImpact2, shooter.FireVolume}, p)
	}
}

func TestHoldingFireShootsOnce(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.Engine.SetFireButton(true)
	g.Step(dt)
	g.Engine.SetFireButton(true)
	g.Step(dt)
	g.Step(dt)

	assert.Equal(t, 1, g.State.Get().Stats.Shots)
	assert.Equal(t, 2, g.State.Get().Ammo.Len())
}

func TestMarbleHitsCar(t *testing.T) {
	g, sounds := newTestGame(t, nil)
	press(g)

	marble, ok := g.Engine.Entity("marble3")
	require.True(t, ok)
	car, ok := g.Engine.Entity("car24")
	require.True(t, ok)
	car.Transform.Translation = marble.Transform.Translation

	g.Step(dt) // collision detected at the end of this frame
	_, ok = g.Engine.Entity("car24")
	require.True(t, ok)

	g.Step(dt) // and resolved at the start of the next
	_, carAlive := g.Engine.Entity("car24")
	_, marbleAlive := g.Engine.Entity("marble3")
	assert.False(t, carAlive)
	assert.False(t, marbleAlive)

	state := g.State.Get()
	assert.Equal(t, 1, state.Score.Points)
	assert.Equal(t, 1, state.Stats.Hits)
	assert.Equal(t, []string{"marble1", "marble2", "marble3"}, state.Ammo.Identities())
	assert.Equal(t, "Points: 1", g.Engine.Text(shooter.TextPoints))
	assert.Equal(t, []played{
		{shooter.SfxImpact2, shooter.FireVolume},
		{shooter.SfxConfirmation1, shooter.HitVolume},
	}, sounds.played)

	// the recycled marble fires again
	press(g)
	_, ok = g.Engine.Entity("marble3")
	assert.True(t, ok)
}

func TestMarbleLostOffScreen(t *testing.T) {
	g, _ := newTestGame(t, nil)
	press(g)

	marble, ok := g.Engine.Entity("marble3")
	require.True(t, ok)
	marble.Transform.Translation.Y = 399

	g.Step(dt)
	_, ok = g.Engine.Entity("marble3")
	assert.False(t, ok)

	state := g.State.Get()
	assert.Equal(t, 1, state.Stats.Lost)
	assert.Equal(t, []string{"marble1", "marble2"}, state.Ammo.Identities(), "lost marbles are not recycled")
}

func TestLastCar(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.Config) { c.Tuning.InitialCars = 1 })

	g.Step(dt)
	_, ok := g.Engine.Entity("car0")
	assert.True(t, ok)
	assert.Equal(t, "Cars left: 0", g.Engine.Text(shooter.TextCarsLeft))

	for range 300 {
		g.Step(dt)
	}
	assert.Equal(t, 1, g.State.Get().Stats.CarsSpawned)
	assert.Zero(t, g.State.Get().Score.CarsRemaining)
}

func TestSoundsWaitForFlush(t *testing.T) {
	g, sounds := newTestGame(t, nil)
	var during int
	g.Scheduler.Register(systemFunc(func() { during = len(sounds.played) }))

	g.Engine.SetFireButton(true)
	g.Step(dt)

	assert.Zero(t, during, "sounds are queued while systems run")
	assert.Len(t, sounds.played, 1)
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() string {
		g, _ := newTestGame(t, nil)
		for i := range 900 {
			g.Engine.SetFireButton(i%15 == 0)
			g.Step(dt)
		}
		return g.Engine.Log().String()
	}
	assert.Equal(t, run(), run())
}

func TestPlayToTheEnd(t *testing.T) {
	g, _ := newTestGame(t, nil)

	for i := 0; i < 6000 && !g.Finished(); i++ {
		g.Engine.SetFireButton(i%8 == 0)
		g.Step(dt)

		state := g.State.Get()
		for _, id := range state.Ammo.Identities() {
			_, live := g.Engine.Entity(id)
			require.False(t, live, "%s is both pooled and live", id)
		}
		_, ok := g.Engine.Entity(shooter.PlayerLabel)
		require.True(t, ok)
	}

	require.True(t, g.Finished())
	state := g.State.Get()
	assert.Equal(t, 25, state.Stats.CarsSpawned)
	assert.Equal(t, state.Stats.Hits, state.Score.Points)
	assert.GreaterOrEqual(t, state.Stats.Hits+state.Stats.CarsEscaped, 25)
	assert.Equal(t, 3, state.Ammo.Len()+state.Stats.Lost+countProjectiles(g))
}

func countProjectiles(g *world.Game) int {
	n := 0
	for _, ent := range g.Engine.Entities() {
		if ent.Is(shooter.CategoryProjectile) {
			n++
		}
	}
	return n
}
