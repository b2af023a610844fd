package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/shooter"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAudioEnabled, config.EnvMasterVolume, config.EnvSFXVolumes, config.EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "Car Shooter", cfg.Title)
	assert.True(t, cfg.ShowColliders)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.MasterVolume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, shooter.InitialCars, cfg.Tuning.InitialCars)
	assert.Equal(t, shooter.DefaultMarbles, cfg.Tuning.Marbles)
	require.NoError(t, cfg.Validate())
}

func TestBindFlags(t *testing.T) {
	cfg := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)

	err := fs.Parse([]string{"-debug", "-ticks", "100", "-seed", "42", "-marbles", "a,b", "-audio=false", "-cars", "3"})
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 100, cfg.Headless.Ticks)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, []string{"a", "b"}, cfg.Tuning.Marbles)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 3, cfg.Tuning.InitialCars)
	// untouched flags keep their defaults
	assert.Equal(t, 1280, cfg.Width)
}

func TestApplyEnvUnset(t *testing.T) {
	clearEnv(t)

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(nil))
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAudioEnabled, "false")
	t.Setenv(config.EnvMasterVolume, "80")
	t.Setenv(config.EnvSFXVolumes, `{"Impact2": 0.25, "music": 0}`)
	t.Setenv(config.EnvSeed, "1234")

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(nil))

	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.8, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, 0.25, cfg.Audio.EffectVolume("impact2"))
	assert.Equal(t, 0.0, cfg.Audio.EffectVolume("Music"))
	assert.Equal(t, 1.0, cfg.Audio.EffectVolume("confirmation1"))
	assert.Equal(t, uint64(1234), cfg.Seed)
}

func TestApplyEnvKeepsExplicitFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSeed, "1234")
	t.Setenv(config.EnvMasterVolume, "80")
	t.Setenv(config.EnvAudioEnabled, "false")

	cfg := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "5", "-volume", "0.3"}))
	require.NoError(t, cfg.ApplyEnv(fs))

	assert.Equal(t, uint64(5), cfg.Seed)
	assert.InDelta(t, 0.3, cfg.Audio.MasterVolume, 1e-9)
	// no -audio flag was given, so the environment still applies
	assert.False(t, cfg.Audio.Enabled)
}

func TestApplyEnvClampsVolume(t *testing.T) {
	clearEnv(t)

	cfg := config.Default()
	t.Setenv(config.EnvMasterVolume, "150")
	require.NoError(t, cfg.ApplyEnv(nil))
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)

	t.Setenv(config.EnvMasterVolume, "-20")
	require.NoError(t, cfg.ApplyEnv(nil))
	assert.Equal(t, 0.0, cfg.Audio.MasterVolume)
}

func TestApplyEnvMalformed(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAudioEnabled, "maybe")
	t.Setenv(config.EnvSFXVolumes, "{not json")

	cfg := config.Default()
	err := cfg.ApplyEnv(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvAudioEnabled)
	assert.Contains(t, err.Error(), config.EnvSFXVolumes)
	assert.True(t, cfg.Audio.Enabled, "malformed value must not change the field")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "carshooter.env")
	require.NoError(t, os.WriteFile(path, []byte("CARSHOOTER_SEED=77\nCARSHOOTER_MASTER_VOLUME=10\n"), 0o600))

	// the file only fills unset variables
	require.NoError(t, os.Unsetenv(config.EnvSeed))
	t.Setenv(config.EnvMasterVolume, "30")
	require.NoError(t, config.LoadEnvFile(path))

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(nil))
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.InDelta(t, 0.3, cfg.Audio.MasterVolume, 1e-9)
}

func TestLoadEnvFileMissing(t *testing.T) {
	err := config.LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.env")
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0
	cfg.Audio.MasterVolume = 2
	cfg.Headless.DeltaTime = 0
	cfg.Tuning.Marbles = []string{"m", "m"}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "master volume", "dt", "duplicate marble"} {
		assert.Contains(t, err.Error(), want)
	}
}
