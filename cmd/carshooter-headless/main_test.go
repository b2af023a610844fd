package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/carshooter/config"
)

func headlessConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 3
	cfg.Headless.Ticks = 60
	return cfg
}

func TestExecuteWritesReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, execute(headlessConfig(), options{}, &buf))

	assert.Contains(t, buf.String(), "--- Car Shooter Report ---")
	assert.Contains(t, buf.String(), "- **Ticks Simulated:** 60")
	assert.Contains(t, buf.String(), "--- End of Report ---")
}

func TestExecuteStopsProfileOnError(t *testing.T) {
	dir := t.TempDir()
	opts := options{profile: "cpu", profileDir: dir, template: "{{.Nope"}

	err := execute(headlessConfig(), opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate report")

	info, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// a second profiled run only works if the first one was stopped
	require.NoError(t, execute(headlessConfig(), options{profile: "mem", profileDir: dir}, &bytes.Buffer{}))
	assert.FileExists(t, filepath.Join(dir, "mem.pprof"))
}

func TestExecuteRejectsUnknownProfile(t *testing.T) {
	err := execute(headlessConfig(), options{profile: "trace-all"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile mode "trace-all"`)
}

func TestExecuteReportsGameErrors(t *testing.T) {
	cfg := headlessConfig()
	cfg.Tuning.SpawnMax = cfg.Tuning.SpawnMin

	err := execute(cfg, options{profile: "cpu", profileDir: t.TempDir()}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn interval")
}
