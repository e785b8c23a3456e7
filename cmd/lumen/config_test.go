package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/config"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	require.Contains(t, out, "# source: defaults\n")
	require.Contains(t, out, "frame_rate: 60\n")
	require.Contains(t, out, "brand: fing\n")
}

func TestConfigCommandOutputLoadsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "engine:\n  initial_speed: 2.5\ntheme:\n  brand: sentinel\n  hue: 300\n")

	out, _, err := execute(t, "--config", path, "config")
	require.NoError(t, err)
	require.Contains(t, out, "# source: "+path+"\n")

	roundTrip := filepath.Join(dir, "round-trip.yaml")
	require.NoError(t, os.WriteFile(roundTrip, []byte(out), 0o644))
	cfg, err := config.ParseConfig(roundTrip)
	require.NoError(t, err)
	require.Equal(t, 2.5, cfg.Engine.InitialSpeed)
	require.Equal(t, "sentinel", cfg.Theme.Brand)
	require.Equal(t, 300.0, cfg.Theme.Hue)
}
