package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

func TestRunWatchPrintsMirroredAngle(t *testing.T) {
	app := &AppContext{Config: config.Default(), Logger: logger.Nop()}
	store := stylevars.NewStore()
	var out bytes.Buffer

	err := runWatch(context.Background(), &out, app, watchOptions{
		duration: 200 * time.Millisecond,
		interval: 20 * time.Millisecond,
		speed:    5,
		store:    store,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "--light-angle="), line)
		require.Contains(t, line, "panel: ")
	}

	_, ok := store.Get(stylevars.LightAngle)
	require.True(t, ok, "angle stays mirrored after the engine stops")
}

func TestRunWatchDumpsStoreOnExit(t *testing.T) {
	app := &AppContext{Config: config.Default(), Logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runWatch(ctx, &out, app, watchOptions{
		interval: time.Hour,
		speed:    1,
		dump:     true,
		store:    stylevars.NewStore(),
	})
	require.NoError(t, err)

	dump := out.String()
	require.True(t, strings.HasPrefix(dump, ":root {\n"), dump)
	require.Contains(t, dump, "  --glass-border: hsla(175, 35%, 80%, 0.35);\n")
	require.Contains(t, dump, "  --light-angle: 135;\n")
	require.Contains(t, dump, "  --panel-shadow: -14.1px 14.1px 60px")
}

func TestRunWatchStopsOnCancel(t *testing.T) {
	app := &AppContext{Config: config.Default(), Logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runWatch(ctx, &out, app, watchOptions{
		interval: time.Hour,
		speed:    1,
		store:    stylevars.NewStore(),
	})
	require.NoError(t, err)
	require.Empty(t, out.String())
}

func TestPrintMirroredSkipsEmptyStore(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, printMirrored(&out, stylevars.NewStore()))
	require.Empty(t, out.String())

	store := stylevars.NewStore()
	store.Set(stylevars.LightAngle, "90")
	require.NoError(t, printMirrored(&out, store))
	require.Empty(t, out.String(), "the panel shadow has not been mirrored yet")

	store.SetAll(lighting.ShadowsAt(90).Variables(175, 35))
	require.NoError(t, printMirrored(&out, store))
	require.Equal(t, "--light-angle=  90.0  panel: 0.0px 20.0px 60px rgba(255, 255, 255, 0.8), 0.0px -20.0px 60px rgba(163, 177, 198, 0.6)\n", out.String())
}

func TestWatchCommandRejectsInterval(t *testing.T) {
	_, _, err := execute(t, "watch", "--interval", "0s")

	var cmdErr *lumenerrors.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, "watch", cmdErr.Command)
}
