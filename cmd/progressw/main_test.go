package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/T-TRz879/progressw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runLoadConfig(t *testing.T, args ...string) (progressw.Config, error) {
	var (
		cfg progressw.Config
		err error
	)
	app := &cli.App{
		Name:  cliName,
		Flags: flags(),
		Action: func(ctx *cli.Context) error {
			cfg, err = loadConfig(ctx)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{cliName}, args...)))
	return cfg, err
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: from-file\ntotal: 40\nwidth: 12\ninterval: 50ms\n"), 0o644))

	cfg, err := runLoadConfig(t, "--config", path, "--width", "30", "--pretty-time")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Title)
	assert.Equal(t, 40, cfg.Total)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 50*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.PrettyTime)
}

func TestLoadConfigDefaultTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.yml")
	require.NoError(t, os.WriteFile(path, []byte("display: ':bar'\n"), 0o644))

	cfg, err := runLoadConfig(t, "-c", path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Total)
	assert.Equal(t, ":bar", cfg.Display)
}

func TestLoadConfigInvalidTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	_, err := runLoadConfig(t, "-c", path, "--total", "0")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := runLoadConfig(t, "-c", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestDemosHaveCommands(t *testing.T) {
	cmds := commands()
	require.Len(t, cmds, len(demos))
	for i, cmd := range cmds {
		assert.Equal(t, demos[i].Name, cmd.Name)
		assert.NotNil(t, cmd.Action)
	}
}

func TestGlyphForcesColor(t *testing.T) {
	g := glyph(" ", 42)
	assert.Equal(t, 1, progressw.VisibleLen(g))
	assert.NotEqual(t, " ", g)
}
