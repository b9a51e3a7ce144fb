package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/xhsnote/cmd/xhsnote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"extract", "watch", "list", "count", "copy", "export", "reset"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesGlobalFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"export", "--store", "fs", "--db", "/tmp/notes", "--format", "xlsx", "--log-level", "debug"})

	require.NoError(t, err)
	assert.Equal(t, "fs", cli.Config.Store)
	assert.Equal(t, "/tmp/notes", cli.Config.DB)
	assert.Equal(t, "debug", cli.Config.LogLevel)
	assert.Equal(t, ".", cli.Config.Out)
	assert.Equal(t, "xlsx", cli.Export.Format)
}

func TestCLI_RejectsUnknownStore(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"list", "--store", "redis"})

	assert.Error(t, err)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{Store: main.StoreSQLite, LogLevel: "warn", Out: "."}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown store", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{Store: "redis", LogLevel: "warn", Out: "."}

		assert.Error(t, cfg.Validate())
	})

	t.Run("requires output directory", func(t *testing.T) {
		t.Parallel()

		cfg := &main.Config{Store: main.StoreFS, LogLevel: "info"}

		assert.Error(t, cfg.Validate())
	})
}
