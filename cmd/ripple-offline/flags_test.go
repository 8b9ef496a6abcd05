package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/ximinez/ripple-offline-tool/internal/command"
	"github.com/ximinez/ripple-offline-tool/internal/config"
)

func TestOptions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RIPPLE_OFFLINE_KEYFILE", "")
	t.Setenv("RIPPLE_OFFLINE_KEY_TYPE", "")
	require.NoError(t, config.InitConfig())

	defaultKeyFile := config.DefaultKeyFile()
	ed25519 := "ed25519"

	tests := []struct {
		args    []string
		opts    command.Options
		stdin   bool
		cmdArgs []string
	}{
		{
			[]string{"app", "sign", "tx"},
			command.Options{KeyFile: defaultKeyFile},
			false,
			[]string{"tx"},
		},
		{
			[]string{"app", "--keyfile", "/tmp/a", "-i", "sign"},
			command.Options{KeyFile: "/tmp/a"},
			true,
			[]string{},
		},
		{
			[]string{"app", "-f", "/tmp/a", "sign", "-f", "/tmp/b", "tx"},
			command.Options{KeyFile: "/tmp/b"},
			false,
			[]string{"tx"},
		},
		{
			[]string{"app", "sign", "--keytype", "ed25519", "--stdin"},
			command.Options{KeyFile: defaultKeyFile, KeyType: &ed25519},
			true,
			[]string{},
		},
		{
			[]string{"app", "sign", "tx", "--keyfile", "/tmp/a"},
			command.Options{KeyFile: "/tmp/a"},
			false,
			[]string{"tx"},
		},
		{
			[]string{"app", "sign", "alice", "--keytype=ed25519", "-f", "/tmp/a", "-i"},
			command.Options{KeyFile: "/tmp/a", KeyType: &ed25519},
			true,
			[]string{"alice"},
		},
	}

	for _, tt := range tests {
		var (
			opts    command.Options
			stdin   bool
			cmdArgs []string
		)
		app := cli.NewApp()
		app.Flags = flags()
		app.Commands = []*cli.Command{{
			Name:  "sign",
			Flags: flags(),
			Action: func(c *cli.Context) error {
				opts = options(c)
				stdin = readStdin(c)
				cmdArgs = c.Args().Slice()
				return nil
			},
		}}

		require.NoError(t, app.Run(hoistFlags(tt.args)))
		assert.Equal(t, tt.opts, opts)
		assert.Equal(t, tt.stdin, stdin)
		assert.ElementsMatch(t, tt.cmdArgs, cmdArgs)
	}
}

func TestHoistFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			"no options",
			[]string{"app", "sign", "tx"},
			[]string{"app", "sign", "tx"},
		},
		{
			"options before the command",
			[]string{"app", "-f", "/tmp/a", "sign", "tx"},
			[]string{"app", "-f", "/tmp/a", "sign", "tx"},
		},
		{
			"options after the argument",
			[]string{"app", "sign", "tx", "--keyfile", "/tmp/a", "--stdin"},
			[]string{"app", "--keyfile", "/tmp/a", "--stdin", "sign", "tx"},
		},
		{
			"inline value",
			[]string{"app", "createkeyfile", "alice", "--keytype=ed25519"},
			[]string{"app", "--keytype=ed25519", "createkeyfile", "alice"},
		},
		{
			"missing value",
			[]string{"app", "sign", "tx", "-f"},
			[]string{"app", "-f", "sign", "tx"},
		},
		{
			"unknown options stay in place",
			[]string{"app", "sign", "--help"},
			[]string{"app", "sign", "--help"},
		},
		{
			"terminator",
			[]string{"app", "sign", "--", "-f", "x"},
			[]string{"app", "sign", "--", "-f", "x"},
		},
		{
			"empty",
			[]string{},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hoistFlags(tt.args))
		})
	}
}

func TestDescription(t *testing.T) {
	router := command.NewRouter(command.IO{})
	d := description(router)
	for _, name := range router.Commands() {
		assert.Contains(t, d, name)
	}
	assert.Contains(t, d, "secret-key.txt")
}
