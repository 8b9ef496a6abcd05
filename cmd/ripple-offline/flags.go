package main

import (
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/ximinez/ripple-offline-tool/internal/command"
	"github.com/ximinez/ripple-offline-tool/internal/config"
)

const (
	keyFileFlagName = "keyfile"
	stdinFlagName   = "stdin"
	keyTypeFlagName = "keytype"
)

// takesValue tells, for every option name and alias, whether it needs a
// value.
var takesValue = map[string]bool{
	keyFileFlagName: true,
	"f":             true,
	keyTypeFlagName: true,
	"t":             true,
	stdinFlagName:   false,
	"i":             false,
}

// hoistFlags moves the options found after the command name or its
// argument in front of every positional argument, so that
// "sign <data> --keyfile path" parses like "--keyfile path sign <data>".
// Everything after "--" is left untouched.
func hoistFlags(args []string) []string {
	if len(args) == 0 {
		return args
	}

	var options, positionals []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i:]...)
			break
		}

		name, inline := splitFlag(arg)
		needsValue, known := takesValue[name]
		switch {
		case !known:
			positionals = append(positionals, arg)
		case needsValue && !inline && i+1 < len(args):
			options = append(options, arg, args[i+1])
			i++
		default:
			options = append(options, arg)
		}
	}

	out := append([]string{args[0]}, options...)
	return append(out, positionals...)
}

// splitFlag returns the option name of arg, empty when arg is not an
// option, and whether the value is given inline as in --keyfile=path.
func splitFlag(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if i := strings.Index(name, "="); i >= 0 {
		return name[:i], true
	}
	return name, false
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    keyFileFlagName,
			Aliases: []string{"f"},
			Usage:   "path to the key file (default: " + config.DefaultKeyFile() + ")",
		},
		&cli.BoolFlag{
			Name:    stdinFlagName,
			Aliases: []string{"i"},
			Usage:   "read input from standard input instead of the command line",
		},
		&cli.StringFlag{
			Name:    keyTypeFlagName,
			Aliases: []string{"t"},
			Usage:   "key type used by createkeyfile: secp256k1 or ed25519",
		},
	}
}

// lookup finds the innermost context, command or app, where the named
// flag was explicitly given.
func lookup(c *cli.Context, name string) (*cli.Context, bool) {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx, true
		}
	}
	return nil, false
}

func readStdin(c *cli.Context) bool {
	ctx, ok := lookup(c, stdinFlagName)
	return ok && ctx.Bool(stdinFlagName)
}

// options merges command line flags over the configuration.
func options(c *cli.Context) command.Options {
	opts := command.Options{
		KeyFile: config.GetKeyFile(),
		KeyType: config.GetKeyType(),
	}
	if ctx, ok := lookup(c, keyFileFlagName); ok {
		opts.KeyFile = ctx.String(keyFileFlagName)
	}
	if ctx, ok := lookup(c, keyTypeFlagName); ok {
		kt := ctx.String(keyTypeFlagName)
		opts.KeyType = &kt
	}
	return opts
}
