package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/ximinez/ripple-offline-tool/internal/command"
	"github.com/ximinez/ripple-offline-tool/internal/config"
)

const version = "0.4.0"

func main() {
	if err := config.InitConfig(); err != nil {
		fatal(err)
	}

	router := command.NewRouter(command.IO{In: os.Stdin, Out: os.Stdout})

	app := cli.NewApp()
	app.Name = "ripple-offline"
	app.Version = version
	app.Usage = "Offline signing and serialization of XRP Ledger transactions"
	app.UsageText = "ripple-offline [options] <command> [<argument> ...]"
	app.Description = description(router)
	app.Flags = flags()
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowAppHelp(c)
		}
		// Anything that is not a known command still goes through the
		// router so it fails the same way.
		return run(router, c, c.Args().First(), c.Args().Tail())
	}

	for _, name := range router.Commands() {
		name := name
		app.Commands = append(app.Commands, &cli.Command{
			Name:      name,
			Usage:     router.Usage(name),
			ArgsUsage: "<argument>",
			Flags:     flags(),
			Action: func(c *cli.Context) error {
				return run(router, c, name, c.Args().Slice())
			},
		})
	}

	if err := app.Run(hoistFlags(os.Args)); err != nil {
		fatal(err)
	}
}

func run(router *command.Router, c *cli.Context, name string, args []string) error {
	inputType, err := command.ResolveInputType(readStdin(c), args)
	if err != nil {
		return err
	}
	log.Debugf("command %s, %d argument(s)", name, len(args))
	return router.Run(name, args, inputType, options(c))
}

func description(router *command.Router) string {
	b := &strings.Builder{}
	b.WriteString("Commands:\n")
	for _, name := range router.Commands() {
		fmt.Fprintf(b, "   %-15s %s\n", name, router.Usage(name))
	}
	fmt.Fprintf(b, "\nThe default key file is %s.", config.DefaultKeyFile())
	return b.String()
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
