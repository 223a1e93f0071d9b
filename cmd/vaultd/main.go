package main

import (
	"fmt"
	"os"

	"github.com/iov-one/vault"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:    "vaultd",
		Usage:   "Donation vault node",
		Version: vault.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagHome,
				Usage:   "directory to store files under",
				EnvVars: []string{"VAULTD_HOME"},
			},
		},
		Commands: []*cli.Command{
			initCommand(),
			startCommand(),
			keygenCommand(),
			{
				Name:  "version",
				Usage: "Print the app version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, vault.Version())
					return nil
				},
			},
		},
	}
}
