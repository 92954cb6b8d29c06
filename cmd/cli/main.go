package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "backoffice",
		Usage: "manage barang, pelanggan and penjualan from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "backoffice API base URL, overrides backoffice.base_url",
				EnvVars: []string{"BACKOFFICE_URL"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			barangCommand(),
			pelangganCommand(),
			penjualanCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
