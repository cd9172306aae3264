package main

import (
	"log"
	"os"
	"strings"

	"github.com/nvnieuwk/indelerr/indelerr_api"
	"github.com/nvnieuwk/indelerr/minimize"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "indelerr",
		Usage:           "A tool to estimate per-context indel error rate models from aggregated indel observations",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Commands: []*cli.Command{
			{
				Name:  "estimate",
				Usage: "Fit the indel error model of a sample and export it as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "The counts file (TSV, optionally bgzipped) with the aggregated indel observations",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The location of the output model JSON file, defaults to stdout",
						Category: "Optional",
					},
					&cli.StringFlag{
						Name:     "theta",
						Aliases:  []string{"t"},
						Usage:    "JSON file with the theta priors per repeat pattern size. By default the configured default theta is used for every context",
						Category: "Optional",
					},
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Configuration file (YAML) overriding the model and minimizer settings",
						Category: "Optional",
					},
					&cli.StringFlag{
						Name:     "sample",
						Aliases:  []string{"s"},
						Usage:    "The sample name written to the model, overrides the name in the counts file",
						Category: "Optional",
					},
					&cli.StringFlag{
						Name:     "minimizer",
						Aliases:  []string{"m"},
						Usage:    "The minimizer to use. Must be one of: " + strings.Join(minimize.Methods, ", ") + ". Overrides the config file",
						Category: "Optional",
						Action: func(c *cli.Context, input string) error {
							if minimize.IsMethod(input) {
								return nil
							}
							return cli.Exit("Invalid minimizer '"+input+"', must be one of: "+strings.Join(minimize.Methods, ", "), 1)
						},
					},
					&cli.IntFlag{
						Name:     "threads",
						Aliases:  []string{"j"},
						Usage:    "The number of contexts to fit concurrently",
						Value:    1,
						Category: "Optional",
						Action: func(c *cli.Context, input int) error {
							if input >= 1 {
								return nil
							}
							return cli.Exit("The number of threads must be at least 1", 1)
						},
					},
				},
				Action: func(Cctx *cli.Context) error {
					config, err := indelerr_api.ReadConfig(Cctx.String("config"))
					if err != nil {
						return err
					}
					if Cctx.IsSet("minimizer") {
						config.Minimizer.Method = Cctx.String("minimizer")
					}

					counts, err := indelerr_api.ReadCounts(Cctx.String("input"))
					if err != nil {
						return err
					}
					if Cctx.String("sample") != "" {
						counts.SetSampleName(Cctx.String("sample"))
					}

					return indelerr_api.IndelModelProduction(counts, config, indelerr_api.ProductionOptions{
						ThetaFile:  Cctx.String("theta"),
						OutputFile: Cctx.String("output"),
						Threads:    Cctx.Int("threads"),
					})
				},
			},
			{
				Name:  "stats",
				Usage: "Summarize the observations of each context in a counts file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "The counts file to summarize",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The location of the output CSV file, defaults to stdout",
						Category: "Optional",
					},
				},
				Action: func(Cctx *cli.Context) error {
					return indelerr_api.CountsStats(Cctx.String("input"), Cctx.String("output"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
