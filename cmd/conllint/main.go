// conllint checks CoNLL-U files for format errors.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
)

const programVersion = "0.1.0"

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}
	// cli.Exit errors are handled (printed and exited) by Run itself; only
	// flag-parsing failures reach this point.
	if err := newApp(ui).Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "conllint: %v\n", err)
		os.Exit(2)
	}
}

// newApp builds the command-line application around the given streams.
func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "conllint",
		Usage:     "check CoNLL-U files for format errors",
		ArgsUsage: "PATH ...",
		Version:   programVersion,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   runtime.NumCPU(),
				Usage:   "number of files to lint in parallel",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "print only the summary line",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop after the first file with errors",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "disable the progress bar",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one PATH is required", 2)
			}
			opts := Options{
				Jobs:     c.Int("jobs"),
				Quiet:    c.Bool("quiet"),
				FailFast: c.Bool("fail-fast"),
				Progress: !c.Bool("no-progress"),
			}
			summary, err := Run(c.Args().Slice(), opts, ui)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if summary.ErrorCount > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
