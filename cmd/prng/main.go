// Command prng lists, samples and benchmarks the generators and
// distributions of github.com/nozzle/prng.
package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// log is replaced in the app's Before hook once the level is known.
var log = zerolog.Nop()

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("prng failed")
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "prng",
		Usage:     "pseudo-random number generators and distributions",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a configuration file `PATH` (default: search for prng.yaml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level `LEVEL` (trace, debug, info, warn, error)",
				Value: zerolog.LevelInfoValue,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Uniform generator `NAME`",
			},
			&cli.UintFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Generator seed `SEED`; omit for a random seed",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter, TimeFormat: time.RFC3339}).
				Level(level).With().Timestamp().Logger()
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			sampleCommand,
			benchCommand,
		},
	}
}
