package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nozzle/prng/generator"
	"github.com/nozzle/prng/internal/parallel"
)

var benchCommand = &cli.Command{
	Name:  "bench",
	Usage: "time the uniform generators",
	Description: `Draws --draws values from every algorithm (or those named with
--only), one generator per goroutine, and reports nanoseconds per call.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "draws",
			Usage: "Draws per algorithm and primitive `NUMBER`",
			Value: 1_000_000,
		},
		&cli.StringSliceFlag{
			Name:  "only",
			Usage: "Restrict to algorithm `NAME`, repeatable",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Concurrent generators `NUMBER` (0 = CPU count)",
		},
	},
	Action: benchCmd,
}

type benchResult struct {
	alg       generator.Algorithm
	uintTime  time.Duration
	floatTime time.Duration
	boolTime  time.Duration
	draws     int

	// Folded outputs, so the loops are not optimized away.
	xor  uint32
	sum  float64
	ones int
}

func (r benchResult) perCall(d time.Duration) float64 {
	if r.draws == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(r.draws)
}

func benchCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	draws := c.Int("draws")
	if draws < 0 {
		return fmt.Errorf("draws must not be negative (draws=%d)", draws)
	}

	algs := generator.Algorithms()
	if only := c.StringSlice("only"); len(only) > 0 {
		algs = algs[:0:0]
		for _, name := range only {
			alg, err := generator.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = parallel.NumWorkers()
	}
	results, err := bench(c.Context, algs, cfg.Seed, draws, workers)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tuint32 ns/op\tfloat64 ns/op\tbool ns/op")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\n", r.alg, r.perCall(r.uintTime), r.perCall(r.floatTime), r.perCall(r.boolTime))
	}
	return tw.Flush()
}

// bench times each algorithm on its own generator; results keep the order
// of algs.
func bench(ctx context.Context, algs []generator.Algorithm, seed uint32, draws, workers int) ([]benchResult, error) {
	results := make([]benchResult, len(algs))
	err := parallel.For(ctx, 0, len(algs), workers, func(_ context.Context, i int) error {
		g, err := generator.New(algs[i], seed)
		if err != nil {
			return err
		}
		r := benchResult{alg: algs[i], draws: draws}

		start := time.Now()
		for range draws {
			r.xor ^= g.NextUint32()
		}
		r.uintTime = time.Since(start)

		start = time.Now()
		for range draws {
			r.sum += g.NextFloat64()
		}
		r.floatTime = time.Since(start)

		start = time.Now()
		for range draws {
			if g.NextBool() {
				r.ones++
			}
		}
		r.boolTime = time.Since(start)

		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		log.Debug().
			Stringer("algorithm", r.alg).
			Uint32("xor", r.xor).
			Float64("sum", r.sum).
			Int("ones", r.ones).
			Msg("bench finished")
	}
	return results, nil
}
