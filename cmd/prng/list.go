package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nozzle/prng/dist"
	"github.com/nozzle/prng/generator"
)

var listCommand = &cli.Command{
	Name:   "list",
	Usage:  "list generator algorithms and distributions",
	Action: listCmd,
}

func listCmd(c *cli.Context) error {
	w := c.App.Writer

	fmt.Fprintln(w, "algorithms:")
	for _, alg := range generator.Algorithms() {
		marker := ""
		if alg == generator.Default {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", alg, marker)
	}

	fmt.Fprintln(w, "distributions:")
	for _, name := range dist.Strategies() {
		params := ""
		if l, ok := laws[name]; ok {
			params = strings.Join(l.params, " ")
		}
		marker := ""
		if slot, ok := dist.LookupStrategy(name); ok && slot.Replaced() {
			marker = " (replaced)"
		}
		fmt.Fprintf(w, "  %-20s %s%s\n", name, params, marker)
	}
	return nil
}
