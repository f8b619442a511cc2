package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cashback"
	"github.com/etnz/cashback/basket"
	"github.com/etnz/cashback/renderer"
	"github.com/google/subcommands"
)

// optimizeCmd holds the flags for the 'optimize' subcommand.
type optimizeCmd struct {
	json  bool
	query string
}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "find which items should earn and which should spend cashback" }
func (*optimizeCmd) Usage() string {
	return `cbo optimize [-json] [-q <jsonpath>]

  Computes the cheapest plan for the items of the basket: the order in which
  to buy them, and for each one whether it earns cashback or spends it.
  Among plans of equal cost, the one leaving the most cashback is chosen.

Usage Examples:
# Show the plan.
$ cbo optimize

# Only print the final cost.
$ cbo optimize -q '$.finalCost'
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the plan as JSON")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query over the JSON plan")
}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := DecodeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config %q: %v\n", *configFile, err)
		return subcommands.ExitFailure
	}
	specs, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading items %q: %v\n", *itemsFile, err)
		return subcommands.ExitFailure
	}
	items, err := basket.Resolve(cfg, specs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in items %q: %v\n", *itemsFile, err)
		return subcommands.ExitFailure
	}

	o, err := cashback.NewOptimizer(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	start := time.Now()
	plan := o.Run()
	logger().Debug().
		Int("items", len(items)).
		Int("states", o.States()).
		Dur("elapsed", time.Since(start)).
		Msg("optimized")

	if c.json || c.query != "" {
		doc, err := cashback.EncodeLedger(plan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.query != "" {
			doc, err = queryJSON(doc, c.query)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error querying plan: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		fmt.Println(string(doc))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PlanMarkdown(plan))
	return subcommands.ExitSuccess
}
