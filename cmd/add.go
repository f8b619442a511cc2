package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashback"
	"github.com/etnz/cashback/basket"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	name  string
	cost  string
	earn  string
	spend string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the basket" }
func (*addCmd) Usage() string {
	return `cbo add -n <name> -c <cost> [-earn <perBase>/<base>] [-spend <perBase>/<base>]

  Appends an item to the items file. Rates that are not given are inherited
  from the default rates (see 'cbo rates').

Usage Examples:
$ cbo add -n "Headphones" -c 300
$ cbo add -n "Turntable" -c 1250 -earn 5/100
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name")
	f.StringVar(&c.cost, "c", "", "Item cost")
	f.StringVar(&c.earn, "earn", "", "Earn rate, e.g. 20/100. Defaults to the global earn rate.")
	f.StringVar(&c.spend, "spend", "", "Spend rate, e.g. 20/100. Defaults to the global spend rate.")
}

func (c *addCmd) spec() (basket.ItemSpec, error) {
	s := basket.ItemSpec{Name: c.name}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		return s, fmt.Errorf("invalid cost %q: %w", c.cost, err)
	}
	s.Cost = cost
	if c.earn != "" {
		r, err := cashback.ParseRate(c.earn)
		if err != nil {
			return s, err
		}
		s.Earn = &r
	}
	if c.spend != "" {
		r, err := cashback.ParseRate(c.spend)
		if err != nil {
			return s, err
		}
		s.Spend = &r
	}
	return s, s.Validate()
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.spec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := basket.AppendItem(*itemsFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to items file %q: %v\n", *itemsFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully added %q to %s\n", s.Name, *itemsFile)
	return subcommands.ExitSuccess
}
