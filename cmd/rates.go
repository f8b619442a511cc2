package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashback"
	"github.com/etnz/cashback/basket"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	earn     string
	spend    string
	currency string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or update the default rates" }
func (*ratesCmd) Usage() string {
	return `cbo rates [-earn <perBase>/<base>] [-spend <perBase>/<base>] [-currency <code>]

  Without flags, displays the default rates. With flags, updates them in the
  config file. Items without their own rates use these.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.earn, "earn", "", "Default earn rate, e.g. 20/100")
	f.StringVar(&c.spend, "spend", "", "Default spend rate, e.g. 20/100")
	f.StringVar(&c.currency, "currency", "", "Currency of the basket, e.g. SGD")
}

// apply updates 'cfg' with the flags, it reports whether anything was set.
func (c *ratesCmd) apply(cfg *basket.Config) (bool, error) {
	changed := false
	if c.earn != "" {
		r, err := cashback.ParseRate(c.earn)
		if err != nil {
			return false, err
		}
		cfg.Earn, changed = r, true
	}
	if c.spend != "" {
		r, err := cashback.ParseRate(c.spend)
		if err != nil {
			return false, err
		}
		cfg.Spend, changed = r, true
	}
	if c.currency != "" {
		cfg.Currency, changed = strings.ToUpper(c.currency), true
	}
	return changed, nil
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := DecodeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config %q: %v\n", *configFile, err)
		return subcommands.ExitFailure
	}
	changed, err := c.apply(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if changed {
		if err := EncodeConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config %q: %v\n", *configFile, err)
			return subcommands.ExitFailure
		}
		logger().Debug().Str("file", *configFile).Msg("config saved")
	}
	fmt.Printf("currency: %s\nearn:     %s\nspend:    %s\n", cfg.Currency, cfg.Earn, cfg.Spend)
	return subcommands.ExitSuccess
}
