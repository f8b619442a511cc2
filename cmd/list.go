package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashback/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the basket" }
func (*listCmd) Usage() string {
	return `cbo list

  Displays the default rates and every item with the rates it is optimized with.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.BasketMarkdown(cfg, specs))
	return subcommands.ExitSuccess
}
