package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashback/basket"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove items from the basket" }
func (*rmCmd) Usage() string {
	return `cbo rm <name>...

  Removes the named items from the items file. The last item of a basket
  cannot be removed.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing item name")
		return subcommands.ExitUsageError
	}
	specs, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading items %q: %v\n", *itemsFile, err)
		return subcommands.ExitFailure
	}
	for _, name := range f.Args() {
		specs, err = basket.Remove(specs, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := basket.SaveItems(*itemsFile, specs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing items %q: %v\n", *itemsFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully removed %d item(s) from %s\n", f.NArg(), *itemsFile)
	return subcommands.ExitSuccess
}
