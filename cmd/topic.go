package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashback/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the guides embedded in cbo.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the cbo guides (basket, rates, optimize)" }
func (*topicCmd) Usage() string {
	return `cbo topic [-list] [<guide>...]

  Prints the guides on how baskets are stored, how rates truncate and how a
  plan is chosen. Without a guide, prints the overview; '*' prints them all.

Usage Examples:
$ cbo topic optimize
$ cbo topic -list
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "Print the guide names only")
}

// guide returns the markdown to print for the requested guides.
func (c *topicCmd) guide(names []string) (string, error) {
	if c.list {
		all, err := docs.GetAllTopics()
		if err != nil {
			return "", err
		}
		return strings.Join(all, "\n") + "\n", nil
	}
	if len(names) == 0 {
		names = []string{"readme"}
	}
	doc, err := docs.GetTopics(names...)
	if err != nil {
		all, _ := docs.GetAllTopics()
		return "", fmt.Errorf("%w (guides: %s)", err, strings.Join(all, ", "))
	}
	return doc, nil
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.guide(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.list {
		fmt.Print(doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
