package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
)

var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// printMarkdown renders markdown for the terminal, or prints it as is when
// rendering is disabled or fails.
func printMarkdown(s string) {
	if *plain {
		fmt.Print(s)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger().Debug().Err(err).Msg("could not create the markdown renderer")
		fmt.Print(s)
		return
	}
	out, err := r.Render(s)
	if err != nil {
		logger().Debug().Err(err).Msg("could not render markdown")
		fmt.Print(s)
		return
	}
	fmt.Print(out)
}
