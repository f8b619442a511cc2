// Package cmd implements the CLI application to optimize a cashback basket.
package cmd

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/etnz/cashback/basket"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application, grouped.
var Commands = map[string][]subcommands.Command{
	"basket": {
		&addCmd{},
		&rmCmd{},
		&listCmd{},
		&ratesCmd{},
	},
	"plan": {
		&optimizeCmd{},
	},
	"help": {
		&topicCmd{},
	},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for group, cmds := range Commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", envOr(EnvConfigFile, "cashback.toml"), "Path to the config file holding the default rates (TOML)")
var itemsFile = flag.String("items", envOr(EnvItemsFile, "items.jsonl"), "Path to the items file (JSONL)")

// DecodeConfig reads the app config file. A missing file yields the default config.
func DecodeConfig() (basket.Config, error) {
	cfg, err := basket.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Debug().Str("file", *configFile).Msg("config file does not exist, using the default rates")
		return cfg, nil
	}
	return cfg, err
}

// EncodeConfig writes the app config file.
func EncodeConfig(cfg basket.Config) error {
	return basket.SaveConfig(*configFile, cfg)
}

// DecodeItems reads the app items file. A missing file yields an empty basket.
func DecodeItems() ([]basket.ItemSpec, error) {
	specs, err := basket.LoadItems(*itemsFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Warn().Str("file", *itemsFile).Msg("items file does not exist, the basket is empty")
		return nil, nil
	}
	return specs, err
}
