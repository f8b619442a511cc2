package cmd

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Verbose enables debug logs.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Enable verbose logging")

// logger returns the diagnostic logger, writing to stderr.
func logger() *zerolog.Logger {
	lvl := zerolog.InfoLevel
	if *Verbose {
		lvl = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &l
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
