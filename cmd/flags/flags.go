// Package flags contains all configuration runtime flags for
// the randgen command.
package flags

import (
	"github.com/urfave/cli/v2"
)

// Names of the flags whose values are built per application.
const (
	LogFormatFlagName   = "log-format"
	CompositionFlagName = "composition"
)

// LogFormats lists the values accepted by the log-format flag.
var LogFormats = []string{"text", "fluentd", "json", "journald"}

var (
	// SecureFlag selects the cryptographically secure generator.
	SecureFlag = &cli.BoolFlag{
		Name:  "secure",
		Usage: "Generate values from the operating system CSPRNG instead of a seeded generator.",
	}
	// SeedFlag fixes the seed of the deterministic generator. Worker i uses seed+i.
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the deterministic generator. Output is reproducible for a given seed, count and worker count.",
	}
	// CountFlag defines how many values are generated.
	CountFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of values to generate. Defaults to COUNT from the config file.",
	}
	// WorkersFlag defines how many goroutines generate values.
	WorkersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of concurrent workers, each with its own generator. Defaults to WORKERS from the config file.",
	}
	// ConfigFileFlag specifies the YAML file the defaults are loaded from.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with generation defaults.",
	}
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// ProgressIntervalFlag defines how often batch progress is logged.
	ProgressIntervalFlag = &cli.DurationFlag{
		Name:  "progress-interval",
		Usage: "Log batch progress at this interval, eg 2s or 1m5s. Zero disables progress logs.",
	}
	// ProgressBarFlag draws a progress bar on stderr while values are generated.
	ProgressBarFlag = &cli.BoolFlag{
		Name:  "progress-bar",
		Usage: "Display a progress bar on stderr during generation.",
	}
	// LengthFlag defines an exact length for generated strings and byte slices.
	LengthFlag = &cli.IntFlag{
		Name:  "length",
		Usage: "Exact length of each generated value.",
	}
	// MinLengthFlag defines the inclusive lower bound of generated string lengths.
	MinLengthFlag = &cli.IntFlag{
		Name:  "min-length",
		Usage: "Inclusive lower bound of the generated string length.",
	}
	// MaxLengthFlag defines the exclusive upper bound of generated string lengths.
	MaxLengthFlag = &cli.IntFlag{
		Name:  "max-length",
		Usage: "Exclusive upper bound of the generated string length.",
	}
	// MinFlag defines the inclusive lower bound of generated integers.
	MinFlag = &cli.IntFlag{
		Name:  "min",
		Usage: "Inclusive lower bound of generated integers.",
	}
	// MaxFlag defines the exclusive upper bound of generated integers.
	MaxFlag = &cli.IntFlag{
		Name:  "max",
		Usage: "Exclusive upper bound of generated integers.",
		Value: 100,
	}
)

// LogFormatFlag returns a fresh log-format flag defaulting to text.
func LogFormatFlag() *cli.GenericFlag {
	return EnumValue{
		Name:  LogFormatFlagName,
		Usage: "Specify log formatting.",
		Enum:  LogFormats,
		Value: "text",
	}.GenericFlag()
}

// CompositionFlag returns a fresh composition flag. When it is not set the
// composition comes from the config file.
func CompositionFlag() *cli.GenericFlag {
	return &cli.GenericFlag{
		Name:  CompositionFlagName,
		Usage: "Character classes to draw from, joined by '|' or ',', eg AlphaNumeric or Digit|Symbol.",
		Value: &CompositionValue{},
	}
}
