// Package params defines the default settings used when generating random
// values from the command line.
package params

import (
	"os"
	"time"
)

// RandConfig contains the tunable settings of the random value generator.
type RandConfig struct {
	ConfigName string `yaml:"CONFIG_NAME"`

	// String generation.
	MinStringLength   int    `yaml:"MIN_STRING_LENGTH"`  // MinStringLength is the inclusive lower bound of generated string lengths.
	MaxStringLength   int    `yaml:"MAX_STRING_LENGTH"`  // MaxStringLength is the exclusive upper bound of generated string lengths.
	StringComposition string `yaml:"STRING_COMPOSITION"` // StringComposition names the character classes strings are drawn from, e.g. "AlphaNumeric".
	BytesLength       int    `yaml:"BYTES_LENGTH"`       // BytesLength is the number of bytes generated per value by the bytes command.

	// Batch generation.
	Count            int           `yaml:"COUNT"`             // Count is the number of values generated per invocation.
	Workers          int           `yaml:"WORKERS"`           // Workers is the number of goroutines generating values, each with its own generator.
	ProgressInterval time.Duration `yaml:"PROGRESS_INTERVAL"` // ProgressInterval is how often batch progress is logged. Zero disables progress logging.

	// Output.
	LogFilePermissions os.FileMode `yaml:"LOG_FILE_PERMISSIONS"` // LogFilePermissions are applied when creating a persistent log file.
}

var defaultRandConfig = &RandConfig{
	ConfigName:         "default",
	MinStringLength:    8,
	MaxStringLength:    16,
	StringComposition:  "AlphaNumeric",
	BytesLength:        32,
	Count:              1,
	Workers:            1,
	ProgressInterval:   0,
	LogFilePermissions: 0600,
}

// DefaultRandConfig returns a copy of the built-in settings.
func DefaultRandConfig() *RandConfig {
	return defaultRandConfig.Copy()
}
