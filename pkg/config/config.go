// Package config reads run configuration from ini-style files.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleConfigFile = `[Detect]

#######################
# Optional Parameters #
#######################

# Strict aborts the whole run on the first ill-conditioned component pair
# instead of skipping it with a warning.
# Strict = false

# Workers is the number of parallel classification workers. Zero or one
# evaluates the pairs serially.
# Workers = 4

[Output]

# Format of the report. Must be "text" or "json".
# Format = text

# Events appends the recorded per-pair event log to the report.
# Events = false`

type DetectConfig struct {
	Strict  bool
	Workers int
}

func (con *DetectConfig) ValidWorkers() bool {
	return con.Workers >= 0
}

type OutputConfig struct {
	Format string
	Events bool
}

func (con *OutputConfig) ValidFormat() bool {
	return con.Format == "text" || con.Format == "json"
}

type Config struct {
	Detect DetectConfig
	Output OutputConfig
}

// Default returns the configuration used when no file is given.
func Default() Config {
	con := Config{}
	con.Detect.Workers = 1
	con.Output.Format = "text"
	return con
}

// Read loads a config file on top of the defaults.
func Read(fname string) (Config, error) {
	con := Default()
	if err := gcfg.ReadFileInto(&con, fname); err != nil {
		return con, err
	}
	if !con.Detect.ValidWorkers() {
		return con, fmt.Errorf("config: Workers must be >= 0, got %d", con.Detect.Workers)
	}
	if !con.Output.ValidFormat() {
		return con, fmt.Errorf("config: Format must be \"text\" or \"json\", got %q", con.Output.Format)
	}
	return con, nil
}
