package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

// Config is the CLI configuration, loadable from YAML and overridable by
// flags. Extra interval names extend the standard table, letting scores
// use regional or historical interval vocabulary.
type Config struct {
	Bound     string         `yaml:"bound"`
	Limit     int            `yaml:"limit"`
	Intervals map[string]int `yaml:"intervals"`
}

// resolveConfig merges the config file (if any) with command-line flags;
// flags win.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	if cfgFile != "" {
		dat, err := os.ReadFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(dat, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}
	if cmd.Flags().Changed("bound") || cfg.Bound == "" {
		cfg.Bound = boundFlag
	}
	if cmd.Flags().Changed("limit") || cfg.Limit == 0 {
		cfg.Limit = limitFlag
	}
	return cfg, nil
}

// buildTheory constructs the engine configuration the subcommands share.
func (c Config) buildTheory() (*musiko.Theory, error) {
	bound, err := parseBound(c.Bound)
	if err != nil {
		return nil, err
	}
	space, err := musiko.NewPitchSpace(bound)
	if err != nil {
		return nil, err
	}
	th := musiko.NewTheory(space)
	for name, distance := range c.Intervals {
		if err := th.Intervals.Define(name, distance); err != nil {
			return nil, fmt.Errorf("interval %q: %w", name, err)
		}
	}
	return th, nil
}

// parseBound understands the presets "midi" (0..127) and "piano"
// (21..108) plus explicit "min:max" ranges.
func parseBound(s string) (musiko.Bound, error) {
	switch s {
	case "", "midi":
		return musiko.DefaultBound, nil
	case "piano":
		return musiko.PianoBound, nil
	}
	minPart, maxPart, ok := strings.Cut(s, ":")
	if !ok {
		return musiko.Bound{}, fmt.Errorf("bound %q: want \"midi\", \"piano\" or \"min:max\"", s)
	}
	min, err := strconv.Atoi(minPart)
	if err != nil {
		return musiko.Bound{}, fmt.Errorf("bound %q: %w", s, err)
	}
	max, err := strconv.Atoi(maxPart)
	if err != nil {
		return musiko.Bound{}, fmt.Errorf("bound %q: %w", s, err)
	}
	return musiko.Bound{Min: min, Max: max}, nil
}
