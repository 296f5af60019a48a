// Package cli wires the relational engine into the musiko command-line
// tool: direct queries over notes, intervals and chords, MIDI file
// analysis and the HTTP query server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

var (
	cfgFile   string
	boundFlag string
	limitFlag int

	// theory is rebuilt by the persistent pre-run from flags and config
	// and shared by every subcommand.
	theory *musiko.Theory
)

var rootCmd = &cobra.Command{
	Use:   "musiko",
	Short: "Relational music theory queries",
	Long: `musiko answers music-theory questions through relational queries:
any argument of a relation may be left open and the engine enumerates
every consistent completion within the configured pitch bound.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		theory, err = cfg.buildTheory()
		if err != nil {
			return err
		}
		limitFlag = cfg.Limit
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&boundFlag, "bound", "", `pitch bound: "midi", "piano" or "min:max"`)
	rootCmd.PersistentFlags().IntVarP(&limitFlag, "limit", "n", 0, "max results (0 = all)")
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
