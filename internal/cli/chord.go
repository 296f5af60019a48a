package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

var (
	chordBottom int
	chordMiddle int
	chordTop    int
)

func init() {
	chordCmd.Flags().IntVar(&chordBottom, "bottom", 0, "lowest sounding pitch")
	chordCmd.Flags().IntVar(&chordMiddle, "middle", 0, "middle sounding pitch")
	chordCmd.Flags().IntVar(&chordTop, "top", 0, "highest sounding pitch")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <major|minor>",
	Short: "Enumerate triad voicings",
	Long: `Queries the chord relation: three pitches forming a triad of the given
quality in root position or an inversion. Pin any subset of the voices.

  musiko chord major --bottom 60 -n 5   # voicings built on 60
  musiko chord minor -n 10              # any minor voicing`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality := musiko.Quality(args[0])
		if quality != musiko.Major && quality != musiko.Minor {
			return fmt.Errorf("unknown chord quality %q", args[0])
		}

		a := musiko.Fresh("bottom")
		b := musiko.Fresh("middle")
		c := musiko.Fresh("top")
		goal := musiko.Conj(
			musiko.Eq(a, intArg(cmd, "bottom", chordBottom)),
			musiko.Eq(b, intArg(cmd, "middle", chordMiddle)),
			musiko.Eq(c, intArg(cmd, "top", chordTop)),
			theory.Chordo(quality, a, b, c),
		)

		tuples := musiko.RunTuples(limitFlag, goal, a, b, c)
		for _, row := range tuples {
			fmt.Fprintf(cmd.OutOrStdout(), "%5v %5v %5v\n", row[0], row[1], row[2])
		}
		if len(tuples) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no solutions")
		}
		return nil
	},
}
