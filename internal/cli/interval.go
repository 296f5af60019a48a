package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

var (
	intervalFrom int
	intervalTo   int
)

func init() {
	intervalCmd.Flags().IntVar(&intervalFrom, "from", 0, "first absolute pitch")
	intervalCmd.Flags().IntVar(&intervalTo, "to", 0, "second absolute pitch")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <name|semitones>",
	Short: "Relate two pitches separated by an interval",
	Long: `Queries the interval relation in either direction. The interval may be
a name from the table ("major-third") or a raw semitone count.

  musiko interval major-third --from 60   # pitches a major third from 60
  musiko interval 7 --from 60 --to 67     # check a perfect fifth`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.Atoi(args[0])
		if err != nil {
			// Not a number: resolve the name once, here at the boundary.
			distance, err = theory.Intervals.DistanceOf(args[0])
			if err != nil {
				return err
			}
		}

		a := musiko.Fresh("a")
		b := musiko.Fresh("b")
		goal := musiko.Conj(
			musiko.Eq(a, intArg(cmd, "from", intervalFrom)),
			musiko.Eq(b, intArg(cmd, "to", intervalTo)),
			theory.Intervalo(distance, a, b),
		)

		tuples := musiko.RunTuples(limitFlag, goal, a, b)
		for _, row := range tuples {
			fmt.Fprintf(cmd.OutOrStdout(), "%5v %5v\n", row[0], row[1])
		}
		if len(tuples) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no solutions")
		}
		return nil
	},
}
