package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/internal/midifile"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Classify the chords of a MIDI file",
	Long: `Reads a Standard MIDI File, extracts the sets of simultaneously
sounding notes and classifies each three-note set through the triad
relations: quality, inversion and root.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midifile.ReadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), midifile.Report(theory, midifile.Extract(s)))
		return nil
	},
}
