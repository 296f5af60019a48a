package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

var (
	noteClass  string
	noteOctave int
	notePitch  int
)

func init() {
	noteCmd.Flags().StringVar(&noteClass, "class", "", "pitch class (canonical or alias)")
	noteCmd.Flags().IntVar(&noteOctave, "octave", 0, "octave")
	noteCmd.Flags().IntVar(&notePitch, "pitch", 0, "absolute pitch")
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Relate pitch class, octave and absolute pitch",
	Long: `Queries the note relation. Each of --class, --octave and --pitch may
be given or left open; the engine enumerates all consistent completions.

  musiko note --class C --octave 4     # which pitch is C4?
  musiko note --pitch 60               # which note is 60?
  musiko note --octave 4               # all notes of octave 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		classTerm, err := classArg(cmd, "class", noteClass)
		if err != nil {
			return err
		}
		octaveTerm := intArg(cmd, "octave", noteOctave)
		pitchTerm := intArg(cmd, "pitch", notePitch)

		class := musiko.Fresh("class")
		octave := musiko.Fresh("octave")
		pitch := musiko.Fresh("pitch")
		// Bindings first, so the relation dispatches on them instead of
		// enumerating the full cross product and filtering after.
		goal := musiko.Conj(
			musiko.Eq(class, classTerm),
			musiko.Eq(octave, octaveTerm),
			musiko.Eq(pitch, pitchTerm),
			theory.Noteo(class, octave, pitch),
		)

		tuples := musiko.RunTuples(limitFlag, goal, class, octave, pitch)
		for _, row := range tuples {
			fmt.Fprintf(cmd.OutOrStdout(), "%-3v %3v %5v\n", row[0], row[1], row[2])
		}
		if len(tuples) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no solutions")
		}
		return nil
	},
}

// classArg resolves a pitch-class flag to a term: bound flags become
// atoms (validated eagerly, so typos surface as errors rather than
// empty results), unset flags become fresh variables.
func classArg(cmd *cobra.Command, name, value string) (musiko.Term, error) {
	if !cmd.Flags().Changed(name) {
		return musiko.Fresh(name), nil
	}
	if _, err := theory.Space.PositionOf(value); err != nil {
		return nil, err
	}
	return musiko.NewAtom(value), nil
}

// intArg turns an integer flag into an atom or a fresh variable.
func intArg(cmd *cobra.Command, name string, value int) musiko.Term {
	if !cmd.Flags().Changed(name) {
		return musiko.Fresh(name)
	}
	return musiko.NewAtom(value)
}
