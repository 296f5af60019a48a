package midifile

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

func TestSweep(t *testing.T) {
	t.Run("builds chords as notes stack up", func(t *testing.T) {
		events := []NoteEvent{
			{Offset: 0, Note: 60},
			{Offset: 0, Note: 64},
			{Offset: 0, Note: 67},
			{Offset: 500000, NoteOff: true, Note: 67},
			{Offset: 500000, Note: 69},
		}
		sets := Sweep(events)
		require.Len(t, sets, 2)
		assert.Equal(t, []uint8{60, 64, 67}, sets[0].Notes)
		assert.Equal(t, int64(0), sets[0].Offset)
		assert.Equal(t, []uint8{60, 64, 69}, sets[1].Notes)
	})

	t.Run("releases apply before presses at the same offset", func(t *testing.T) {
		events := []NoteEvent{
			{Offset: 0, Note: 60},
			{Offset: 100, Note: 60}, // retrigger: off and on together
			{Offset: 100, NoteOff: true, Note: 60},
		}
		sets := Sweep(events)
		require.Len(t, sets, 1)
		assert.Equal(t, []uint8{60}, sets[0].Notes)
	})

	t.Run("alternating sets are all kept", func(t *testing.T) {
		events := []NoteEvent{
			{Offset: 0, Note: 60},
			{Offset: 10, Note: 64},
			{Offset: 20, NoteOff: true, Note: 64},
			{Offset: 30, Note: 64},
		}
		sets := Sweep(events)
		// {60}, {60 64}, {60}, {60 64} — the drop back to {60} counts.
		require.Len(t, sets, 4)
	})

	t.Run("consecutive identical sets collapse", func(t *testing.T) {
		events := []NoteEvent{
			{Offset: 0, Note: 60},
			{Offset: 10, NoteOff: true, Note: 99}, // release of a silent note
			{Offset: 20, Note: 64},
		}
		sets := Sweep(events)
		require.Len(t, sets, 2)
		assert.Equal(t, []uint8{60}, sets[0].Notes)
		assert.Equal(t, []uint8{60, 64}, sets[1].Notes)
	})

	t.Run("empty input yields no sets", func(t *testing.T) {
		assert.Empty(t, Sweep(nil))
	})
}

func TestClassify(t *testing.T) {
	th := musiko.Default()

	sets := []NoteSet{
		{Offset: 0, Notes: []uint8{60, 64, 67}},
		{Offset: 1000000, Notes: []uint8{64, 67, 72}},
		{Offset: 2000000, Notes: []uint8{60, 63, 67}},
		{Offset: 3000000, Notes: []uint8{60, 61, 62}},
		{Offset: 4000000, Notes: []uint8{60, 64}},
	}
	got := Classify(th, sets)
	require.Len(t, got, 5)

	require.NotNil(t, got[0].Voicing)
	assert.Equal(t, musiko.Major, got[0].Voicing.Quality)
	assert.Equal(t, 0, got[0].Voicing.Inversion)
	assert.Equal(t, 60, got[0].Voicing.Root)

	require.NotNil(t, got[1].Voicing)
	assert.Equal(t, 1, got[1].Voicing.Inversion)
	assert.Equal(t, 72, got[1].Voicing.Root)

	require.NotNil(t, got[2].Voicing)
	assert.Equal(t, musiko.Minor, got[2].Voicing.Quality)

	assert.Nil(t, got[3].Voicing, "a cluster is not a triad")
	assert.Nil(t, got[4].Voicing, "dyads are not classified")
}

func TestReportGolden(t *testing.T) {
	th := musiko.Default()

	sets := []NoteSet{
		{Offset: 0, Notes: []uint8{60, 64, 67}},
		{Offset: 1250000, Notes: []uint8{64, 67, 72}},
		{Offset: 62500000, Notes: []uint8{57, 60, 64}},
		{Offset: 63000000, Notes: []uint8{60, 62}},
	}
	g := goldie.New(t)
	g.Assert(t, "report", []byte(Report(th, sets)))
}
