package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

func TestParseBound(t *testing.T) {
	cases := []struct {
		in   string
		want musiko.Bound
	}{
		{"", musiko.DefaultBound},
		{"midi", musiko.DefaultBound},
		{"piano", musiko.PianoBound},
		{"40:52", musiko.Bound{Min: 40, Max: 52}},
	}
	for _, tc := range cases {
		got, err := parseBound(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"grand", "40-52", "x:52", "40:y"} {
		_, err := parseBound(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildTheory(t *testing.T) {
	cfg := Config{
		Bound:     "piano",
		Intervals: map[string]int{"perfect-twelfth": 19},
	}
	th, err := cfg.buildTheory()
	require.NoError(t, err)

	assert.Equal(t, musiko.PianoBound, th.Space.Bound())
	d, err := th.Intervals.DistanceOf("perfect-twelfth")
	require.NoError(t, err)
	assert.Equal(t, 19, d)

	_, err = Config{Bound: "10:300"}.buildTheory()
	assert.ErrorIs(t, err, musiko.ErrInvalidBound)

	_, err = Config{Intervals: map[string]int{"bad": -1}}.buildTheory()
	assert.Error(t, err)
}
