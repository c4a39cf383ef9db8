package normalizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEquivalences(t *testing.T) {
	table, err := LoadEquivalences(strings.NewReader("# header\n\nColour, Color\nfoo,bar\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []Equivalence{
		{Canonical: "colour", Variant: "color"},
		{Canonical: "foo", Variant: "bar"},
	}, table.Pairs())
}

func TestLoadEquivalences_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLine int
	}{
		{name: "too many fields", in: "a,b\nc,d,e\n", wantLine: 2},
		{name: "single field", in: "lonely", wantLine: 1},
		{name: "empty canonical", in: "# x\n ,variant", wantLine: 2},
		{name: "empty variant", in: "canonical,", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEquivalences(strings.NewReader(tt.in))

			var eqErr *EquivalenceError
			require.True(t, errors.As(err, &eqErr))
			assert.Equal(t, tt.wantLine, eqErr.Line)
		})
	}
}

func TestLoadEquivalencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("license,licence\n"), 0o644))

	table, err := LoadEquivalencesFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = LoadEquivalencesFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultEquivalences(t *testing.T) {
	table := DefaultEquivalences()
	require.Positive(t, table.Len())

	for _, p := range table.Pairs() {
		assert.Equal(t, strings.ToLower(p.Canonical), p.Canonical)
		assert.NotEqual(t, p.Canonical, p.Variant)
	}

	assert.Contains(t, table.Pairs(), Equivalence{Canonical: "license", Variant: "licence"})
}
