package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSteps = []string{
	StepPositions,
	StepComments,
	StepLowercase,
	StepSeparators,
	StepWhitespace,
	StepHyphens,
	StepQuotes,
	StepCopyright,
	StepHTTPS,
	StepEquivalents,
}

func TestPipeline_Normalize(t *testing.T) {
	in := "// Copyright \u00a9 2024 ACME\n// Licensed under the \u201cMIT\u201d Licence\n-----\nSee HTTP://example.com"

	s := NewPipeline(DefaultOptions()).Normalize(in)

	want := " copyright (c) 2024 acme licensed under the 'mit' license see https://example.com"
	require.Equal(t, want, s.Text())
	assert.Equal(t, allSteps, s.Steps)
	assert.Empty(t, s.Faults)
	require.NoError(t, s.Validate())

	locate := func(word string) Position {
		t.Helper()

		idx := strings.Index(want, word)
		require.GreaterOrEqual(t, idx, 0, word)

		pos, ok := s.Locate(idx)
		require.True(t, ok, word)

		return pos
	}

	assert.Equal(t, Position{Row: 1, Col: 14}, locate("(c)"))
	assert.Equal(t, Position{Row: 1, Col: 21}, locate("acme"))
	assert.Equal(t, Position{Row: 2, Col: 4}, locate("licensed"))
	assert.Equal(t, Position{Row: 2, Col: 29}, locate("license see"))
	assert.Equal(t, Position{Row: 4, Col: 1}, locate("see"))
	assert.Equal(t, Position{Row: 4, Col: 5}, locate("https"))
}

func TestPipeline_Options(t *testing.T) {
	in := "Sub-Licence -- x"

	s := NewPipeline(Options{}).Normalize(in)
	assert.Equal(t, "sub-licence -- x", s.Text())

	s = NewPipeline(DefaultOptions()).Normalize(in)
	assert.Equal(t, "sublicense - x", s.Text())
}

func TestPipeline_OffsetInvariantAfterEveryStep(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"# ====\n#  \u00a9 2020  \u201cQuoted\u201d\n\n  ----\n\u0130stanbul per cent http://a http://b",
		"/* comment */\n * line\n ***\n\t\u2014\u2014 end",
		"licence\u2010free\u00a0\u00a0text",
	}

	for _, in := range inputs {
		var seen []string

		p := NewPipeline(Options{
			Equivalences:   DefaultEquivalences(),
			CombineHyphens: true,
			VerifyOffsets:  true,
		}).WithHook(func(step string, s *State) {
			seen = append(seen, step)
			require.NoError(t, s.Validate(), "after %s on %q", step, in)
		})

		s := p.Normalize(in)
		assert.Equal(t, allSteps, seen)
		assert.Empty(t, s.Faults)
		assert.Len(t, s.Positions, len([]rune(in)))
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	s := NewPipeline(DefaultOptions()).Normalize("")

	assert.Empty(t, s.Text())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.OffsetMap)
	assert.Equal(t, allSteps, s.Steps)
	require.NoError(t, s.Validate())
}
