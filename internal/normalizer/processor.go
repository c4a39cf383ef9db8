// Package normalizer turns arbitrary candidate text into a normalized form
// while keeping a mapping from every normalized rune back to its original
// row and column.
package normalizer

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configures a Pipeline.
type Options struct {
	// Equivalences, when set, rewrites variant spellings to canonical ones.
	Equivalences *EquivalenceTable
	// CombineHyphens collapses a run of hyphen-like runes into one hyphen
	// instead of a run of the same length.
	CombineHyphens bool
	// VerifyOffsets re-checks the offset invariant after every step and
	// records violations in State.Faults.
	VerifyOffsets bool
}

// DefaultOptions combines hyphens and uses the built-in equivalence table.
func DefaultOptions() Options {
	return Options{
		CombineHyphens: true,
		Equivalences:   DefaultEquivalences(),
	}
}

// StepHook observes the state after a named step.
type StepHook func(step string, s *State)

// Pipeline runs the normalization steps. It is immutable after construction
// and safe for concurrent use; every call works on its own State.
type Pipeline struct {
	hook StepHook
	opts Options
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// WithHook returns a copy of p that calls hook after every step.
func (p *Pipeline) WithHook(hook StepHook) *Pipeline {
	return &Pipeline{opts: p.opts, hook: hook}
}

// Normalize runs every step over text. It never fails.
func (p *Pipeline) Normalize(text string) *State {
	s := newState(text)
	caser := cases.Lower(language.Und)

	steps := []struct {
		run  func()
		name string
	}{
		{name: StepPositions, run: s.computePositions},
		{name: StepComments, run: s.stripComments},
		{name: StepLowercase, run: func() { s.lowercase(caser) }},
		{name: StepSeparators, run: s.removeSeparators},
		{name: StepWhitespace, run: s.collapseWhitespace},
		{name: StepHyphens, run: func() { s.collapseHyphens(p.opts.CombineHyphens) }},
		{name: StepQuotes, run: s.collapseQuotes},
		{name: StepCopyright, run: s.replaceCopyright},
		{name: StepHTTPS, run: s.upgradeHTTP},
		{name: StepEquivalents, run: func() { s.replaceEquivalents(p.opts.Equivalences) }},
	}

	for _, step := range steps {
		step.run()
		s.Steps = append(s.Steps, step.name)

		if p.opts.VerifyOffsets {
			if err := s.Validate(); err != nil {
				s.Faults = append(s.Faults, fmt.Errorf("after %s: %w", step.name, err))
			}
		}

		if p.hook != nil {
			p.hook(step.name, s)
		}
	}

	return s
}
