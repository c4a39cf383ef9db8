package normalizer

// Position is a 1-based row and column in the original text.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// State is the result of normalizing one text. Working and OffsetMap are
// parallel: OffsetMap[i] is the index in the original text (in runes) that
// Working[i] traces back to.
type State struct {
	Original  string
	Positions []Position
	Working   []rune
	OffsetMap []int
	Steps     []string
	// Faults holds offset-invariant violations found when verification is
	// enabled. It is always empty for a correct pipeline.
	Faults []error

	orig []rune
}

func newState(text string) *State {
	orig := []rune(text)
	offsets := make([]int, len(orig))

	for i := range offsets {
		offsets[i] = i
	}

	return &State{
		Original:  text,
		Working:   append([]rune(nil), orig...),
		OffsetMap: offsets,
		orig:      orig,
	}
}

// Text returns the normalized text.
func (s *State) Text() string {
	return string(s.Working)
}

// Len returns the normalized text length in runes.
func (s *State) Len() int {
	return len(s.Working)
}

// OriginalIndex returns the original rune index that normalized index i
// traces back to.
func (s *State) OriginalIndex(i int) (int, bool) {
	if i < 0 || i >= len(s.OffsetMap) {
		return 0, false
	}

	return s.OffsetMap[i], true
}

// Locate returns the original row and column of normalized index i.
func (s *State) Locate(i int) (Position, bool) {
	idx, ok := s.OriginalIndex(i)
	if !ok || idx < 0 || idx >= len(s.Positions) {
		return Position{}, false
	}

	return s.Positions[idx], true
}

// Span returns the original positions of the first and last characters of
// the normalized range [start, end).
func (s *State) Span(start, end int) (Position, Position, bool) {
	if start >= end {
		return Position{}, Position{}, false
	}

	from, ok := s.Locate(start)
	if !ok {
		return Position{}, Position{}, false
	}

	to, ok := s.Locate(end - 1)
	if !ok {
		return Position{}, Position{}, false
	}

	return from, to, true
}

// edit replaces num runes of the working text at start with repl.
type edit struct {
	repl  []rune
	start int
	num   int
}

// Replace replaces num runes starting at start with repl and adjusts the
// offset map: a shorter replacement drops the trailing entries of the
// replaced span, a longer one repeats the entry of the last replaced rune.
func (s *State) Replace(start, num int, repl string) {
	s.apply([]edit{{start: start, num: num, repl: []rune(repl)}})
}

// apply performs non-overlapping edits, sorted by start, in one pass with the
// same offset semantics as Replace.
func (s *State) apply(edits []edit) {
	if len(edits) == 0 {
		return
	}

	text := make([]rune, 0, len(s.Working))
	offsets := make([]int, 0, len(s.OffsetMap))
	pos := 0

	for _, e := range edits {
		text = append(text, s.Working[pos:e.start]...)
		offsets = append(offsets, s.OffsetMap[pos:e.start]...)

		text = append(text, e.repl...)

		n := len(e.repl)
		if n <= e.num {
			offsets = append(offsets, s.OffsetMap[e.start:e.start+n]...)
		} else {
			offsets = append(offsets, s.OffsetMap[e.start:e.start+e.num]...)
			fill := s.fillOffset(e.start, e.num)

			for k := e.num; k < n; k++ {
				offsets = append(offsets, fill)
			}
		}

		pos = e.start + e.num
	}

	s.Working = append(text, s.Working[pos:]...)
	s.OffsetMap = append(offsets, s.OffsetMap[pos:]...)
}

// fillOffset is the offset given to runes inserted beyond the replaced span:
// the last replaced rune's, or the nearest preceding one for pure insertions.
func (s *State) fillOffset(start, num int) int {
	switch {
	case num > 0:
		return s.OffsetMap[start+num-1]
	case start > 0:
		return s.OffsetMap[start-1]
	case len(s.OffsetMap) > 0:
		return s.OffsetMap[0]
	default:
		return 0
	}
}
