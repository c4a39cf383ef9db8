package normalizer

import (
	"errors"
	"fmt"
)

// Offset invariant violations.
var (
	ErrOffsetMismatch   = errors.New("offset map length does not match working text")
	ErrOffsetOutOfRange = errors.New("offset map entry outside original text")
)

// Validate checks that the offset map has one entry per working rune and that
// every entry indexes the original text.
func (s *State) Validate() error {
	if len(s.Working) != len(s.OffsetMap) {
		return fmt.Errorf("%w: %d runes, %d offsets", ErrOffsetMismatch, len(s.Working), len(s.OffsetMap))
	}

	for i, idx := range s.OffsetMap {
		if idx < 0 || idx >= len(s.orig) {
			return fmt.Errorf("%w: offset[%d] = %d, original has %d runes", ErrOffsetOutOfRange, i, idx, len(s.orig))
		}
	}

	return nil
}
