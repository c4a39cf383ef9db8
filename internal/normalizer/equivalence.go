package normalizer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/equivalentwords.txt
var defaultEquivalences string

// Equivalence maps a variant spelling to its canonical form.
type Equivalence struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Variant   string `json:"variant" yaml:"variant"`
}

// EquivalenceError reports a malformed equivalence table line.
type EquivalenceError struct {
	Text   string
	Reason string
	Line   int
}

func (e *EquivalenceError) Error() string {
	return fmt.Sprintf("equivalence table line %d: %s: %q", e.Line, e.Reason, e.Text)
}

type equivalenceEntry struct {
	canonical []rune
	variant   []rune
}

// EquivalenceTable is an immutable, ordered list of equivalences.
type EquivalenceTable struct {
	pairs   []Equivalence
	entries []equivalenceEntry
}

// NewEquivalenceTable builds a table from pairs. Both sides are lowercased
// because matching runs after case folding.
func NewEquivalenceTable(pairs []Equivalence) *EquivalenceTable {
	t := &EquivalenceTable{
		pairs:   make([]Equivalence, 0, len(pairs)),
		entries: make([]equivalenceEntry, 0, len(pairs)),
	}

	for _, p := range pairs {
		p.Canonical = strings.ToLower(p.Canonical)
		p.Variant = strings.ToLower(p.Variant)
		t.pairs = append(t.pairs, p)
		t.entries = append(t.entries, equivalenceEntry{
			canonical: []rune(p.Canonical),
			variant:   []rune(p.Variant),
		})
	}

	return t
}

// LoadEquivalences reads "canonical,variant" lines. Blank lines and lines
// starting with '#' are skipped.
func LoadEquivalences(r io.Reader) (*EquivalenceTable, error) {
	var pairs []Equivalence

	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, &EquivalenceError{Line: lineNo, Text: line, Reason: "expected canonical,variant"}
		}

		canonical := strings.TrimSpace(fields[0])
		variant := strings.TrimSpace(fields[1])

		if canonical == "" || variant == "" {
			return nil, &EquivalenceError{Line: lineNo, Text: line, Reason: "empty field"}
		}

		pairs = append(pairs, Equivalence{Canonical: canonical, Variant: variant})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equivalence table: %w", err)
	}

	return NewEquivalenceTable(pairs), nil
}

// LoadEquivalencesFile reads an equivalence table from path.
func LoadEquivalencesFile(path string) (*EquivalenceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open equivalence table: %w", err)
	}
	defer f.Close()

	return LoadEquivalences(f)
}

// DefaultEquivalences returns the built-in table of equivalent words.
func DefaultEquivalences() *EquivalenceTable {
	t, err := LoadEquivalences(strings.NewReader(defaultEquivalences))
	if err != nil {
		panic(fmt.Sprintf("embedded equivalence table: %v", err))
	}

	return t
}

// Pairs returns a copy of the table's entries in order.
func (t *EquivalenceTable) Pairs() []Equivalence {
	return append([]Equivalence(nil), t.pairs...)
}

// Len returns the number of entries.
func (t *EquivalenceTable) Len() int {
	return len(t.pairs)
}
