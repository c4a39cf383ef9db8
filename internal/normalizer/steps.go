package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Step names, in pipeline order.
const (
	StepPositions   = "positions"
	StepComments    = "comments"
	StepLowercase   = "lowercase"
	StepSeparators  = "separators"
	StepWhitespace  = "whitespace"
	StepHyphens     = "hyphens"
	StepQuotes      = "quotes"
	StepCopyright   = "copyright"
	StepHTTPS       = "https"
	StepEquivalents = "equivalents"
)

// minSeparatorRun is the shortest run of one repeated punctuation character
// that counts as a separator line.
const minSeparatorRun = 3

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v'
}

func isCommentMarker(r rune) bool {
	return r == '/' || r == '*' || r == '#' || r == ';' || r == '%'
}

func isHyphen(r rune) bool {
	switch r {
	case '-',
		'\u00ad', // soft hyphen
		'\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2015', // hyphen .. horizontal bar
		'\u2043', // hyphen bullet
		'\u2212', // minus sign
		'\ufe58', '\ufe63', '\uff0d':
		return true
	}

	return false
}

func isQuote(r rune) bool {
	switch r {
	case '\'', '"', '`',
		'\u00ab', '\u00bb', // guillemets
		'\u2018', '\u2019', '\u201a', '\u201b', // single quotation marks
		'\u201c', '\u201d', '\u201e', '\u201f', // double quotation marks
		'\u2039', '\u203a', // single guillemets
		'\u2032', '\u2033', // primes
		'\uff02', '\uff07':
		return true
	}

	return false
}

// computePositions fills the row/column table of the original text.
func (s *State) computePositions() {
	s.Positions = make([]Position, len(s.orig))
	row, col := 1, 0

	for i, r := range s.orig {
		col++
		s.Positions[i] = Position{Row: row, Col: col}

		if r == '\n' {
			row++
			col = 0
		}
	}
}

// lineStarts returns the index of the first rune of every line.
func (s *State) lineStarts() []int {
	starts := []int{0}

	for i, r := range s.Working {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

func (s *State) lineEnd(start int) int {
	for i := start; i < len(s.Working); i++ {
		if s.Working[i] == '\n' {
			return i
		}
	}

	return len(s.Working)
}

// stripComments blanks a run of comment markers at the start of a line,
// after optional horizontal whitespace. Length is preserved.
func (s *State) stripComments() {
	var edits []edit

	for _, ls := range s.lineStarts() {
		j := ls
		for j < len(s.Working) && isHorizontalSpace(s.Working[j]) {
			j++
		}

		k := j
		for k < len(s.Working) && isCommentMarker(s.Working[k]) {
			k++
		}

		if k > j {
			edits = append(edits, edit{start: j, num: k - j, repl: []rune(strings.Repeat(" ", k-j))})
		}
	}

	s.apply(edits)
}

// lowercase applies full Unicode lowercase mapping rune by rune, so a rune
// that expands keeps its offset for every rune it produces.
func (s *State) lowercase(caser cases.Caser) {
	var edits []edit

	for i, r := range s.Working {
		if r < utf8.RuneSelf {
			if 'A' <= r && r <= 'Z' {
				edits = append(edits, edit{start: i, num: 1, repl: []rune{r + ('a' - 'A')}})
			}

			continue
		}

		lower := []rune(caser.String(string(r)))
		if len(lower) != 1 || lower[0] != r {
			edits = append(edits, edit{start: i, num: 1, repl: lower})
		}
	}

	s.apply(edits)
}

// removeSeparators deletes a line made of three or more copies of one
// punctuation character, keeping the line's surrounding whitespace.
func (s *State) removeSeparators() {
	var edits []edit

	for _, ls := range s.lineStarts() {
		le := s.lineEnd(ls)

		j := ls
		for j < le && isHorizontalSpace(s.Working[j]) {
			j++
		}

		k := le
		for k > j && isHorizontalSpace(s.Working[k-1]) {
			k--
		}

		if k-j < minSeparatorRun || !isSeparatorRune(s.Working[j]) {
			continue
		}

		uniform := true

		for _, r := range s.Working[j:k] {
			if r != s.Working[j] {
				uniform = false
				break
			}
		}

		if uniform {
			edits = append(edits, edit{start: j, num: k - j})
		}
	}

	s.apply(edits)
}

func isSeparatorRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r)
}

// collapseRuns replaces every maximal run of runes matching in with the
// result of repl(run length).
func (s *State) collapseRuns(in func(rune) bool, repl func(run []rune) []rune) {
	var edits []edit

	for i := 0; i < len(s.Working); {
		if !in(s.Working[i]) {
			i++
			continue
		}

		j := i
		for j < len(s.Working) && in(s.Working[j]) {
			j++
		}

		run := s.Working[i:j]
		if out := repl(run); string(out) != string(run) {
			edits = append(edits, edit{start: i, num: j - i, repl: out})
		}

		i = j
	}

	s.apply(edits)
}

func (s *State) collapseWhitespace() {
	s.collapseRuns(unicode.IsSpace, func([]rune) []rune { return []rune{' '} })
}

func (s *State) collapseHyphens(combine bool) {
	s.collapseRuns(isHyphen, func(run []rune) []rune {
		if combine {
			return []rune{'-'}
		}

		return []rune(strings.Repeat("-", len(run)))
	})
}

func (s *State) collapseQuotes() {
	s.collapseRuns(isQuote, func([]rune) []rune { return []rune{'\''} })
}

// replaceAll replaces every occurrence of old with repl, scanning left to
// right without overlap. accept, when set, vetoes matches by position.
func (s *State) replaceAll(old, repl []rune, accept func(start, end int) bool) {
	if len(old) == 0 {
		return
	}

	var edits []edit

	for i := 0; i+len(old) <= len(s.Working); {
		if !hasPrefix(s.Working[i:], old) || (accept != nil && !accept(i, i+len(old))) {
			i++
			continue
		}

		edits = append(edits, edit{start: i, num: len(old), repl: repl})
		i += len(old)
	}

	s.apply(edits)
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}

	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}

	return true
}

func (s *State) replaceCopyright() {
	s.replaceAll([]rune{'\u00a9'}, []rune("(c)"), nil)
}

func (s *State) upgradeHTTP() {
	s.replaceAll([]rune("http://"), []rune("https://"), nil)
}

// replaceEquivalents rewrites each variant spelling to its canonical form
// where the variant is delimited by non-letters or the text boundaries.
func (s *State) replaceEquivalents(table *EquivalenceTable) {
	if table == nil {
		return
	}

	for _, p := range table.entries {
		s.replaceAll(p.variant, p.canonical, s.wordBounded)
	}
}

func (s *State) wordBounded(start, end int) bool {
	if start > 0 && unicode.IsLetter(s.Working[start-1]) {
		return false
	}

	return end >= len(s.Working) || !unicode.IsLetter(s.Working[end])
}
