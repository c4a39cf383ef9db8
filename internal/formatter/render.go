package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"spdxmatch/internal/models"
	"spdxmatch/internal/normalizer"
	"spdxmatch/pkg/utils"
)

// PreviewWidth limits text cells.
const PreviewWidth = 60

// Tree renders the node tree of tmpl, one node per row, indented by depth.
func Tree(tmpl *models.Template) string {
	rows := [][]string{{"node", "line", "detail"}}

	tmpl.Walk(func(n *models.Node, depth int) {
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + n.Kind.String(),
			strconv.Itoa(n.Line),
			nodeDetail(n),
		})
	})

	return strings.Join(Table(rows), "\n")
}

func nodeDetail(n *models.Node) string {
	switch n.Kind {
	case models.KindOptional:
		return "spacing: " + n.Spacing.String()
	case models.KindAlt:
		detail := fmt.Sprintf("match: %s, spacing: %s", n.Pattern, n.Spacing)
		if n.MatchName != "" {
			detail += ", name: " + n.MatchName
		}

		return utils.Truncate(detail, PreviewWidth)
	case models.KindPlainText:
		return utils.Preview(n.Text, PreviewWidth)
	default:
		return ""
	}
}

// Segments renders a segment sequence. Nested optional content is numbered
// with a dotted path.
func Segments(segs []models.Segment) string {
	rows := [][]string{{"#", "kind", "line", "content"}}
	rows = segmentRows(rows, segs, "")

	return strings.Join(Table(rows), "\n")
}

func segmentRows(rows [][]string, segs []models.Segment, prefix string) [][]string {
	for i, s := range segs {
		path := prefix + strconv.Itoa(i+1)

		content := ""

		switch s.Kind {
		case models.SegmentText:
			content = utils.Preview(s.Text, PreviewWidth)
		case models.SegmentRegex:
			content = utils.Truncate(s.Pattern, PreviewWidth)
		case models.SegmentOptional:
			content = fmt.Sprintf("%d children, spacing: %s", len(s.Children), s.Spacing)
		}

		rows = append(rows, []string{path, s.Kind.String(), strconv.Itoa(s.Line), content})

		if s.Kind == models.SegmentOptional {
			rows = segmentRows(rows, s.Children, path+".")
		}
	}

	return rows
}

// Tokens renders a token stream.
func Tokens(tokens []models.Token) string {
	rows := [][]string{{"#", "kind", "line", "content"}}
	rows = tokenRows(rows, tokens, "")

	return strings.Join(Table(rows), "\n")
}

func tokenRows(rows [][]string, tokens []models.Token, prefix string) [][]string {
	for i, t := range tokens {
		path := prefix + strconv.Itoa(i+1)

		content := ""

		switch t.Kind {
		case models.TokenText:
			content = utils.Preview(t.Text, PreviewWidth)
		case models.TokenRegex:
			content = utils.Truncate(t.Pattern, PreviewWidth)
		case models.TokenOptional:
			content = fmt.Sprintf("%d children", len(t.Children))
		}

		rows = append(rows, []string{path, t.Kind.String(), strconv.Itoa(t.Line), content})

		if t.Kind == models.TokenOptional {
			rows = tokenRows(rows, t.Children, path+".")
		}
	}

	return rows
}

// Mapping renders the normalized runes in [start, end) with the original
// index and row/column each traces back to.
func Mapping(s *normalizer.State, start, end int) string {
	if start < 0 {
		start = 0
	}

	if end > s.Len() {
		end = s.Len()
	}

	rows := [][]string{{"index", "char", "original", "row:col"}}

	for i := start; i < end; i++ {
		orig, _ := s.OriginalIndex(i)
		pos, _ := s.Locate(i)

		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.QuoteRune(s.Working[i]),
			strconv.Itoa(orig),
			fmt.Sprintf("%d:%d", pos.Row, pos.Col),
		})
	}

	return strings.Join(Table(rows), "\n")
}
