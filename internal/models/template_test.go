package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_NewNodeAndParent(t *testing.T) {
	tmpl := &Template{}

	root := tmpl.NewNode(KindTopText, NoParent, 1)
	p := tmpl.NewNode(KindParagraph, root.ID, 2)
	text := tmpl.NewNode(KindPlainText, p.ID, 2)
	root.Children = append(root.Children, p)
	p.Children = append(p.Children, text)
	tmpl.Root = root

	assert.Equal(t, 3, tmpl.NodeCount())
	assert.Nil(t, tmpl.Parent(root))
	assert.Same(t, root, tmpl.Parent(p))
	assert.Same(t, p, tmpl.Parent(text))
	assert.Nil(t, tmpl.Node(42))
	assert.True(t, text.IsLeaf())
	assert.False(t, p.IsLeaf())
}

func TestTemplate_Walk(t *testing.T) {
	tmpl := &Template{}
	root := tmpl.NewNode(KindTopText, NoParent, 1)
	opt := tmpl.NewNode(KindOptional, root.ID, 1)
	ws := tmpl.NewNode(KindWhitespace, opt.ID, 1)
	br := tmpl.NewNode(KindLineBreak, root.ID, 2)
	opt.Children = []*Node{ws}
	root.Children = []*Node{opt, br}
	tmpl.Root = root

	var kinds []NodeKind

	var depths []int

	tmpl.Walk(func(n *Node, depth int) {
		kinds = append(kinds, n.Kind)
		depths = append(depths, depth)
	})

	assert.Equal(t, []NodeKind{KindTopText, KindOptional, KindWhitespace, KindLineBreak}, kinds)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}

func TestTemplate_Flattened(t *testing.T) {
	tmpl := &Template{}
	assert.False(t, tmpl.Flattened())

	tmpl.Segments = []Segment{}
	assert.True(t, tmpl.Flattened())
}

func TestKindForTag(t *testing.T) {
	tests := map[string]NodeKind{
		"text":                  KindTopText,
		"p":                     KindParagraph,
		"titleText":             KindTitle,
		"copyrightText":         KindCopyright,
		"list":                  KindList,
		"item":                  KindListItem,
		"bullet":                KindBullet,
		"br":                    KindLineBreak,
		"optional":              KindOptional,
		"alt":                   KindAlt,
		"standardLicenseHeader": KindStandardHeader,
	}

	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			got, ok := KindForTag(tag)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	for _, tag := range []string{"whitespace", "plaintext", "invalid", "b", ""} {
		_, ok := KindForTag(tag)
		assert.False(t, ok, tag)
	}
}

func TestParseSpacing(t *testing.T) {
	assert.Equal(t, SpacingNone, ParseSpacing("none"))
	assert.Equal(t, SpacingBefore, ParseSpacing("before"))
	assert.Equal(t, SpacingAfter, ParseSpacing("after"))
	assert.Equal(t, SpacingBoth, ParseSpacing("both"))
	assert.Equal(t, SpacingInvalid, ParseSpacing("Before"))
	assert.Equal(t, SpacingInvalid, ParseSpacing(""))
	assert.Equal(t, "unspecified", SpacingUnspecified.String())
	assert.Equal(t, "invalid", SpacingInvalid.String())
	assert.Equal(t, "n/a", SpacingNotApplicable.String())

	var zero Spacing
	assert.Equal(t, SpacingNotApplicable, zero)
}

func TestSegment_JSONSpacing(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want string
	}{
		{
			name: "no directive",
			seg:  RegexSegment(`\S{0,7}`, 1, SpacingNotApplicable),
			want: `{"kind":"regex","line":1,"pattern":"\\S{0,7}"}`,
		},
		{
			name: "invalid directive",
			seg:  RegexSegment("x+", 1, SpacingInvalid),
			want: `{"kind":"regex","line":1,"pattern":"x+","spacing":"invalid"}`,
		},
		{
			name: "none directive",
			seg:  OptionalSegment(nil, 2, SpacingNone),
			want: `{"kind":"optional","line":2,"spacing":"none"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.seg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestNode_JSONInvalidSpacing(t *testing.T) {
	data, err := json.Marshal(&Node{Kind: KindAlt, Spacing: SpacingInvalid, SpacingRaw: "bogus"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"spacing":"invalid"`)
	assert.Contains(t, string(data), `"spacingRaw":"bogus"`)
}
