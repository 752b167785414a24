package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormedBlock(t *testing.T) {
	raw := "---\ntitle: Hello\norder: 3\n---\n# Body\n\nSome text.\n"

	doc := Parse(raw)

	require.Len(t, doc.Metadata, 2)
	assert.Equal(t, "Hello", doc.Metadata["title"])
	assert.Equal(t, 3, doc.Metadata["order"])
	assert.Equal(t, "# Body\n\nSome text.", doc.Body)
}

func TestParse_NoBlock(t *testing.T) {
	raw := "# Just a heading\n\nNo metadata here.\n"

	doc := Parse(raw)

	assert.Empty(t, doc.Metadata)
	assert.Equal(t, raw, doc.Body, "body must be the unmodified input")
}

func TestParse_BlockNotAtStart(t *testing.T) {
	raw := "intro line\n---\ntitle: Nope\n---\nrest"

	doc := Parse(raw)

	assert.Empty(t, doc.Metadata)
	assert.Equal(t, raw, doc.Body)
}

func TestParse_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  any
	}{
		{"integer", "42", 42},
		{"decimal", "3.14", 3.14},
		{"boolTrue", "true", true},
		{"boolFalse", "false", false},
		{"boolCaseSensitive", "True", "True"},
		{"plainString", "hello world", "hello world"},
		{"doubleQuoted", `"42"`, "42"},
		{"singleQuoted", `'true'`, "true"},
		{"mismatchedQuotes", `"abc'`, `"abc'`},
		{"negativeStaysString", "-7", "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse("---\nkey: " + tt.value + "\n---\nbody")
			assert.Equal(t, tt.want, doc.Metadata["key"])
		})
	}
}

func TestParse_ValueContainingColon(t *testing.T) {
	doc := Parse("---\nurl: https://example.com/page\n---\nbody")

	assert.Equal(t, "https://example.com/page", doc.Metadata["url"])
}

func TestParse_SkipsCommentsBlanksAndColonlessLines(t *testing.T) {
	raw := "---\n# a comment\n\nnotakeyvalue\ntitle: Real\n---\nbody"

	doc := Parse(raw)

	require.Len(t, doc.Metadata, 1)
	assert.Equal(t, "Real", doc.Metadata["title"])
}

func TestParse_BodyLosslessAfterTrim(t *testing.T) {
	body := "# Heading\n\nparagraph one\n\nparagraph two"
	doc := Parse("---\ntitle: x\n---\n" + body + "\n\n")

	assert.Equal(t, body, doc.Body)
}

func TestParse_KeysMatchBlockExactly(t *testing.T) {
	doc := Parse("---\na: 1\nb: 2\nc: 3\n---\nbody")

	assert.Len(t, doc.Metadata, 3)
	for _, k := range []string{"a", "b", "c"} {
		assert.Contains(t, doc.Metadata, k)
	}
}
