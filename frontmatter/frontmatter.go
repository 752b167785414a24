package frontmatter

import (
	"regexp"
	"strconv"
	"strings"
)

// Document is the result of parsing one content file: scalar metadata from
// the leading block plus the body text with the block stripped.
type Document struct {
	Metadata map[string]any
	Body     string
}

// The block is delimited by "---" lines: one at the very start of the text
// and a matching one later, both anchored to the start of a line.
var blockPattern = regexp.MustCompile(`(?s)^---[ \t]*\r?\n(.*?)\r?\n---[ \t]*\r?\n(.*)$`)

// Parse extracts the optional metadata block from raw content. Parsing never
// fails: when the delimiter pattern is absent the whole input becomes the
// body and metadata is empty.
func Parse(raw string) Document {
	match := blockPattern.FindStringSubmatch(raw)
	if match == nil {
		return Document{
			Metadata: map[string]any{},
			Body:     raw,
		}
	}

	metadata := map[string]any{}
	for _, line := range strings.Split(match[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		colon := strings.Index(line, ":")
		if colon == -1 {
			continue
		}

		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])
		metadata[key] = coerce(value)
	}

	return Document{
		Metadata: metadata,
		Body:     strings.TrimSpace(match[2]),
	}
}

var (
	intPattern   = regexp.MustCompile(`^\d+$`)
	floatPattern = regexp.MustCompile(`^\d+\.\d+$`)
)

// coerce applies the scalar conversion rules in order, first match wins:
// quoted values lose one layer of quotes and stay strings, then integers,
// decimals and the literal booleans.
func coerce(value string) any {
	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
			return value[1 : len(value)-1]
		}
	}

	if intPattern.MatchString(value) {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}

	if floatPattern.MatchString(value) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}

	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}

	return value
}
