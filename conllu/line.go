package conllu

import (
	"fmt"
	"strings"
)

// numFields is the fixed column count of a CoNLL-U data line.
const numFields = 10

// lineKind classifies one line of input.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineData
)

// stripTerminator removes a trailing \n or \r\n. Nothing else is trimmed;
// field content is taken verbatim.
func stripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// classifyLine classifies a line with its terminator already removed. A line
// is blank if nothing remains after stripping trailing whitespace, and a
// comment if its first character is '#'.
func classifyLine(line string) lineKind {
	if strings.TrimRight(line, " \t\f\v") == "" {
		return lineBlank
	}
	if line[0] == '#' {
		return lineComment
	}
	return lineData
}

// splitFields splits a data line on tabs into exactly ten fields.
func splitFields(line string) ([]string, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return nil, fmt.Errorf("%w: got %d tab-separated fields, want %d", ErrMalformedLine, len(fields), numFields)
	}
	return fields, nil
}

// parseComment extracts sentence metadata from a comment line. Comments of
// the form "# key = value" yield a keyed Comment with key and value trimmed;
// anything else is kept whole with an empty key.
func parseComment(line string) Comment {
	content := strings.TrimSpace(line[1:])
	if i := strings.Index(content, "="); i >= 0 {
		key := strings.TrimSpace(content[:i])
		if key != "" {
			return Comment{Key: key, Text: strings.TrimSpace(content[i+1:])}
		}
	}
	return Comment{Text: content}
}
