package conllu

import (
	"fmt"
	"strconv"
	"strings"
)

// placeholder marks an absent field value in CoNLL-U.
const placeholder = "_"

// listSeparator separates the entries of the FEATS, DEPS and MISC columns.
const listSeparator = "|"

// ParseToken decodes a single data line into a Token. The line must split
// into the ten columns ID, FORM, LEMMA, UPOS, XPOS, FEATS, HEAD, DEPREL,
// DEPS and MISC:
//
//	tok, err := conllu.ParseToken("6\tRust\tRust\tNOUN\tNN\t_\t3\tnmod\t_\t_")
//
// Decoding is a pure transform: it either produces a complete Token or an
// error wrapping one of the sentinel error kinds, never a partial result.
func ParseToken(line string) (Token, error) {
	fields, err := splitFields(stripTerminator(line))
	if err != nil {
		return Token{}, err
	}
	return decodeToken(fields)
}

// decodeToken converts the ten raw column values into a Token.
func decodeToken(fields []string) (Token, error) {
	id, err := parseID(fields[0])
	if err != nil {
		return Token{}, err
	}

	tok := Token{
		ID:     id,
		Form:   fields[1],
		Lemma:  optional(fields[2]),
		UPOS:   optional(fields[3]),
		XPOS:   optional(fields[4]),
		Deprel: optional(fields[7]),
		Misc:   parseMisc(fields[9]),
	}

	if tok.Feats, err = parseFeatures(fields[5]); err != nil {
		return Token{}, err
	}
	if tok.Head, err = parseHead(fields[6]); err != nil {
		return Token{}, err
	}
	if tok.Deps, err = parseDeps(fields[8]); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// parseID decodes the ID column, trying the range, empty-node and single
// shapes in that order.
func parseID(field string) (TokenID, error) {
	if i := strings.IndexByte(field, '-'); i >= 0 {
		start, err1 := parseIndex(field[:i])
		end, err2 := parseIndex(field[i+1:])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q is not a valid range", ErrInvalidTokenID, field)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: range %q needs start < end", ErrInvalidTokenID, field)
		}
		return RangeID{Start: start, End: end}, nil
	}
	if i := strings.IndexByte(field, '.'); i >= 0 {
		major, err1 := parseIndex(field[:i])
		minor, err2 := parseIndex(field[i+1:])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q is not a valid empty-node id", ErrInvalidTokenID, field)
		}
		if minor < 1 {
			return nil, fmt.Errorf("%w: empty-node id %q needs a minor part of at least 1", ErrInvalidTokenID, field)
		}
		return EmptyID{Major: major, Minor: minor}, nil
	}
	n, err := parseIndex(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTokenID, field)
	}
	return SingleID{Index: n}, nil
}

// parseIndex parses an unsigned decimal integer. Signs, spaces and empty
// strings are all rejected.
func parseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return int(n), err
}

// parseHead decodes the HEAD column. 0 denotes the root of the sentence.
func parseHead(field string) (*int, error) {
	if field == placeholder {
		return nil, nil
	}
	n, err := parseIndex(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidHead, field)
	}
	return &n, nil
}

// parseFeatures decodes the FEATS column into name/value pairs, preserving
// their order. An entry without '=' is rejected; lenient readers sometimes
// keep such entries as valueless names, but this parser is strict.
func parseFeatures(field string) ([]Feature, error) {
	if field == placeholder {
		return nil, nil
	}
	parts := strings.Split(field, listSeparator)
	feats := make([]Feature, 0, len(parts))
	for _, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: feature %q is not a name=value pair", ErrInvalidField, part)
		}
		feats = append(feats, Feature{Name: name, Value: value})
	}
	return feats, nil
}

// parseDeps decodes the DEPS column of enhanced dependency edges. The head
// part follows the same grammar as the ID column, so an edge may point at an
// empty node such as "5.1".
func parseDeps(field string) ([]Dep, error) {
	if field == placeholder {
		return nil, nil
	}
	parts := strings.Split(field, listSeparator)
	deps := make([]Dep, 0, len(parts))
	for _, part := range parts {
		headText, rel, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: dependency %q is not a head:relation pair", ErrInvalidField, part)
		}
		head, err := parseID(headText)
		if err != nil {
			return nil, fmt.Errorf("%w: dependency %q has a malformed head", ErrInvalidField, part)
		}
		deps = append(deps, Dep{Head: head, Rel: rel})
	}
	return deps, nil
}

// parseMisc decodes the MISC column. Entries are kept verbatim since the
// format allows plain flags alongside key=value pairs.
func parseMisc(field string) []string {
	if field == placeholder {
		return nil
	}
	return strings.Split(field, listSeparator)
}

// optional maps the underscore placeholder to "".
func optional(field string) string {
	if field == placeholder {
		return ""
	}
	return field
}
