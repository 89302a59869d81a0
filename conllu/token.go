package conllu

import "fmt"

// TokenID is the identifier of a token within its sentence. The CoNLL-U ID
// column admits three shapes, each with its own implementation:
//
//	SingleID — an ordinary word ("4")
//	RangeID  — a multiword token spanning several words ("4-5")
//	EmptyID  — an empty node for enhanced dependencies ("4.1")
//
// The interface is sealed; a type switch over the three implementations is
// exhaustive.
type TokenID interface {
	fmt.Stringer
	isTokenID()
}

// SingleID is the ordinary 1-based word position.
type SingleID struct {
	Index int
}

// RangeID identifies a multiword token covering word positions Start through
// End inclusive, written "Start-End". Start is always less than End.
type RangeID struct {
	Start int
	End   int
}

// EmptyID identifies an empty (elided) node subordinate to word Major,
// written "Major.Minor". Minor is always at least 1; Major may be 0 for
// empty nodes preceding the first word.
type EmptyID struct {
	Major int
	Minor int
}

func (id SingleID) isTokenID() {}
func (id RangeID) isTokenID()  {}
func (id EmptyID) isTokenID()  {}

func (id SingleID) String() string { return fmt.Sprintf("%d", id.Index) }
func (id RangeID) String() string  { return fmt.Sprintf("%d-%d", id.Start, id.End) }
func (id EmptyID) String() string  { return fmt.Sprintf("%d.%d", id.Major, id.Minor) }

// Feature is a single morphological attribute from the FEATS column.
type Feature struct {
	Name  string
	Value string
}

// Dep is one enhanced dependency edge from the DEPS column. Head may be an
// EmptyID when the edge points at an empty node.
type Dep struct {
	Head TokenID
	Rel  string
}

// Token is one data line of a sentence. The CoNLL-U specification talks about
// words, multiword tokens and empty nodes; all three are represented here and
// distinguished by the ID type.
//
// ID and Form are always present. For the remaining columns the underscore
// placeholder maps to the zero value: Lemma, UPOS, XPOS and Deprel become "",
// Head becomes nil, and Feats, Deps and Misc become empty slices. A CoNLL-U
// field is never the empty string, so "" is unambiguous as "absent".
//
// Form is the one column where "_" is not a placeholder: a form consisting of
// a literal underscore is kept as-is, matching the format's convention for
// artificial tokens.
type Token struct {
	ID     TokenID
	Form   string
	Lemma  string
	UPOS   string
	XPOS   string
	Feats  []Feature
	Head   *int // nil when absent; 0 denotes the root
	Deprel string
	Deps   []Dep
	Misc   []string
}

// Feat returns the value of the named morphological feature and whether it
// was present.
func (t *Token) Feat(name string) (string, bool) {
	for _, f := range t.Feats {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// IsWord reports whether the token is an ordinary syntactic word, as opposed
// to a multiword token line or an empty node.
func (t *Token) IsWord() bool {
	_, ok := t.ID.(SingleID)
	return ok
}
