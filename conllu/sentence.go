package conllu

// Comment is one comment line of a sentence block. Comments following the
// "# key = value" convention are split into Key and Text; for any other
// comment Key is "" and Text holds the comment body with the leading '#'
// and surrounding whitespace stripped.
type Comment struct {
	Key  string
	Text string
}

// Sentence is one blank-line-delimited block of a CoNLL-U document: the
// tokens in line order plus the comment metadata that preceded them. A
// Sentence is complete when returned by the parser and holds no reference
// back to its source.
type Sentence struct {
	Comments []Comment
	Tokens   []Token
}

// Meta returns the value of a keyed comment such as "# sent_id = 42".
// Comments are kept in order of appearance and duplicate keys are all
// retained; Meta returns the last occurrence, so a repeated key behaves as
// an override. Keyless comments are never matched, so Meta("") reports
// absence even when bare remarks are present.
func (s *Sentence) Meta(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for i := len(s.Comments) - 1; i >= 0; i-- {
		if s.Comments[i].Key == key {
			return s.Comments[i].Text, true
		}
	}
	return "", false
}

// SentID returns the sentence identifier from the sent_id comment, or "".
func (s *Sentence) SentID() string {
	id, _ := s.Meta("sent_id")
	return id
}

// Text returns the raw sentence text from the text comment, or "".
func (s *Sentence) Text() string {
	text, _ := s.Meta("text")
	return text
}

// Words returns only the ordinary word tokens, skipping multiword token
// lines and empty nodes.
func (s *Sentence) Words() []Token {
	words := make([]Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.IsWord() {
			words = append(words, t)
		}
	}
	return words
}
