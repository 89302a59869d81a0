package conllu

import (
	"bufio"
	"io"
	"strings"
)

// Parser reads a CoNLL-U document sentence by sentence. It owns the line
// cursor of its input and keeps no state beyond the sentence currently being
// assembled, so independent Parsers may run concurrently; a single Parser is
// not safe for concurrent use.
type Parser struct {
	reader  *bufio.Reader
	lineNum int
	sentNum int
	eof     bool
}

// NewParser creates a parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// LineNumber returns the 1-based number of the last line read.
func (p *Parser) LineNumber() int {
	return p.lineNum
}

// Next returns the next sentence of the document. At the end of the input it
// returns (nil, nil). A trailing sentence is emitted even without a closing
// blank line.
//
// When a sentence block contains a malformed line, the sentence is abandoned
// and a *ParseError describing the offending line is returned in its place.
// The parser stays usable: the following call starts a fresh sentence on the
// next line, so callers may skip failed sentences and keep iterating.
func (p *Parser) Next() (*Sentence, error) {
	var sent *Sentence

	for {
		line, ok, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			if sent != nil {
				p.sentNum++
				return sent, nil
			}
			return nil, nil
		}

		line = stripTerminator(line)
		switch classifyLine(line) {
		case lineBlank:
			if sent != nil {
				p.sentNum++
				return sent, nil
			}
			// Consecutive blank lines between blocks produce nothing.

		case lineComment:
			if sent == nil {
				sent = &Sentence{}
			}
			sent.Comments = append(sent.Comments, parseComment(line))

		case lineData:
			if sent == nil {
				sent = &Sentence{}
			}
			fields, err := splitFields(line)
			if err != nil {
				return nil, p.fail(err, line)
			}
			tok, err := decodeToken(fields)
			if err != nil {
				return nil, p.fail(err, line)
			}
			sent.Tokens = append(sent.Tokens, tok)
		}
	}
}

// ParseAll collects all remaining sentences, stopping at the first failure.
// To continue past failed sentences instead, iterate with Next directly.
func (p *Parser) ParseAll() ([]*Sentence, error) {
	var sentences []*Sentence
	for {
		sent, err := p.Next()
		if err != nil {
			return sentences, err
		}
		if sent == nil {
			return sentences, nil
		}
		sentences = append(sentences, sent)
	}
}

// ParseSentence parses a single sentence block from a string. It returns
// (nil, nil) when the string holds no sentence at all.
func ParseSentence(s string) (*Sentence, error) {
	return NewParser(strings.NewReader(s)).Next()
}

// fail wraps a decode error with its input location and counts the abandoned
// sentence so later ordinals stay aligned with the input.
func (p *Parser) fail(err error, line string) error {
	p.sentNum++
	return &ParseError{
		Err:      err,
		Line:     p.lineNum,
		Sentence: p.sentNum,
		Text:     line,
	}
}

// readLine reads the next input line including its terminator. The boolean
// is false at the end of the input.
func (p *Parser) readLine() (string, bool, error) {
	if p.eof {
		return "", false, nil
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		p.eof = true
		if err != io.EOF {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	p.lineNum++
	return line, true, nil
}
