// Package conllu parses documents in the CoNLL-U tabular annotation format
// used by the Universal Dependencies project.
//
// A document is a sequence of sentence blocks separated by blank lines. Each
// block consists of optional comment lines followed by data lines of exactly
// ten tab-separated fields. The parser turns each block into a Sentence of
// typed Tokens, one sentence per call:
//
//	input := "# sent_id = 1\n" +
//		"1\tThey\tthey\tPRON\tPRP\tCase=Nom|Number=Plur\t2\tnsubj\t2:nsubj\t_\n" +
//		"2\tbuy\tbuy\tVERB\tVBP\tNumber=Plur|Person=3\t0\troot\t0:root\t_\n"
//
//	p := conllu.NewParser(strings.NewReader(input))
//	for {
//		sent, err := p.Next()
//		if err != nil {
//			// a malformed sentence; the parser can still continue
//			log.Println(err)
//			continue
//		}
//		if sent == nil {
//			break // end of input
//		}
//		fmt.Println(sent.Tokens[0].Form)
//	}
//
// Parsing is one-directional (text to structured data) and lazy: Next reads
// only as far as the blank line that closes the current sentence. A decode
// failure abandons the sentence being built and is returned as a *ParseError;
// it never aborts the rest of the document, so callers choose whether to stop
// on the first error or keep going.
//
// The parser validates the field grammar only. Tag values (UPOS, DEPREL,
// feature names) are preserved verbatim, not checked against the UD tagset,
// and the dependency structure implied by HEAD is not resolved or validated.
package conllu
