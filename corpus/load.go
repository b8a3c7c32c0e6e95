package corpus

import (
	"encoding/json"
	"fmt"
	"io"
)

// Load decodes a corpus from a JSON array of token objects, as produced by
// the CLI's expected input format (spec §6.2): each element is an object
// whose values are strings (an empty string is valid, e.g. for unknown
// morphology).
//
// encoding/json is used directly here: none of the corpus's third-party
// dependencies offer a JSON codec, and this is a one-shot, non-streaming
// decode of a small, already-buffered document, so there is nothing a
// streaming or zero-allocation decoder would buy.
func Load(r io.Reader) (Corpus, error) {
	var raw []map[string]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("corpus: decode: %w", err)
	}

	c := make(Corpus, len(raw))
	for i, tok := range raw {
		c[i] = Token(tok)
	}
	return c, nil
}
