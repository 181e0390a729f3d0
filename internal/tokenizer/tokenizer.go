// Package tokenizer provides prompt token estimates for the request log.
package tokenizer

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer estimates token counts for generation prompts.
type Tokenizer interface {
	// CountPrompt returns the approximate token count of a prompt text.
	CountPrompt(text string) (int, error)
}

// EncodingCL100kBase is used for all estimates. The remote API does not
// publish its tokenizer, so the count is an approximation for usage display,
// not billing.
const EncodingCL100kBase = "cl100k_base"

// TiktokenTokenizer implements Tokenizer using tiktoken-go.
type TiktokenTokenizer struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// New creates a new TiktokenTokenizer.
func New() *TiktokenTokenizer {
	return &TiktokenTokenizer{}
}

// CountPrompt returns the approximate token count of a prompt text.
// The encoding is loaded lazily on first use and cached.
func (t *TiktokenTokenizer) CountPrompt(text string) (int, error) {
	t.once.Do(func() {
		t.enc, t.err = tiktoken.GetEncoding(EncodingCL100kBase)
	})
	if t.err != nil {
		return 0, t.err
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}
