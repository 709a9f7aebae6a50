// Package tokenizer defines the text segmentation capability used by
// searchpool for keyword indexing and querying.
//
// The engine is deliberately decoupled from any concrete segmentation
// strategy: ingestion and querying both go through the single-method
// Tokenizer interface, so whitespace splitting, CJK-aware segmentation or
// n-gram tokenization can be substituted without touching the index or
// ranking logic.
//
// # Custom Implementations
//
// Wrap any func(string) []string with Func:
//
//	tok := tokenizer.Func(func(text string) []string {
//	    return mySegmenter.Cut(text)
//	})
//	pool, _ := searchpool.New(768, []string{"title", "content"},
//	    searchpool.WithTokenizer(tok),
//	)
package tokenizer

import "strings"

// Tokenizer converts a text string into an ordered sequence of terms.
// Implementations must be safe for concurrent use and must behave
// identically at ingestion and query time.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Func adapts an ordinary function to the Tokenizer interface.
type Func func(text string) []string

// Tokenize implements Tokenizer.
func (f Func) Tokenize(text string) []string { return f(text) }

// Whitespace is the default tokenizer: it lowercases the input and splits
// around Unicode whitespace. Punctuation is kept attached to terms.
type Whitespace struct{}

// Tokenize implements Tokenizer.
func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Default is the tokenizer used when none is configured.
var Default Tokenizer = Whitespace{}
