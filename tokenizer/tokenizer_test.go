package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitespace(t *testing.T) {
	tok := Whitespace{}

	assert.Equal(t, []string{"python", "for", "finance"}, tok.Tokenize("Python  for\tFinance"))
	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   \n\t "))

	// Duplicates are preserved in order.
	assert.Equal(t, []string{"go", "go", "go"}, tok.Tokenize("Go go GO"))
}

func TestFunc(t *testing.T) {
	bigrams := Func(func(text string) []string {
		runes := []rune(text)
		var out []string
		for i := 0; i+1 < len(runes); i++ {
			out = append(out, string(runes[i:i+2]))
		}
		return out
	})

	assert.Equal(t, []string{"ab", "bc", "cd"}, bigrams.Tokenize("abcd"))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, strings.Fields("a b"), Default.Tokenize("A  B"))
}
