package fin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(src string) []tokenType {
	l := newLexer(src)
	var types []tokenType
	for {
		types = append(types, l.tok.typ)
		if l.tok.typ == tokEOF || l.tok.typ == tokError {
			return types
		}
		l.next()
	}
}

func TestLexer_Keywords(t *testing.T) {
	l := newLexer("if else while struct")
	require.Equal(t, tokIf, l.tok.typ)
	l.next()
	assert.Equal(t, tokElse, l.tok.typ)
	l.next()
	assert.Equal(t, tokWhile, l.tok.typ)
	l.next()
	assert.Equal(t, tokStruct, l.tok.typ)
}

func TestLexer_OperatorCascade(t *testing.T) {
	tests := []struct {
		src string
		typ tokenType
	}{
		{"+", tokPlus}, {"++", tokPlusPlus}, {"+=", tokPlusEq},
		{"<", tokLt}, {"<<", tokLtLt}, {"<<=", tokLtLtEq}, {"<=", tokLtEq},
		{"&", tokAmp}, {"&&", tokAmpAmp}, {"&=", tokAmpEq},
	}
	for _, tt := range tests {
		l := newLexer(tt.src)
		assert.Equal(t, tt.typ, l.tok.typ, "lexing %q", tt.src)
	}
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	l := newLexer("// a comment\n1")
	assert.Equal(t, tokInt, l.tok.typ)
	assert.Equal(t, 2, l.tok.line)

	l2 := newLexer("/* block\ncomment */ 2")
	assert.Equal(t, tokInt, l2.tok.typ)
	assert.Equal(t, 2, l2.tok.line)
}

func TestLexer_UnterminatedStringIsError(t *testing.T) {
	l := newLexer(`"abc`)
	l.next() // consume opening quot
	assert.Equal(t, tokError, l.tok.typ)
}

// TestLexer_StringInterpolation walks the nested state stack transitions:
// global -> in-string -> in-interpolation -> back.
func TestLexer_StringInterpolation(t *testing.T) {
	got := allTokens(`"k = {k}"`)
	want := []tokenType{
		tokQuot, tokString, tokLStrInterp, tokName, tokRStrInterp, tokQuot, tokEOF,
	}
	assert.Equal(t, want, got)
}

func TestLexer_PlainStringHasNoInterpolationTokens(t *testing.T) {
	got := allTokens(`"hello"`)
	assert.Equal(t, []tokenType{tokQuot, tokString, tokQuot, tokEOF}, got)
}

func TestLexer_FloatPromotion(t *testing.T) {
	l := newLexer("3.14")
	assert.Equal(t, tokFloat, l.tok.typ)
	assert.InDelta(t, 3.14, l.consumeFloat(), 0.0001)
}
