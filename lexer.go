package thunk

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LexError is returned by Tokenize when no token alternative matches.
type LexError struct {
	Span     Span
	Found    rune
	Raw      string // source bytes of Found
	Expected []string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %s at offset %d, expected one of: %s",
		e.FoundText(), e.Span.Start, strings.Join(e.Expected, ", "))
}

// FoundText is the display form of the offending character.
func (e *LexError) FoundText() string {
	if e.Found == '\n' {
		return "'\\n'"
	}
	if e.Found == utf8.RuneError && len(e.Raw) == 1 {
		return fmt.Sprintf("'\\x%02x'", e.Raw[0])
	}
	return fmt.Sprintf("%q", e.Found)
}

type punct struct {
	text string
	t    TokenType
}

// Order matters: the first match wins, so "->" must come before "-".
var puncts = []punct{
	{"->", TokArrow},
	{"=", TokEquals},
	{"+", TokPlus},
	{"-", TokMinus},
	{"*", TokStar},
	{"/", TokSlash},
	{":", TokColon},
	{"{", TokLBrace},
	{"}", TokRBrace},
	{"(", TokLParen},
	{")", TokRParen},
	{",", TokComma},
	{`"`, TokQuote},
}

var keywords = map[string]TokenType{
	"let":   TokLet,
	"in":    TokIn,
	"true":  TokTrue,
	"false": TokFalse,
}

var lexAlternatives = func() []string {
	var alts []string
	for _, p := range puncts {
		alts = append(alts, p.t.String())
	}
	for _, t := range []TokenType{TokLet, TokIn, TokTrue, TokFalse, TokNumber, TokIdent, TokSpace, TokNewline} {
		alts = append(alts, t.String())
	}
	return alts
}()

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// Tokenize scans src into tokens. Whitespace is kept in the stream.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(src) {
		tok, err := scan(src, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		pos = tok.Span.End
	}
	return tokens, nil
}

func scan(src string, pos int) (Token, error) {
	rest := src[pos:]
	for _, p := range puncts {
		if strings.HasPrefix(rest, p.text) {
			return makeToken(src, p.t, pos, pos+len(p.text)), nil
		}
	}

	end := pos
	switch c := src[pos]; {
	case isLower(c):
		for end < len(src) && isLower(src[end]) {
			end++
		}
		if t, ok := keywords[src[pos:end]]; ok {
			return makeToken(src, t, pos, end), nil
		}
		return makeToken(src, TokIdent, pos, end), nil
	case isDigit(c):
		for end < len(src) && isDigit(src[end]) {
			end++
		}
		return makeToken(src, TokNumber, pos, end), nil
	case isBlank(c):
		for end < len(src) && isBlank(src[end]) {
			end++
		}
		return makeToken(src, TokSpace, pos, end), nil
	case c == '\n':
		return makeToken(src, TokNewline, pos, pos+1), nil
	}

	r, n := utf8.DecodeRuneInString(rest)
	return Token{}, &LexError{
		Span:     Span{Start: pos, End: pos + n},
		Found:    r,
		Raw:      rest[:n],
		Expected: lexAlternatives,
	}
}

func makeToken(src string, t TokenType, start, end int) Token {
	return Token{
		Type: t,
		Text: src[start:end],
		Span: Span{Start: start, End: end},
	}
}
