package thunk

import (
	"fmt"
)

type TokenType int

const (
	TokEquals TokenType = iota
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokColon
	TokLBrace
	TokRBrace
	TokLParen
	TokRParen
	TokComma
	TokArrow
	TokLet
	TokIn
	TokTrue
	TokFalse
	TokQuote
	TokNumber
	TokIdent
	TokSpace
	TokNewline
)

var tokenNames = map[TokenType]string{
	TokEquals:  "'='",
	TokPlus:    "'+'",
	TokMinus:   "'-'",
	TokStar:    "'*'",
	TokSlash:   "'/'",
	TokColon:   "':'",
	TokLBrace:  "'{'",
	TokRBrace:  "'}'",
	TokLParen:  "'('",
	TokRParen:  "')'",
	TokComma:   "','",
	TokArrow:   "'->'",
	TokLet:     "'let'",
	TokIn:      "'in'",
	TokTrue:    "'true'",
	TokFalse:   "'false'",
	TokQuote:   "'\"'",
	TokNumber:  "number",
	TokIdent:   "identifier",
	TokSpace:   "whitespace",
	TokNewline: "'\\n'",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is one lexical unit. Text is the exact source slice the token was
// scanned from; for numbers and identifiers it is the payload.
type Token struct {
	Type TokenType
	Text string
	Span Span
}

func (t Token) String() string {
	switch t.Type {
	case TokNumber, TokIdent:
		return fmt.Sprintf("%s(%s)", t.Type, t.Text)
	case TokSpace:
		return fmt.Sprintf("whitespace(%q)", t.Text)
	}
	return t.Type.String()
}

func (t Token) isBlank() bool {
	return t.Type == TokSpace || t.Type == TokNewline
}
