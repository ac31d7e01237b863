package thunk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnclosedDelimiter
	CustomMessage
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnclosedDelimiter:
		return "unclosed delimiter"
	case CustomMessage:
		return "custom"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError describes why Parse failed. Found is empty when the parser ran
// out of tokens.
type ParseError struct {
	Kind     ParseErrorKind
	Span     Span
	Expected []string
	Found    string

	// UnclosedDelimiter
	Delimiter     string
	DelimiterSpan Span

	// CustomMessage
	Message string
	Label   string
}

// FoundText is the display form of what the parser saw.
func (e *ParseError) FoundText() string {
	if e.AtEnd() {
		return "end of input"
	}
	if e.Found == "\n" {
		return "'\\n'"
	}
	return "'" + e.Found + "'"
}

// AtEnd reports whether the error was raised at end of input.
func (e *ParseError) AtEnd() bool {
	return e.Found == ""
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnclosedDelimiter:
		return fmt.Sprintf("unclosed delimiter '%s' opened at offset %d, expected one of: %s, found %s",
			e.Delimiter, e.DelimiterSpan.Start, strings.Join(e.Expected, ", "), e.FoundText())
	case CustomMessage:
		return e.Message
	}
	return fmt.Sprintf("unexpected %s at offset %d, expected one of: %s",
		e.FoundText(), e.Span.Start, strings.Join(e.Expected, ", "))
}

// IsIncomplete reports whether err was caused by input ending too early, so
// that more input could still make it parse.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind != CustomMessage && pe.AtEnd()
}

// Names that may be referenced but never bound.
var reserved = map[string]bool{
	"add": true,
}

const endOfInput = "end of input"

type Parser struct {
	tokens []Token
	pos    int
	depth  int

	expected   []string
	expectedAt int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:     tokens,
		expectedAt: -1,
	}
}

// Parse builds the syntax tree for tokens. The whole stream must be
// consumed.
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes and parses src.
func ParseString(src string) (Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) Parse() (Expr, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipBlank()
	if p.pos < len(p.tokens) {
		p.note(endOfInput)
		return nil, p.unexpected()
	}
	return expr, nil
}

func (p *Parser) skipBlank() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].isBlank() {
		p.pos++
	}
}

// note records an alternative that was tried at the current position. Only
// the alternatives at the furthest position are kept.
func (p *Parser) note(s string) {
	if p.pos > p.expectedAt {
		p.expected = nil
		p.expectedAt = p.pos
	}
	if p.pos < p.expectedAt {
		return
	}
	for _, e := range p.expected {
		if e == s {
			return
		}
	}
	p.expected = append(p.expected, s)
}

func (p *Parser) accept(t TokenType) (Token, bool) {
	p.skipBlank()
	if p.pos < len(p.tokens) && p.tokens[p.pos].Type == t {
		tok := p.tokens[p.pos]
		p.pos++
		return tok, true
	}
	p.note(t.String())
	return Token{}, false
}

// span is the span of the next significant token, or the end of input.
func (p *Parser) span() Span {
	p.skipBlank()
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Span
	}
	return p.eofSpan()
}

func (p *Parser) eofSpan() Span {
	if len(p.tokens) == 0 {
		return Span{}
	}
	end := p.tokens[len(p.tokens)-1].Span.End
	return Span{Start: end, End: end}
}

func (p *Parser) unexpected() *ParseError {
	p.skipBlank()
	err := &ParseError{Kind: UnexpectedToken}
	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		err.Span = tok.Span
		err.Found = tok.Text
	} else {
		err.Span = p.eofSpan()
	}
	if p.expectedAt == p.pos {
		err.Expected = append([]string(nil), p.expected...)
	}
	return err
}

func (p *Parser) unclosed(delim string, open Span) *ParseError {
	err := p.unexpected()
	err.Kind = UnclosedDelimiter
	err.Delimiter = delim
	err.DelimiterSpan = open
	return err
}

func (p *Parser) custom(span Span, msg, label string) *ParseError {
	return &ParseError{
		Kind:    CustomMessage,
		Span:    span,
		Message: msg,
		Label:   label,
	}
}

// ParseExpr parses the lowest precedence rule: an optional single addition.
func (p *Parser) ParseExpr() (Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > DefaultMaxDepth {
		return nil, p.custom(p.span(), "expression nested too deeply",
			fmt.Sprintf("nesting exceeds %d levels", DefaultMaxDepth))
	}

	lhs, err := p.parseLet()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(TokPlus); !ok {
		return lhs, nil
	}
	rhs, err := p.parseLet()
	if err != nil {
		return nil, err
	}
	return &Addition{
		LHS:  lhs,
		RHS:  rhs,
		Span: Span{Start: lhs.Pos().Start, End: rhs.Pos().End},
	}, nil
}

func (p *Parser) parseLet() (Expr, error) {
	kw, ok := p.accept(TokLet)
	if !ok {
		return p.parseFunction()
	}
	name, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(TokEquals); !ok {
		return nil, p.unexpected()
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(TokIn); !ok {
		return nil, p.unexpected()
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &Let{
		Name:  name,
		Value: value,
		Body:  body,
		Span:  Span{Start: kw.Span.Start, End: body.Pos().End},
	}, nil
}

// parseBinding parses the name introduced by let. Reserved words are
// rejected here and only here; references to them parse normally.
func (p *Parser) parseBinding() (*Ident, error) {
	tok, ok := p.accept(TokIdent)
	if !ok {
		return nil, p.unexpected()
	}
	if reserved[tok.Text] {
		return nil, p.custom(tok.Span,
			fmt.Sprintf("'%s' is a reserved keyword and cannot be bound", tok.Text),
			"reserved keyword used as a binding name")
	}
	return &Ident{Name: tok.Text, Span: tok.Span}, nil
}

func (p *Parser) parseFunction() (Expr, error) {
	open, ok := p.accept(TokLBrace)
	if !ok {
		return p.parseCall()
	}
	if _, ok := p.accept(TokRBrace); !ok {
		return nil, p.unclosed("{", open.Span)
	}
	if _, ok := p.accept(TokArrow); !ok {
		return nil, p.unexpected()
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &Function{
		Body: body,
		Span: Span{Start: open.Span.Start, End: body.Pos().End},
	}, nil
}

func (p *Parser) parseCall() (Expr, error) {
	colon, ok := p.accept(TokColon)
	if !ok {
		return p.parseAtom()
	}
	callee, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	open, ok := p.accept(TokLBrace)
	if !ok {
		return nil, p.unexpected()
	}
	closing, ok := p.accept(TokRBrace)
	if !ok {
		return nil, p.unclosed("{", open.Span)
	}
	return &Call{
		Callee: callee,
		Span:   Span{Start: colon.Span.Start, End: closing.Span.End},
	}, nil
}

func (p *Parser) parseAtom() (Expr, error) {
	if open, ok := p.accept(TokLParen); ok {
		inner, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.accept(TokRParen)
		if !ok {
			return nil, p.unclosed("(", open.Span)
		}
		return &Grouping{
			Inner: inner,
			Span:  Span{Start: open.Span.Start, End: closing.Span.End},
		}, nil
	}
	if tok, ok := p.accept(TokTrue); ok {
		return &Literal{Value: Boolean(true), Span: tok.Span}, nil
	}
	if tok, ok := p.accept(TokFalse); ok {
		return &Literal{Value: Boolean(false), Span: tok.Span}, nil
	}
	if tok, ok := p.accept(TokNumber); ok {
		n, err := strconv.ParseUint(tok.Text, 10, 64)
		if err != nil {
			return nil, p.custom(tok.Span,
				fmt.Sprintf("number literal %s does not fit in 64 bits", tok.Text),
				"number too large")
		}
		return &Literal{Value: Number(n), Span: tok.Span}, nil
	}
	if tok, ok := p.accept(TokIdent); ok {
		return &Ident{Name: tok.Text, Span: tok.Span}, nil
	}
	return nil, p.unexpected()
}
