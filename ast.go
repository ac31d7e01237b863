package thunk

import (
	"bytes"
	"fmt"
	"strconv"
)

// Expr is a node of the syntax tree.
type Expr interface {
	fmt.Stringer
	Pos() Span
	exprNode()
}

type Literal struct {
	Value Value
	Span  Span
}

type Ident struct {
	Name string
	Span Span
}

// Function is a zero-argument thunk, written {}->body.
type Function struct {
	Body Expr
	Span Span
}

// Call forces a thunk, written :callee{}.
type Call struct {
	Callee Expr
	Span   Span
}

type Let struct {
	Name  *Ident
	Value Expr
	Body  Expr
	Span  Span
}

type Grouping struct {
	Inner Expr
	Span  Span
}

type Addition struct {
	LHS  Expr
	RHS  Expr
	Span Span
}

func (*Literal) exprNode()  {}
func (*Ident) exprNode()    {}
func (*Function) exprNode() {}
func (*Call) exprNode()     {}
func (*Let) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Addition) exprNode() {}

func (e *Literal) Pos() Span  { return e.Span }
func (e *Ident) Pos() Span    { return e.Span }
func (e *Function) Pos() Span { return e.Span }
func (e *Call) Pos() Span     { return e.Span }
func (e *Let) Pos() Span      { return e.Span }
func (e *Grouping) Pos() Span { return e.Span }
func (e *Addition) Pos() Span { return e.Span }

func (e *Literal) String() string  { return e.Value.String() }
func (e *Ident) String() string    { return e.Name }
func (e *Function) String() string { return "{}->" + e.Body.String() }
func (e *Call) String() string     { return ":" + e.Callee.String() + "{}" }
func (e *Grouping) String() string { return "(" + e.Inner.String() + ")" }
func (e *Addition) String() string { return e.LHS.String() + "+" + e.RHS.String() }

func (e *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", e.Name, e.Value, e.Body)
}

// Value is the result of evaluation.
type Value interface {
	fmt.Stringer
	valueNode()
}

type Number uint64

type Boolean bool

// String and Array are part of the value model but no syntax produces them
// yet.
type String string

type Array []Expr

// FunctionValue is a suspended body; it is the only callable value.
type FunctionValue struct {
	Body Expr
}

func (Number) valueNode()         {}
func (Boolean) valueNode()        {}
func (String) valueNode()         {}
func (Array) valueNode()          {}
func (*FunctionValue) valueNode() {}

func (v Number) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

func (v String) String() string {
	return strconv.Quote(string(v))
}

func (v Array) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "[")
	for i, e := range v {
		if i > 0 {
			fmt.Fprint(&buf, ", ")
		}
		fmt.Fprint(&buf, e)
	}
	fmt.Fprint(&buf, "]")
	return buf.String()
}

func (v *FunctionValue) String() string {
	return "{}->" + v.Body.String()
}

// TypeName names the kind of a value for diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Array:
		return "array"
	case *FunctionValue:
		return "function"
	}
	return fmt.Sprintf("%T", v)
}
