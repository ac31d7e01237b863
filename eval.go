package thunk

import (
	"errors"
	"fmt"
	"math/bits"
)

// Kinds of runtime failure. A *RuntimeError unwraps to one of these, so
// errors.Is can be used to branch on them.
var (
	ErrNotAFunction      = errors.New("not a function")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrNotCallable       = errors.New("cannot call a non-function")
	ErrNotANumber        = errors.New("cannot add non-numbers")
	ErrOverflow          = errors.New("integer overflow")
	ErrDepthExceeded     = errors.New("maximum evaluation depth exceeded")
)

// DefaultMaxDepth bounds nested evaluation. Call-by-name self reference
// without a base case recurses forever; this turns that into an error.
const DefaultMaxDepth = 10000

type RuntimeError struct {
	Kind error
	Span Span
	Msg  string
}

func (e *RuntimeError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

type Interpreter struct {
	maxDepth int
}

type Option func(*Interpreter)

// WithMaxDepth sets the evaluation depth limit. Values < 1 select
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(ip *Interpreter) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		ip.maxDepth = n
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	ip := &Interpreter{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Eval runs a program with the default interpreter.
func Eval(root Expr) (Value, error) {
	return NewInterpreter().Run(root)
}

// Run evaluates a program. The root must be a function; its body is forced
// once in the empty environment.
func (ip *Interpreter) Run(root Expr) (Value, error) {
	var body Expr
	switch n := root.(type) {
	case *Function:
		body = n.Body
	case *Literal:
		if fn, ok := n.Value.(*FunctionValue); ok {
			body = fn.Body
		}
	}
	if body == nil {
		return nil, &RuntimeError{
			Kind: ErrNotAFunction,
			Span: root.Pos(),
			Msg:  fmt.Sprintf("program must be a function literal, got %s", root),
		}
	}
	return ip.eval(NewEnv(), body, 1)
}

// Eval evaluates a single expression in env. It counts against the depth
// limit the same way a program body does.
func (ip *Interpreter) Eval(env *Env, expr Expr) (Value, error) {
	if env == nil {
		env = NewEnv()
	}
	return ip.eval(env, expr, 1)
}

func (ip *Interpreter) eval(env *Env, expr Expr, depth int) (Value, error) {
	if depth > ip.maxDepth {
		return nil, &RuntimeError{
			Kind: ErrDepthExceeded,
			Span: expr.Pos(),
			Msg:  fmt.Sprintf("limit is %d", ip.maxDepth),
		}
	}
	depth++

	switch n := expr.(type) {
	case *Literal:
		return n.Value, nil
	case *Ident:
		bound, ok := env.Lookup(n.Name)
		if !ok {
			return nil, &RuntimeError{
				Kind: ErrUnknownIdentifier,
				Span: n.Span,
				Msg:  n.Name,
			}
		}
		// Evaluated in the referencing scope, which still holds the
		// binding itself.
		return ip.eval(env, bound, depth)
	case *Function:
		return &FunctionValue{Body: n.Body}, nil
	case *Call:
		callee, err := ip.eval(env, n.Callee, depth)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(*FunctionValue)
		if !ok {
			return nil, &RuntimeError{
				Kind: ErrNotCallable,
				Span: n.Callee.Pos(),
				Msg:  fmt.Sprintf("%s is a %s", callee, TypeName(callee)),
			}
		}
		return ip.eval(env, fn.Body, depth)
	case *Let:
		return ip.eval(env.Bind(n.Name.Name, n.Value), n.Body, depth)
	case *Grouping:
		return ip.eval(env, n.Inner, depth)
	case *Addition:
		lhs, err := ip.number(env, n.LHS, depth)
		if err != nil {
			return nil, err
		}
		rhs, err := ip.number(env, n.RHS, depth)
		if err != nil {
			return nil, err
		}
		sum, carry := bits.Add64(uint64(lhs), uint64(rhs), 0)
		if carry != 0 {
			return nil, &RuntimeError{
				Kind: ErrOverflow,
				Span: n.Span,
				Msg:  fmt.Sprintf("%d + %d", lhs, rhs),
			}
		}
		return Number(sum), nil
	}
	return nil, fmt.Errorf("unknown expression type %T", expr)
}

func (ip *Interpreter) number(env *Env, expr Expr, depth int) (Number, error) {
	v, err := ip.eval(env, expr, depth)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, &RuntimeError{
			Kind: ErrNotANumber,
			Span: expr.Pos(),
			Msg:  fmt.Sprintf("%s is a %s", v, TypeName(v)),
		}
	}
	return n, nil
}
