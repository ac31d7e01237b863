package thunk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, ip *Interpreter, src string) (Value, error) {
	t.Helper()
	tree, err := ParseString(src)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return ip.Run(tree)
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{input: "{}->5", want: Number(5)},
		{input: "{}->102", want: Number(102)},
		{input: "{}->true", want: Boolean(true)},
		{input: "{}->let x = 5 in x", want: Number(5)},
		{input: "{}->:{}->5{}", want: Number(5)},
		{input: "{}->1+2", want: Number(3)},
		{input: "{}->(1)", want: Number(1)},
		{input: "{}->(1)+(2)", want: Number(3)},
		{input: "{}->let x = 1 in let x = 2 in x", want: Number(2)},
		{input: "{}->let x = 1 in x + 1", want: Number(2)},
		{input: "{}->let f = {}->40 in let n = :f{} + 2 in n", want: Number(42)},
		{input: "{}->let boom = :5{} in 7", want: Number(7)},
		{input: "{}->let f = {}->:f{} in 1", want: Number(1)},
		{input: "{}->let y = x in let x = 3 in y", want: Number(3)},
		{input: "{}->let f = {}->n+n in let n = 21 in :f{}", want: Number(42)},
		{input: "{}->18446744073709551614+1", want: Number(18446744073709551615)},
		{input: "{}->{}->5", want: &FunctionValue{Body: num(5)}},
		{input: "{}->let f = {}->1 in f", want: &FunctionValue{Body: num(1)}},
	}
	ip := NewInterpreter()
	for _, test := range tests {
		got, err := run(t, ip, test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, ignoreSpans); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		span  Span
	}{
		{input: "5", kind: ErrNotAFunction, span: Span{0, 1}},
		{input: "let x = x in x", kind: ErrNotAFunction, span: Span{0, 14}},
		{input: ":{}->5{}", kind: ErrNotAFunction, span: Span{0, 8}},
		{input: "{}->1+2+3", kind: ErrNotAFunction, span: Span{0, 9}},
		{input: "{}->add", kind: ErrUnknownIdentifier, span: Span{4, 7}},
		{input: "{}->let x = 1 in y", kind: ErrUnknownIdentifier, span: Span{17, 18}},
		{input: "{}->:5{}", kind: ErrNotCallable, span: Span{5, 6}},
		{input: "{}->:true{}", kind: ErrNotCallable, span: Span{5, 9}},
		{input: "{}->true+1", kind: ErrNotANumber, span: Span{4, 8}},
		{input: "{}->1+false", kind: ErrNotANumber, span: Span{6, 11}},
		{input: "{}->1+{}->1", kind: ErrNotANumber, span: Span{6, 11}},
		{input: "{}->18446744073709551615+1", kind: ErrOverflow, span: Span{4, 26}},
		{input: "{}->let x = x in x", kind: ErrDepthExceeded},
		{input: "{}->let f = {}->:f{} in :f{}", kind: ErrDepthExceeded},
	}
	ip := NewInterpreter()
	for _, test := range tests {
		_, err := run(t, ip, test.input)
		if !errors.Is(err, test.kind) {
			t.Errorf("%q: want %v but got %v", test.input, test.kind, err)
			continue
		}
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Errorf("%q: want *RuntimeError but got %T", test.input, err)
			continue
		}
		if rerr.Kind != test.kind {
			t.Errorf("%q: want kind %v but got %v", test.input, test.kind, rerr.Kind)
		}
		if test.kind != ErrDepthExceeded && rerr.Span != test.span {
			t.Errorf("%q: want span %v but got %v", test.input, test.span, rerr.Span)
		}
	}
}

func TestEvalErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "5", want: "not a function: program must be a function literal, got 5"},
		{input: "{}->add", want: "unknown identifier: add"},
		{input: "{}->true+1", want: "cannot add non-numbers: true is a boolean"},
		{input: "{}->:1{}", want: "cannot call a non-function: 1 is a number"},
		{input: "{}->18446744073709551615+1", want: "integer overflow: 18446744073709551615 + 1"},
	}
	for _, test := range tests {
		_, err := run(t, NewInterpreter(), test.input)
		if err == nil {
			t.Errorf("%q: want error", test.input)
			continue
		}
		if got := err.Error(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestEvalExpression(t *testing.T) {
	ip := NewInterpreter()
	for _, input := range []string{":{}->5{}", "5", "(5)", "((5))", "let x = 5 in x", "2+3"} {
		tree, err := ParseString(input)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ip.Eval(nil, tree)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if got != Number(5) {
			t.Errorf("%q: want 5 but got %v", input, got)
		}
	}
}

func TestEvalInEnv(t *testing.T) {
	env := NewEnv().Bind("x", num(4)).Bind("y", &Addition{LHS: ident("x"), RHS: num(1)})
	tree, err := ParseString("x + y")
	if err != nil {
		t.Fatal(err)
	}
	got, err := NewInterpreter().Eval(env, tree)
	if err != nil {
		t.Fatal(err)
	}
	if got != Number(9) {
		t.Errorf("want 9 but got %v", got)
	}
}

func TestMaxDepth(t *testing.T) {
	ip := NewInterpreter(WithMaxDepth(5))
	if _, err := run(t, ip, "{}->((((1))))"); err != nil {
		t.Errorf("want success within limit but got %v", err)
	}
	_, err := run(t, ip, "{}->(((((1)))))")
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("want %v but got %v", ErrDepthExceeded, err)
	}

	for _, test := range []struct {
		input string
		ok    bool
	}{
		{input: "((((1))))", ok: true},
		{input: "(((((1)))))", ok: false},
	} {
		tree, err := ParseString(test.input)
		if err != nil {
			t.Fatal(err)
		}
		_, err = ip.Eval(nil, tree)
		if got := err == nil; got != test.ok {
			t.Errorf("Eval(%q): want ok=%v but got %v", test.input, test.ok, err)
		}
	}

	if got := NewInterpreter(WithMaxDepth(0)).maxDepth; got != DefaultMaxDepth {
		t.Errorf("want default depth %d but got %d", DefaultMaxDepth, got)
	}
}

func TestEvalIsReentrant(t *testing.T) {
	ip := NewInterpreter()
	tree, err := ParseString("{}->let x = 20 in let y = x + x in y + 2")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := ip.Run(tree)
		if err != nil {
			t.Fatal(err)
		}
		if got != Number(42) {
			t.Errorf("run %d: want 42 but got %v", i, got)
		}
	}
}

func TestEnv(t *testing.T) {
	root := NewEnv()
	a := root.Bind("x", num(1))
	b := a.Bind("x", num(2))
	c := a.Bind("y", num(3))

	if _, ok := root.Lookup("x"); ok {
		t.Error("empty environment must not resolve x")
	}
	for _, test := range []struct {
		env  *Env
		name string
		want Expr
	}{
		{env: a, name: "x", want: num(1)},
		{env: b, name: "x", want: num(2)},
		{env: c, name: "x", want: num(1)},
		{env: c, name: "y", want: num(3)},
	} {
		got, ok := test.env.Lookup(test.name)
		if !ok {
			t.Errorf("%s not found", test.name)
			continue
		}
		if diff := cmp.Diff(test.want, got, ignoreSpans); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", test.name, diff)
		}
	}
	if _, ok := a.Lookup("y"); ok {
		t.Error("binding in a child scope leaked into its parent")
	}
	if diff := cmp.Diff([]string{"x", "x"}, b.Names()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	empty := b.Bind("x", nil)
	if got, ok := empty.Lookup("x"); !ok || got != nil {
		t.Errorf("want nil binding to shadow x but got %v, %v", got, ok)
	}
	if diff := cmp.Diff([]string{"x", "x", "x"}, empty.Names()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if _, ok := root.Lookup(""); ok {
		t.Error("empty environment must not resolve the empty name")
	}
	var zero *Env
	if _, ok := zero.Bind("z", num(1)).Lookup("z"); !ok {
		t.Error("binding on a nil environment was lost")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{value: Number(42), want: "42"},
		{value: Boolean(false), want: "false"},
		{value: String("hi"), want: `"hi"`},
		{value: Array{num(1), ident("x")}, want: "[1, x]"},
		{value: &FunctionValue{Body: &Call{Callee: ident("f")}}, want: "{}->:f{}"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}
