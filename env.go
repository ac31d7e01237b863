package thunk

// Env maps names to unevaluated expressions. It is persistent: Bind
// returns a new scope and never modifies the receiver, so a scope can be
// shared by any number of evaluations.
type Env struct {
	name   string
	expr   Expr
	parent *Env
}

// NewEnv returns the empty environment. It is the only scope without a
// parent; every other scope holds exactly one binding.
func NewEnv() *Env {
	return &Env{}
}

// Bind returns a child scope in which name refers to expr. A nil expr is
// still a binding and shadows outer ones.
func (e *Env) Bind(name string, expr Expr) *Env {
	if e == nil {
		e = NewEnv()
	}
	return &Env{
		name:   name,
		expr:   expr,
		parent: e,
	}
}

// Lookup returns the expression bound to name in the innermost scope that
// defines it.
func (e *Env) Lookup(name string) (Expr, bool) {
	for curr := e; curr != nil; curr = curr.parent {
		if curr.parent != nil && curr.name == name {
			return curr.expr, true
		}
	}
	return nil, false
}

// Names lists bound names from innermost to outermost, shadowed ones
// included.
func (e *Env) Names() []string {
	var names []string
	for curr := e; curr != nil; curr = curr.parent {
		if curr.parent != nil {
			names = append(names, curr.name)
		}
	}
	return names
}
