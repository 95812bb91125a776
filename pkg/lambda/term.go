// Package lambda provides a thread-safe implementation of the untyped
// lambda calculus in Go. It covers the named term representation,
// capture-avoiding substitution, normal-order beta reduction to normal
// form, and alpha-equivalence checking through a canonical de Bruijn
// representation.
//
// The package is built around three small pieces:
//   - Terms: immutable trees built from Var, Abs, and App
//   - A Reducer: substitution, single-step reduction, and normalization,
//     with its own fresh-name supply so independent reducers never
//     interfere with each other
//   - Nameless terms: a positional encoding used solely for equality
//     comparison up to renaming of bound variables
//
// All operations are pure tree recursions that return new terms; the
// only shared mutable state is the atomic counter inside a NameSupply.
// Reduction of a term without a normal form diverges by contract — it
// is the calculus's own undecidability, not a defect. Callers that
// cannot tolerate divergence should use NormalizeBounded.
package lambda

import "fmt"

// Term represents an untyped lambda calculus term.
// Terms are immutable values: every operation in this package returns
// a new term and never modifies its inputs, so terms may be freely
// shared across goroutines.
type Term interface {
	// String returns the fully parenthesized rendering of the term:
	// "(λx. body)" for abstractions, "(fn arg)" for applications, and
	// the bare name for variables.
	String() string

	// Equal checks exact structural equality, including the spelling
	// of bound variables. Use ExactEquivalent for equality up to
	// renaming of bound variables.
	Equal(other Term) bool
}

// Var represents a variable occurrence.
type Var struct {
	Name string
}

// NewVar creates a variable term with the given name.
// Names are opaque strings; none is reserved.
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// String returns the bare variable name.
func (v *Var) String() string {
	return v.Name
}

// Equal checks if the other term is a variable with the same name.
func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

// Abs represents an abstraction (lambda). The parameter is bound
// within Body.
type Abs struct {
	Param string
	Body  Term
}

// NewAbs creates an abstraction binding param in body.
func NewAbs(param string, body Term) *Abs {
	return &Abs{Param: param, Body: body}
}

// String renders the abstraction as "(λparam. body)".
func (a *Abs) String() string {
	return fmt.Sprintf("(λ%s. %s)", a.Param, a.Body)
}

// Equal checks structural equality: same parameter spelling and
// structurally equal bodies.
func (a *Abs) Equal(other Term) bool {
	o, ok := other.(*Abs)
	return ok && a.Param == o.Param && a.Body.Equal(o.Body)
}

// App represents an application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

// NewApp creates an application term.
func NewApp(fun, arg Term) *App {
	return &App{Fun: fun, Arg: arg}
}

// String renders the application as "(fun arg)".
func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Equal checks structural equality of both subterms.
func (a *App) Equal(other Term) bool {
	o, ok := other.(*App)
	return ok && a.Fun.Equal(o.Fun) && a.Arg.Equal(o.Arg)
}

// Apply builds the left-associated application chain
// (...((fun a1) a2)... an). With no arguments it returns fun unchanged.
func Apply(fun Term, args ...Term) Term {
	out := fun
	for _, arg := range args {
		out = NewApp(out, arg)
	}
	return out
}

// FreeVariables returns the set of names that occur free in term,
// sorted lexicographically for determinism and ease of testing.
// An occurrence is free when no enclosing abstraction binds its name.
func FreeVariables(term Term) []string {
	set := map[string]struct{}{}
	collectFree(term, map[string]int{}, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// collectFree traverses term accumulating free names into set.
// bound counts enclosing binders per name so that shadowing nests
// correctly.
func collectFree(term Term, bound map[string]int, set map[string]struct{}) {
	switch t := term.(type) {
	case *Var:
		if bound[t.Name] == 0 {
			set[t.Name] = struct{}{}
		}
	case *Abs:
		bound[t.Param]++
		collectFree(t.Body, bound, set)
		bound[t.Param]--
	case *App:
		collectFree(t.Fun, bound, set)
		collectFree(t.Arg, bound, set)
	}
}

// occursFree reports whether name occurs free in term. It is the
// early-exit form of FreeVariables membership used by substitution.
func occursFree(name string, term Term) bool {
	switch t := term.(type) {
	case *Var:
		return t.Name == name
	case *Abs:
		if t.Param == name {
			// Binder shadows name; every occurrence below is bound.
			return false
		}
		return occursFree(name, t.Body)
	case *App:
		return occursFree(name, t.Fun) || occursFree(name, t.Arg)
	default:
		return false
	}
}

// sortStrings sorts a slice of strings in-place (local tiny helper to
// avoid importing sort everywhere).
func sortStrings(a []string) {
	for i := 1; i < len(a); i++ {
		j := i
		for j > 0 && a[j-1] > a[j] {
			a[j-1], a[j] = a[j], a[j-1]
			j--
		}
	}
}
