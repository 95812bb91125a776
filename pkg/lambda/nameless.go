package lambda

import "fmt"

// ErrUnboundVariable is returned by ToNameless when a variable has no
// enclosing binder. Equivalence checks must only be asked about terms
// that are closed under the assumed context; the error signals an open
// term rather than an environmental fault.
var ErrUnboundVariable = fmt.Errorf("unbound variable")

// Nameless represents a term in de Bruijn form: structurally identical
// to Term, but variables carry the binder-nesting distance from the
// occurrence to its binding abstraction instead of a name. Nameless
// terms serve as a canonical form for alpha-equivalence and are never
// reduced or mutated.
type Nameless interface {
	// String renders the nameless term with "(λ. body)" for
	// abstractions and the bare index for variables.
	String() string

	// Equal checks structural equality of nameless terms.
	Equal(other Nameless) bool
}

// NamelessVar is a variable occurrence identified by its de Bruijn
// index: the number of binders between the occurrence and the
// abstraction that binds it.
type NamelessVar struct {
	Index int
}

// String returns the decimal index.
func (v *NamelessVar) String() string {
	return fmt.Sprintf("%d", v.Index)
}

// Equal checks index equality.
func (v *NamelessVar) Equal(other Nameless) bool {
	o, ok := other.(*NamelessVar)
	return ok && v.Index == o.Index
}

// NamelessAbs is an abstraction in de Bruijn form; the binder needs no
// name because occurrences refer to it by distance.
type NamelessAbs struct {
	Body Nameless
}

// String renders the abstraction as "(λ. body)".
func (a *NamelessAbs) String() string {
	return fmt.Sprintf("(λ. %s)", a.Body)
}

// Equal checks structural equality of the bodies.
func (a *NamelessAbs) Equal(other Nameless) bool {
	o, ok := other.(*NamelessAbs)
	return ok && a.Body.Equal(o.Body)
}

// NamelessApp is an application in de Bruijn form.
type NamelessApp struct {
	Fun Nameless
	Arg Nameless
}

// String renders the application as "(fun arg)".
func (a *NamelessApp) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Equal checks structural equality of both subterms.
func (a *NamelessApp) Equal(other Nameless) bool {
	o, ok := other.(*NamelessApp)
	return ok && a.Fun.Equal(o.Fun) && a.Arg.Equal(o.Arg)
}

// ToNameless converts a named term to its canonical de Bruijn form.
// The term must be closed: a variable with no enclosing binder yields
// an error wrapping ErrUnboundVariable, and the conversion produces no
// partial result.
func ToNameless(term Term) (Nameless, error) {
	return toNamelessWith(term, nil)
}

// toNamelessWith walks term under an ordered context of in-scope binder
// names, outermost first. Lookups scan from the end of the context so
// the nearest enclosing binder wins under shadowing; the resulting
// index is the distance from the occurrence to that binder.
func toNamelessWith(term Term, ctx []string) (Nameless, error) {
	switch t := term.(type) {
	case *Var:
		for i := len(ctx) - 1; i >= 0; i-- {
			if ctx[i] == t.Name {
				return &NamelessVar{Index: len(ctx) - 1 - i}, nil
			}
		}
		return nil, fmt.Errorf("%w %q", ErrUnboundVariable, t.Name)
	case *Abs:
		body, err := toNamelessWith(t.Body, append(ctx, t.Param))
		if err != nil {
			return nil, err
		}
		return &NamelessAbs{Body: body}, nil
	case *App:
		fun, err := toNamelessWith(t.Fun, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := toNamelessWith(t.Arg, ctx)
		if err != nil {
			return nil, err
		}
		return &NamelessApp{Fun: fun, Arg: arg}, nil
	default:
		return nil, fmt.Errorf("unknown term kind %T", term)
	}
}

// ExactEquivalent reports whether a and b are alpha-equivalent: equal
// up to consistent renaming of bound variables, with no reduction
// performed. Both terms must be closed.
func ExactEquivalent(a, b Term) (bool, error) {
	na, err := ToNameless(a)
	if err != nil {
		return false, err
	}
	nb, err := ToNameless(b)
	if err != nil {
		return false, err
	}
	return na.Equal(nb), nil
}
