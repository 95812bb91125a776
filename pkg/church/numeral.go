package church

import (
	"fmt"

	"github.com/gitrdm/golambda/pkg/lambda"
)

// ErrNotNumeral is returned by ToInt when the term does not have the
// exact shape of a Church numeral. A malformed numeral is a programmer
// precondition violation, never silently approximated.
var ErrNotNumeral = fmt.Errorf("not a Church numeral")

// FromInt encodes n as the Church numeral λf.λx.f(f(...(x))) with n
// applications of f. Non-positive n encodes zero.
func FromInt(n int) lambda.Term {
	body := lambda.Term(lambda.NewVar("x"))
	for i := 0; i < n; i++ {
		body = lambda.NewApp(lambda.NewVar("f"), body)
	}
	return lambda.NewAbs("f", lambda.NewAbs("x", body))
}

// ToInt decodes a Church numeral by counting its application spine.
// The term must already be in the exact two-binder shape
// λf.λx.f(...(x)): an abstraction of exactly two nested parameters
// whose body is the second parameter under zero or more applications
// of the first. Binder names are irrelevant; any other shape is an
// error wrapping ErrNotNumeral. Reduce the term to normal form before
// decoding.
func ToInt(term lambda.Term) (int, error) {
	outer, ok := term.(*lambda.Abs)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an abstraction", ErrNotNumeral, term)
	}
	inner, ok := outer.Body.(*lambda.Abs)
	if !ok {
		return 0, fmt.Errorf("%w: %s has a single binder", ErrNotNumeral, term)
	}

	f, x := outer.Param, inner.Param
	count := 0
	spine := inner.Body
	for {
		switch s := spine.(type) {
		case *lambda.Var:
			if s.Name != x {
				return 0, fmt.Errorf("%w: spine of %s ends in %q", ErrNotNumeral, term, s.Name)
			}
			return count, nil
		case *lambda.App:
			// f shadowed by x can never be applied inside the body.
			fun, ok := s.Fun.(*lambda.Var)
			if !ok || fun.Name != f || f == x {
				return 0, fmt.Errorf("%w: spine of %s applies %s", ErrNotNumeral, term, s.Fun)
			}
			count++
			spine = s.Arg
		default:
			return 0, fmt.Errorf("%w: unexpected spine shape in %s", ErrNotNumeral, term)
		}
	}
}

// Succ returns the successor combinator λn.λf.λx.(f ((n f) x)).
func Succ() lambda.Term {
	return lambda.NewAbs("n", lambda.NewAbs("f", lambda.NewAbs("x",
		lambda.NewApp(
			lambda.NewVar("f"),
			lambda.Apply(lambda.NewVar("n"), lambda.NewVar("f"), lambda.NewVar("x")),
		),
	)))
}

// Add returns the addition combinator λn.λm.λf.λx.((n f) ((m f) x)).
func Add() lambda.Term {
	return lambda.NewAbs("n", lambda.NewAbs("m", lambda.NewAbs("f", lambda.NewAbs("x",
		lambda.Apply(
			lambda.NewVar("n"),
			lambda.NewVar("f"),
			lambda.Apply(lambda.NewVar("m"), lambda.NewVar("f"), lambda.NewVar("x")),
		),
	))))
}

// Mul returns the multiplication combinator λn.λm.λf.(n (m f)).
func Mul() lambda.Term {
	return lambda.NewAbs("n", lambda.NewAbs("m", lambda.NewAbs("f",
		lambda.NewApp(
			lambda.NewVar("n"),
			lambda.NewApp(lambda.NewVar("m"), lambda.NewVar("f")),
		),
	)))
}
