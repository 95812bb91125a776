// Package church builds the standard Church encodings — booleans,
// conditionals, pairs, and numerals with arithmetic — as plain lambda
// terms. It is a consumer of package lambda: everything here is
// constructed from the public term constructors and checked with the
// reduction engine, with no access to engine internals.
package church

import (
	"github.com/gitrdm/golambda/pkg/lambda"
)

// True returns the Church boolean true: λx.λy.x.
func True() lambda.Term {
	return lambda.NewAbs("x", lambda.NewAbs("y", lambda.NewVar("x")))
}

// False returns the Church boolean false: λx.λy.y.
func False() lambda.Term {
	return lambda.NewAbs("x", lambda.NewAbs("y", lambda.NewVar("y")))
}

// And returns the conjunction combinator λx.λy.((x y) false).
// Applied to two Church booleans it reduces to their conjunction.
func And() lambda.Term {
	return lambda.NewAbs("x", lambda.NewAbs("y",
		lambda.Apply(lambda.NewVar("x"), lambda.NewVar("y"), False()),
	))
}

// Or returns the disjunction combinator λx.λy.((x true) y).
func Or() lambda.Term {
	return lambda.NewAbs("x", lambda.NewAbs("y",
		lambda.Apply(lambda.NewVar("x"), True(), lambda.NewVar("y")),
	))
}

// Not returns the negation combinator λx.((x false) true).
func Not() lambda.Term {
	return lambda.NewAbs("x",
		lambda.Apply(lambda.NewVar("x"), False(), True()),
	)
}

// If returns the conditional combinator λc.λl.λr.((c l) r): applied to
// a Church boolean and two branches, it reduces to the branch the
// boolean selects.
func If() lambda.Term {
	return lambda.NewAbs("c", lambda.NewAbs("l", lambda.NewAbs("r",
		lambda.Apply(lambda.NewVar("c"), lambda.NewVar("l"), lambda.NewVar("r")),
	)))
}
