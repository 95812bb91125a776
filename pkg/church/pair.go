package church

import (
	"github.com/gitrdm/golambda/pkg/lambda"
)

// Pair encodes the pair (first, second) as λf.((f first) second).
func Pair(first, second lambda.Term) lambda.Term {
	return lambda.NewAbs("f",
		lambda.Apply(lambda.NewVar("f"), first, second),
	)
}

// First returns the projection combinator λp.(p true): applied to a
// Church pair it reduces to the first component.
func First() lambda.Term {
	return lambda.NewAbs("p", lambda.NewApp(lambda.NewVar("p"), True()))
}

// Second returns the projection combinator λp.(p false).
func Second() lambda.Term {
	return lambda.NewAbs("p", lambda.NewApp(lambda.NewVar("p"), False()))
}
