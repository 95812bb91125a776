package lambda

// This file provides package-level wrappers over a shared default
// Reducer, so callers that do not care about fresh-name isolation can
// use the engine directly as functions. The default reducer's supply is
// process-wide; independent fresh-name streams require an explicit
// NewReducer.

var defaultReducer = NewReducer()

// Substitute replaces every free occurrence of name in term with
// replacement, avoiding capture. See Reducer.Substitute.
func Substitute(term Term, name string, replacement Term) Term {
	return defaultReducer.Substitute(term, name, replacement)
}

// ReduceStep performs one normal-order reduction pass using the
// default reducer. See Reducer.ReduceStep.
func ReduceStep(term Term) Term {
	return defaultReducer.ReduceStep(term)
}

// Normalize reduces term to normal form using the default reducer.
// Diverges on terms without a normal form. See Reducer.Normalize.
func Normalize(term Term) Term {
	return defaultReducer.Normalize(term)
}

// NormalizeBounded reduces term for at most maxSteps passes using the
// default reducer. See Reducer.NormalizeBounded.
func NormalizeBounded(term Term, maxSteps int) (Term, bool) {
	return defaultReducer.NormalizeBounded(term, maxSteps)
}

// Equivalent reports whether a and b share the same normal form up to
// alpha-equivalence, using the default reducer. See Reducer.Equivalent.
func Equivalent(a, b Term) (bool, error) {
	return defaultReducer.Equivalent(a, b)
}
