package lambda

// Reducer performs substitution and normal-order beta reduction. It
// owns the NameSupply used to rename binders during capture avoidance;
// reducers sharing a supply may run concurrently, and a reducer itself
// holds no other state.
type Reducer struct {
	names *NameSupply
}

// NewReducer creates a reducer with its own fresh-name supply.
func NewReducer() *Reducer {
	return &Reducer{names: NewNameSupply()}
}

// NewReducerWithSupply creates a reducer drawing fresh names from the
// given supply. Sharing one supply across reducers keeps their renamed
// binders globally distinct.
func NewReducerWithSupply(supply *NameSupply) *Reducer {
	return &Reducer{names: supply}
}

// Substitute returns term with every free occurrence of name replaced
// by replacement. The result is alpha-equivalent to the mathematical
// substitution regardless of name collisions: when a binder would
// capture a free variable of replacement, the binder is first renamed
// to a fresh identifier throughout its body.
//
// The replacement term is shared, not copied; terms are immutable so
// sharing is safe.
func (r *Reducer) Substitute(term Term, name string, replacement Term) Term {
	switch t := term.(type) {
	case *Var:
		if t.Name == name {
			return replacement
		}
		return t
	case *App:
		// Substitution distributes over application.
		return NewApp(
			r.Substitute(t.Fun, name, replacement),
			r.Substitute(t.Arg, name, replacement),
		)
	case *Abs:
		if t.Param == name {
			// name is shadowed; nothing free below the binder.
			return t
		}
		if !occursFree(t.Param, replacement) {
			return NewAbs(t.Param, r.Substitute(t.Body, name, replacement))
		}
		// Substituting directly would capture a free occurrence of
		// t.Param inside replacement. Rename the binder to a fresh
		// identifier first, then substitute under the renamed binder.
		fresh := r.names.Fresh()
		renamed := r.Substitute(t.Body, t.Param, NewVar(fresh))
		return NewAbs(fresh, r.Substitute(renamed, name, replacement))
	default:
		return term
	}
}

// ReduceStep performs one pass of normal-order (leftmost-outermost)
// beta reduction. Subterms that are not redex sites are normalized one
// step recursively; when the reduced function position of an
// application is an abstraction, the redex fires via substitution and
// no further reduction is attempted within this call.
//
// A single call is not guaranteed to reach normal form: an outer
// reduction may reveal nested redexes. Normalize drives ReduceStep to
// a fixed point.
func (r *Reducer) ReduceStep(term Term) Term {
	switch t := term.(type) {
	case *Var:
		return t
	case *Abs:
		return NewAbs(t.Param, r.ReduceStep(t.Body))
	case *App:
		fun := r.ReduceStep(t.Fun)
		arg := r.ReduceStep(t.Arg)
		if abs, ok := fun.(*Abs); ok {
			return r.Substitute(abs.Body, abs.Param, arg)
		}
		return NewApp(fun, arg)
	default:
		return term
	}
}

// Normalize applies ReduceStep until a step returns a term exactly
// equal to its input, and returns that term. Exact equality (same
// bound-variable spelling) is the correct fixed-point test: ReduceStep
// is deterministic, so a true fixed point is syntactically identical.
//
// Normalize diverges on terms without a normal form, such as the
// self-application of the omega combinator. That is a property of the
// untyped calculus, not a defect; callers that need a bound should use
// NormalizeBounded or wrap ReduceStep with their own limit.
func (r *Reducer) Normalize(term Term) Term {
	current := term
	for {
		next := r.ReduceStep(current)
		if next.Equal(current) {
			return current
		}
		current = next
	}
}

// NormalizeBounded applies at most maxSteps reduction passes. It
// returns the resulting term and true when a fixed point was reached
// within the bound, or the partially reduced term and false when the
// bound ran out first.
func (r *Reducer) NormalizeBounded(term Term, maxSteps int) (Term, bool) {
	current := term
	for i := 0; i < maxSteps; i++ {
		next := r.ReduceStep(current)
		if next.Equal(current) {
			return current, true
		}
		current = next
	}
	return current, false
}

// Equivalent reports whether a and b denote the same normal form: both
// are normalized, then compared for alpha-equivalence. This is the
// semantic equality used by the Church-encoding library's correctness
// checks. It diverges if either term has no normal form and returns an
// error if a normal form is not closed.
func (r *Reducer) Equivalent(a, b Term) (bool, error) {
	return ExactEquivalent(r.Normalize(a), r.Normalize(b))
}
