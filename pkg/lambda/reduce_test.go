package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubstitute covers the three binder cases of capture-avoiding
// substitution.
func TestSubstitute(t *testing.T) {
	t.Run("variable hit", func(t *testing.T) {
		r := NewReducer()
		got := r.Substitute(NewVar("x"), "x", NewVar("y"))
		assert.True(t, got.Equal(NewVar("y")))
	})

	t.Run("variable miss", func(t *testing.T) {
		r := NewReducer()
		got := r.Substitute(NewVar("z"), "x", NewVar("y"))
		assert.True(t, got.Equal(NewVar("z")))
	})

	t.Run("distributes over application", func(t *testing.T) {
		r := NewReducer()
		term := NewApp(NewVar("x"), NewVar("x"))
		got := r.Substitute(term, "x", NewVar("y"))
		assert.True(t, got.Equal(NewApp(NewVar("y"), NewVar("y"))))
	})

	t.Run("shadowed name is untouched", func(t *testing.T) {
		r := NewReducer()
		term := NewAbs("x", NewVar("x"))
		got := r.Substitute(term, "x", NewVar("y"))
		assert.True(t, got.Equal(term))
	})

	t.Run("safe binder substitutes directly", func(t *testing.T) {
		r := NewReducer()
		term := NewAbs("z", NewVar("x"))
		got := r.Substitute(term, "x", NewVar("y"))
		assert.True(t, got.Equal(NewAbs("z", NewVar("y"))))
	})
}

// TestSubstituteNoCapture is the canonical no-capture property:
// substituting y for x in (λy. x) must NOT yield (λy. y); the binder
// has to be renamed first.
func TestSubstituteNoCapture(t *testing.T) {
	r := NewReducer()
	term := NewAbs("y", NewVar("x"))

	got := r.Substitute(term, "x", NewVar("y"))

	abs, ok := got.(*Abs)
	require.True(t, ok, "expected an abstraction, got %s", got)
	assert.False(t, got.Equal(NewAbs("y", NewVar("y"))), "free y was captured")
	assert.NotEqual(t, "y", abs.Param, "binder must be renamed away from y")
	assert.True(t, abs.Body.Equal(NewVar("y")), "body must be the substituted free y")
}

// TestSubstituteFreshNamesUnique verifies that repeated renames draw
// distinct identifiers from the supply.
func TestSubstituteFreshNamesUnique(t *testing.T) {
	r := NewReducer()
	term := NewAbs("y", NewVar("x"))

	first := r.Substitute(term, "x", NewVar("y")).(*Abs)
	second := r.Substitute(term, "x", NewVar("y")).(*Abs)

	assert.NotEqual(t, first.Param, second.Param)
}

// TestReduceStep covers single-pass normal-order reduction.
func TestReduceStep(t *testing.T) {
	t.Run("variable is terminal", func(t *testing.T) {
		got := ReduceStep(NewVar("x"))
		assert.True(t, got.Equal(NewVar("x")))
	})

	t.Run("identity redex fires", func(t *testing.T) {
		term := NewApp(NewAbs("x", NewVar("x")), NewVar("y"))
		got := ReduceStep(term)
		assert.True(t, got.Equal(NewVar("y")))
	})

	t.Run("reduces under a binder", func(t *testing.T) {
		// λz.((λx.x) z) → λz.z
		term := NewAbs("z", NewApp(NewAbs("x", NewVar("x")), NewVar("z")))
		got := ReduceStep(term)
		assert.True(t, got.Equal(NewAbs("z", NewVar("z"))))
	})

	t.Run("non-redex application is rebuilt", func(t *testing.T) {
		term := NewApp(NewVar("f"), NewVar("a"))
		got := ReduceStep(term)
		assert.True(t, got.Equal(term))
	})

	t.Run("nested redex may need another pass", func(t *testing.T) {
		// ((λx.(x y)) (λz.z)) → ((λz.z) y) → y
		inner := NewAbs("x", NewApp(NewVar("x"), NewVar("y")))
		term := NewApp(inner, NewAbs("z", NewVar("z")))

		once := ReduceStep(term)
		require.True(t, once.Equal(NewApp(NewAbs("z", NewVar("z")), NewVar("y"))), "got %s", once)

		twice := ReduceStep(once)
		assert.True(t, twice.Equal(NewVar("y")))
	})
}

// TestNormalize drives reduction to a fixed point.
func TestNormalize(t *testing.T) {
	t.Run("reaches normal form across passes", func(t *testing.T) {
		inner := NewAbs("x", NewApp(NewVar("x"), NewVar("y")))
		term := NewApp(inner, NewAbs("z", NewVar("z")))
		got := Normalize(term)
		assert.True(t, got.Equal(NewVar("y")))
	})

	t.Run("normal form is returned unchanged", func(t *testing.T) {
		k := NewAbs("x", NewAbs("y", NewVar("x")))
		assert.True(t, Normalize(k).Equal(k))
	})

	t.Run("idempotent", func(t *testing.T) {
		term := NewApp(
			NewAbs("x", NewApp(NewVar("x"), NewVar("x"))),
			NewAbs("z", NewVar("z")),
		)
		once := Normalize(term)
		assert.True(t, Normalize(once).Equal(once), "Normalize(Normalize(t)) must equal Normalize(t) exactly")
	})
}

// TestNormalizeBounded exercises the step-bounded variant on a term
// that grows without a normal form.
func TestNormalizeBounded(t *testing.T) {
	// (λx.((x x) x)) applied to itself grows by one application per pass.
	grow := NewAbs("x", Apply(NewVar("x"), NewVar("x"), NewVar("x")))
	diverging := NewApp(grow, grow)

	t.Run("reports exhaustion on divergent term", func(t *testing.T) {
		r := NewReducer()
		_, normal := r.NormalizeBounded(diverging, 25)
		assert.False(t, normal)
	})

	t.Run("reports normal form within bound", func(t *testing.T) {
		r := NewReducer()
		term := NewApp(NewAbs("x", NewVar("x")), NewAbs("z", NewVar("z")))
		got, normal := r.NormalizeBounded(term, 10)
		require.True(t, normal)
		assert.True(t, got.Equal(NewAbs("z", NewVar("z"))))
	})
}

// TestEquivalent checks semantic equality: same normal form up to
// alpha-equivalence.
func TestEquivalent(t *testing.T) {
	t.Run("redex is equivalent to its contractum", func(t *testing.T) {
		id := NewAbs("x", NewVar("x"))
		redex := NewApp(id, NewAbs("y", NewVar("y")))
		eq, err := Equivalent(redex, NewAbs("w", NewVar("w")))
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("distinct normal forms are not equivalent", func(t *testing.T) {
		k := NewAbs("x", NewAbs("y", NewVar("x")))
		ki := NewAbs("x", NewAbs("y", NewVar("y")))
		eq, err := Equivalent(k, ki)
		require.NoError(t, err)
		assert.False(t, eq)
	})
}

// TestReducerIsolation verifies that separate reducers draw from
// separate supplies, so renames are reproducible per instance.
func TestReducerIsolation(t *testing.T) {
	term := NewAbs("y", NewVar("x"))

	a := NewReducer().Substitute(term, "x", NewVar("y")).(*Abs)
	b := NewReducer().Substitute(term, "x", NewVar("y")).(*Abs)

	assert.Equal(t, a.Param, b.Param, "fresh reducers should rename identically")
}
