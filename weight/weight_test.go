package weight_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/manybody/weight"
	"github.com/stretchr/testify/require"
)

func TestUnity(t *testing.T) {
	u := weight.Unity()
	require.NoError(t, u.Validate())
	require.Equal(t, 1.0, u.Eval(0))
	require.Equal(t, 1.0, u.Eval(1e6))
	require.False(t, u.Decaying())
	require.False(t, u.Below(1e-300))
	require.Equal(t, "unity", u.Kind.String())
}

func TestExponential_Eval(t *testing.T) {
	e := weight.Exponential(0.5, 1e-3)
	require.NoError(t, e.Validate())
	require.Equal(t, 1.0, e.Eval(0))
	require.InDelta(t, math.Exp(-1), e.Eval(2), 1e-12)
	require.True(t, e.Decaying())
	require.Equal(t, "exponential", e.Kind.String())

	require.True(t, e.Below(1e-4))
	require.False(t, e.Below(1e-3))
}

func TestExponential_Validate(t *testing.T) {
	require.ErrorIs(t, weight.Exponential(0, 1e-3).Validate(), weight.ErrScale)
	require.ErrorIs(t, weight.Exponential(-1, 1e-3).Validate(), weight.ErrScale)
	require.ErrorIs(t, weight.Exponential(1, 0).Validate(), weight.ErrCutoff)
	require.ErrorIs(t, weight.Exponential(1, 1).Validate(), weight.ErrCutoff)
	require.ErrorIs(t, weight.Exponential(1, math.NaN()).Validate(), weight.ErrCutoff)
}

func TestUnknownKind(t *testing.T) {
	s := weight.Spec{Kind: weight.Kind(42)}
	require.ErrorIs(t, s.Validate(), weight.ErrKind)
	require.Equal(t, "unknown", s.Kind.String())
	// Eval falls back to unity semantics rather than panicking.
	require.Equal(t, 1.0, s.Eval(3))
}
