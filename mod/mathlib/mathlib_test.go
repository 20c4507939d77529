package mathlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naleksiev/fin"
	"github.com/naleksiev/fin/mod/mathlib"
	"github.com/naleksiev/fin/mod/stdops"
)

func TestMathlib_AbsSqrtMaxMinAndSin(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))
	require.NoError(t, mathlib.Register(ctx))

	src := `float Main() {
		int a = math.Abs(-3);
		float b = math.Sqrt(16.0);
		float c = math.Max(1.0, 2.0);
		float d = math.Min(1.0, 2.0);
		float e = math.Sin(0.0);
		return b + c + d + e;
	}`
	_, err := fin.CompileModule(ctx, src)
	require.NoError(t, err)
}

func TestMathlib_TwoArgumentMaxMinSignatureIsCorrectlyDeclared(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))
	require.NoError(t, mathlib.Register(ctx))

	// Regression guard for the deliberate fix of the reference's
	// one-parameter Max/Min signature bug: a two-argument call must
	// resolve, not fail to bind.
	_, err := fin.CompileModule(ctx, `int Main() { return math.Max(3, 7); }`)
	require.NoError(t, err)
}
