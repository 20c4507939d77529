package stdops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naleksiev/fin"
	"github.com/naleksiev/fin/mod/stdops"
)

func TestStdops_IntegerArithmetic(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))

	err := ctx.EvalString(`int Main() { int a = 2; int b = 3; return a * b + 1; }`)
	assert.NoError(t, err)
}

func TestStdops_StringComparison(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))

	err := ctx.EvalString(`bool Main() { string a = "foo"; string b = "foo"; return a == b; }`)
	assert.NoError(t, err)
}

func TestStdops_IntFloatConversionsRegistered(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))

	err := ctx.EvalString(`float Main() { int a = 3; return float(a) / 2.0; }`)
	assert.NoError(t, err)
}

func TestStdops_BitwiseAndLogicalOperators(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))

	err := ctx.EvalString(`int Main() { int a = 6; int b = 3; bool c = true; bool d = false; return (a & b) | (c && d ? 8 : 0); }`)
	assert.NoError(t, err)
}
