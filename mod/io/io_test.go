package io_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naleksiev/fin"
	"github.com/naleksiev/fin/mod/io"
	"github.com/naleksiev/fin/mod/stdops"
)

func TestIO_WriteLineOverloadsResolveByArgumentType(t *testing.T) {
	ctx := fin.NewDefaultContext()
	require.NoError(t, stdops.Register(ctx))
	require.NoError(t, io.Register(ctx))

	src := `void Main() {
		io.Write("no newline, ");
		io.WriteLine("a string");
		io.WriteLine(42);
		io.WriteLine(3.5);
	}`
	assert.NoError(t, ctx.EvalString(src))
}

func TestIO_CompileFailsOnUnresolvedOperatorWithoutStdops(t *testing.T) {
	ctx := fin.NewDefaultContext()
	// io.WriteLine(string) mangles to a signature resolved purely within
	// the io module itself, so Register alone (without stdops) must still
	// succeed; only a program that then calls an unregistered __op_*
	// signature fails at CompileModule time.
	require.NoError(t, io.Register(ctx))
	_, err := fin.CompileModule(ctx, `void Main() { int a = 1 + 1; io.WriteLine(a); }`)
	assert.Error(t, err)
}
