package fin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_EvalStringReturnsCompileErrors(t *testing.T) {
	ctx := newTestContext(t)
	err := ctx.EvalString(`void Main() { int a = 1; int a = 2; }`)
	require.Error(t, err)
	var rerr ResolveError
	assert.ErrorAs(t, err, &rerr)
}

func TestContext_EvalStringWithNoEntryFunctionIsANoOp(t *testing.T) {
	ctx := newTestContext(t)
	err := ctx.EvalString(`int Double(int x) { return x + x; }`)
	assert.NoError(t, err)
}

func TestContext_EvalFileReadsAndEvaluatesSource(t *testing.T) {
	ctx := newTestContext(t)
	var buf []byte
	old := writeLineSink
	writeLineSink = &sliceWriter{buf: &buf}
	defer func() { writeLineSink = old }()

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.fin")
	require.NoError(t, os.WriteFile(path, []byte(`void Main() { io.WriteLine("from a file"); }`), 0o644))

	require.NoError(t, ctx.EvalFile(path))
	assert.Equal(t, "from a file\n", string(buf))
}

// TestContext_EvalFileMissingPathIsSilentNoOp matches fin_ctx_eval_file's
// "file not found -> nothing happens" behavior documented in spec.md §6.
func TestContext_EvalFileMissingPathIsSilentNoOp(t *testing.T) {
	ctx := newTestContext(t)
	err := ctx.EvalFile(filepath.Join(t.TempDir(), "does-not-exist.fin"))
	assert.NoError(t, err)
}

func TestContext_NewContextUsesProvidedAllocHook(t *testing.T) {
	calls := 0
	hook := func(ptr []byte, size int) []byte {
		calls++
		return defaultAlloc(ptr, size)
	}
	ctx := NewContext(hook, ContextOptions{Optimize: true})
	ctx.alloc(nil, 8)
	assert.Equal(t, 1, calls)
}

// TestModule_EntryDrivesDirectVMInvocation exercises the embedder-facing
// path around EvalString: CompileModule, Module.Entry, VM.Invoke, VM.Free.
func TestModule_EntryDrivesDirectVMInvocation(t *testing.T) {
	ctx := newTestContext(t)
	mod, err := CompileModule(ctx, `int Main() { return 2 + 3; }`)
	require.NoError(t, err)
	require.NotNil(t, mod.Entry())

	vm := NewVM(ctx)
	ret, err := vm.Invoke(mod.Entry(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ret.Int())
	vm.Free()

	noEntry, err := CompileModule(ctx, `int Helper() { return 1; }`)
	require.NoError(t, err)
	assert.Nil(t, noEntry.Entry())
}

func TestContext_CloseClearsState(t *testing.T) {
	ctx := NewDefaultContext()
	require.NoError(t, ctx.EvalString(`void Main() {}`))
	ctx.Close()
	assert.Nil(t, ctx.pool)
	assert.Nil(t, ctx.modules)
}

type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
