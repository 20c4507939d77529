package fin

import "os"

// AllocHook mirrors the reference allocator contract: alloc(nil, size>0)
// allocates, alloc(ptr, size>0) resizes, alloc(ptr, 0) releases, and
// alloc(nil, 0) is a no-op. fin's Go port is garbage-collected and does not
// need this to manage memory, but the hook is kept as an injectable point
// so the embedding API stays faithful to the original contract rather than
// silently dropping it because Go happens not to need it.
type AllocHook func(ptr []byte, size int) []byte

func defaultAlloc(ptr []byte, size int) []byte {
	if size == 0 {
		return nil
	}
	if len(ptr) >= size {
		return ptr[:size]
	}
	block := make([]byte, size)
	copy(block, ptr)
	return block
}

// ContextOptions carries typed, named settings kept small since fin has
// few knobs: an optimize flag for the compiler and a size hint for the
// string pool's initial capacity.
type ContextOptions struct {
	Optimize       bool
	StringPoolHint int32
}

// Context owns the interned string pool and the list of registered
// modules. It is the root object of the embedding API, matching
// fin_ctx_t.
type Context struct {
	pool    *stringPool
	modules *Module
	alloc   AllocHook
	opts    ContextOptions
}

// NewContext creates a context with an explicit allocator hook, matching
// fin_ctx_create.
func NewContext(alloc AllocHook, opts ContextOptions) *Context {
	if alloc == nil {
		alloc = defaultAlloc
	}
	return &Context{pool: newStringPoolWithHint(opts.StringPoolHint), alloc: alloc, opts: opts}
}

// NewDefaultContext creates a context with the default allocator hook,
// matching fin_ctx_create_default.
func NewDefaultContext() *Context {
	return NewContext(defaultAlloc, ContextOptions{})
}

// Close releases the context's resources. The Go port has nothing to free
// explicitly (the GC owns everything the pool and modules point at), so
// this exists purely for API-shape parity with fin_ctx_destroy.
func (c *Context) Close() {
	c.pool = nil
	c.modules = nil
}

// NewString interns s against the context's string pool and wraps it as a
// Value, the entry point native modules use to produce string results
// without needing access to the unexported interned-string type itself.
func (c *Context) NewString(s string) Value {
	return StringValue(c.pool.intern(s))
}

// EvalString compiles and runs src as a module, invoking its Main() entry
// point if present, matching fin_ctx_eval_string.
func (c *Context) EvalString(src string) error {
	mod, err := CompileModule(c, src)
	if err != nil {
		return err
	}
	if mod.entry == nil {
		return nil
	}
	vm := NewVM(c)
	_, err = vm.Invoke(mod.entry, nil)
	return err
}

// EvalFile reads path whole and evaluates it as source text, matching
// fin_ctx_eval_file. A missing file is a silent no-op, matching the
// reference's "file not found -> nothing happens" behavior rather than
// surfacing an I/O error to the embedder.
func (c *Context) EvalFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return c.EvalString(string(src))
}
