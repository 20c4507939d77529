package fin

// NativeFunc is a host function bridged into fin. It receives the evaluated
// argument values in call order and returns the result value (TypeVoid
// results should return the zero Value).
type NativeFunc func(ctx *Context, args []Value) Value

// FuncDesc describes one native function to register, using the same
// compact signature-string form the reference native bridge parses
// ("ret_type name(t1,t2)", with a leading "void" meaning no return value).
type FuncDesc struct {
	Sign string
	Func NativeFunc
}

// Func is a resolved, callable unit: either a native Go function or a
// compiled bytecode body. mod points back at the owning Module so the VM
// can reach its constant pool and bind table. Embedders obtain one through
// Module.Entry and hand it to VM.Invoke; every field stays internal.
type Func struct {
	mod      *Module
	sign     string
	isNative bool
	native   NativeFunc
	code     []byte
	args     int32
	locals   int32
	retType  string // signature-style type name; meaningless unless hasRet
	hasRet   bool
}

// bind is one entry of a module's call table: a signature resolved, at
// registration time, to the function that satisfies it.
type bind struct {
	sign string
	fn   *Func
}

type fieldDef struct {
	name string
	typ  string
}

type modType struct {
	name   string
	fields []fieldDef
}

// Module groups a set of functions (native or compiled), the struct types
// they reference, and the constant pool / bind table a compiled module's
// bytecode indexes into. Modules form a singly linked list off Context,
// most-recently-registered first, mirroring fin_mod_t.next / ctx->mod.
type Module struct {
	ctx   *Context
	name  string
	funcs []*Func
	binds []bind
	types []modType
	consts []Value
	entry *Func
	next  *Module
}

// Entry returns the module's Main() function, or nil when the module does
// not define one. It is the handle embedders pass to VM.Invoke when driving
// execution directly instead of through Context.EvalString.
func (m *Module) Entry() *Func {
	return m.entry
}

func (m *Module) findLocalFunc(sign string) *Func {
	for _, f := range m.funcs {
		if f.sign == sign {
			return f
		}
	}
	return nil
}

// findFunc looks up sign first within mod's own functions, then walks the
// context's registered module list, matching fin_mod_find_func.
func findFunc(ctx *Context, mod *Module, sign string) *Func {
	if f := mod.findLocalFunc(sign); f != nil {
		return f
	}
	for m := ctx.modules; m != nil; m = m.next {
		if f := m.findLocalFunc(sign); f != nil {
			return f
		}
	}
	return nil
}

func (m *Module) findLocalType(name string) *modType {
	for i := range m.types {
		if m.types[i].name == name {
			return &m.types[i]
		}
	}
	return nil
}

// resolveField returns the field index of typeName.fieldName, searching
// mod's own types first and then the context's module list, matching
// fin_mod_resolve_field.
func resolveField(ctx *Context, mod *Module, typeName, fieldName string) int {
	mt := mod.findLocalType(typeName)
	if mt == nil {
		for m := ctx.modules; m != nil; m = m.next {
			if t := m.findLocalType(typeName); t != nil {
				mt = t
				break
			}
		}
	}
	if mt == nil {
		return -1
	}
	for i, f := range mt.fields {
		if f.name == fieldName {
			return i
		}
	}
	return -1
}

// constIdx returns the constant-pool index of val, deduplicating by bit
// equality exactly as fin_mod_const_idx does.
func (m *Module) constIdx(val Value) int {
	for i, c := range m.consts {
		if c.Equal(val) {
			return i
		}
	}
	m.consts = append(m.consts, val)
	return len(m.consts) - 1
}

// bindIdx returns the bind-table index for sign, creating an unresolved
// entry if this is the first reference, matching fin_mod_bind_idx.
func (m *Module) bindIdx(sign string) int {
	for i, b := range m.binds {
		if b.sign == sign {
			return i
		}
	}
	m.binds = append(m.binds, bind{sign: sign})
	return len(m.binds) - 1
}

// registerModule links mod into the context's module list and resolves every
// entry of its bind table by scanning the (now updated) module list
// front-to-back, matching fin_mod_register. An unresolved bind is a fatal
// configuration error — it means a compiled module calls a signature no
// registered module provides.
func registerModule(ctx *Context, mod *Module) error {
	mod.next = ctx.modules
	ctx.modules = mod

	for i := range mod.binds {
		b := &mod.binds[i]
		for m := ctx.modules; m != nil; m = m.next {
			if f := m.findLocalFunc(b.sign); f != nil {
				b.fn = f
				break
			}
		}
		if b.fn == nil {
			return BindError{Signature: b.sign}
		}
	}
	return nil
}
