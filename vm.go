package fin

// VM is a stack-based bytecode interpreter, grounded on fin_vm.c's
// computed-goto opcode loop and calling convention. Unlike the reference's
// fixed 64-slot stash, the stack here is a plain growable slice — there is
// no embedder-configurable depth limit to honor in a garbage-collected
// runtime.
type VM struct {
	ctx   *Context
	stack []Value
}

// NewVM creates a VM bound to ctx, matching fin_vm_create.
func NewVM(ctx *Context) *VM {
	return &VM{ctx: ctx, stack: make([]Value, 0, 64)}
}

func (vm *VM) push(v Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() Value {
	n := len(vm.stack) - 1
	v := vm.stack[n]
	vm.stack = vm.stack[:n]
	return v
}

// Invoke pushes args and runs fn to completion, matching fin_vm_invoke:
// the public entry point for embedders driving a function directly rather
// than through EvalString.
func (vm *VM) Invoke(fn *Func, args []Value) (ret Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	base := len(vm.stack)
	vm.stack = append(vm.stack, args...)
	vm.invoke(fn)
	if fn.hasRet {
		ret = vm.stack[base]
	}
	vm.stack = vm.stack[:base]
	return ret, nil
}

// invoke runs fn against the fn.args values already sitting at the top of
// the stack, leaving exactly zero or one value (the result) in their
// place afterward — the net effect of fin_op_call's
// `top -= func->args - (func->ret_type ? 1 : 0)` adjustment, applied here
// instead of by the caller so every invoke() leaves a uniform stack shape.
func (vm *VM) invoke(fn *Func) {
	argsBase := len(vm.stack) - int(fn.args)
	if fn.isNative {
		args := append([]Value(nil), vm.stack[argsBase:]...)
		result := fn.native(vm.ctx, args)
		vm.stack = vm.stack[:argsBase]
		if fn.hasRet {
			vm.push(result)
		}
		return
	}
	vm.interpret(fn, argsBase)
}

// Free exists for API-shape parity with the reference's vm_free; the
// Go port has no allocator-owned block to hand back.
func (vm *VM) Free() {
	vm.stack = nil
}

func readI16(code []byte, pos int) int16 {
	return int16(uint16(code[pos]) | uint16(code[pos+1])<<8)
}

func readU16(code []byte, pos int) int {
	return int(code[pos]) | int(code[pos+1])<<8
}

// interpret runs fn's bytecode body. argsBase is the index of fn's first
// argument slot; locals are allocated immediately above the arguments, and
// the expression-evaluation stack grows above the locals — the same
// contiguous layout fin_vm_interpret uses (args below stack, locals at
// stack[0:locals], eval stack above that).
func (vm *VM) interpret(fn *Func, argsBase int) {
	localsBase := len(vm.stack)
	for i := int32(0); i < fn.locals; i++ {
		vm.push(Value{})
	}
	code := fn.code
	ip := 0
	for {
		op := opcode(code[ip])
		ip++
		switch op {
		case opLoadConst:
			idx := readU16(code, ip)
			ip += 2
			vm.push(fn.mod.consts[idx])

		case opLoadArg:
			idx := int(code[ip])
			ip++
			vm.push(vm.stack[argsBase+idx])

		case opStoreArg:
			idx := int(code[ip])
			ip++
			vm.stack[argsBase+idx] = vm.pop()

		case opLoadLocal:
			idx := int(code[ip])
			ip++
			vm.push(vm.stack[localsBase+idx])

		case opStoreLocal:
			idx := int(code[ip])
			ip++
			vm.stack[localsBase+idx] = vm.pop()

		case opLoadField:
			idx := int(code[ip])
			ip++
			top := len(vm.stack) - 1
			if vm.stack[top].o != nil {
				vm.stack[top] = vm.stack[top].o.fields[idx]
			}

		case opStoreField:
			idx := int(code[ip])
			ip++
			val := vm.stack[len(vm.stack)-1]
			recv := vm.stack[len(vm.stack)-2]
			if recv.o != nil {
				recv.o.fields[idx] = val
			}
			vm.stack = vm.stack[:len(vm.stack)-2]

		case opCall:
			idx := readU16(code, ip)
			ip += 2
			callee := fn.mod.binds[idx].fn
			vm.invoke(callee)

		case opBranch:
			offset := int(readI16(code, ip))
			ip += 2 + offset

		case opBranchIf:
			cond := vm.pop()
			offset := int(readI16(code, ip))
			if cond.Bool() {
				ip += 2 + offset
			} else {
				ip += 2
			}

		case opBranchIfN:
			cond := vm.pop()
			if cond.Bool() {
				ip += 2
			} else {
				offset := int(readI16(code, ip))
				ip += 2 + offset
			}

		case opReturn:
			var ret Value
			if fn.hasRet {
				ret = vm.stack[len(vm.stack)-1]
			}
			vm.stack = vm.stack[:argsBase]
			if fn.hasRet {
				vm.push(ret)
			}
			return

		case opPop:
			vm.pop()

		case opNew:
			n := int(code[ip])
			ip++
			start := len(vm.stack) - n
			obj := newObject(vm.stack[start:])
			vm.stack = vm.stack[:start]
			vm.push(ObjectValue(obj))

		default:
			panic(ResolveError{Message: "unknown opcode"})
		}
	}
}
