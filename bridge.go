package fin

// CreateModule registers a batch of native functions under name (the empty
// string registers unqualified operators/conversions, matching
// fin_mod_create(ctx, "", ...) for the std module), parsing each
// FuncDesc.Sign the same way the reference native bridge does: by feeding
// it through the tokenizer and reading "ret_type name(t1,t2)", where a
// leading "void" keyword means no return value.
func CreateModule(ctx *Context, name string, descs []FuncDesc) (*Module, error) {
	mod := &Module{ctx: ctx, name: name}
	mod.funcs = make([]*Func, len(descs))

	for i, d := range descs {
		lex := newLexer(d.Sign)

		f := &Func{mod: mod, isNative: true, native: d.Func}

		if lex.match(tokVoid) {
			f.hasRet = false
		} else {
			f.hasRet = true
			f.retType = lex.consumeName()
		}

		fname := lex.consumeName()

		var sign string
		if name != "" {
			sign = name + "." + fname
		} else {
			sign = fname
		}
		sign += "("
		lex.match(tokLParen)
		argc := int32(0)
		for !lex.match(tokRParen) {
			if argc > 0 {
				lex.match(tokComma)
				sign += ","
			}
			sign += lex.consumeName()
			argc++
		}
		sign += ")"

		f.sign = sign
		f.args = argc
		mod.funcs[i] = f
	}

	if err := registerModule(ctx, mod); err != nil {
		return nil, err
	}
	return mod, nil
}

// kindForTypeName maps a compile-time type name to the runtime Value Kind
// the VM tags values with; any non-primitive name (a struct type) is a
// TypeObject at runtime.
func kindForTypeName(name string) Type {
	switch name {
	case "bool":
		return TypeBool
	case "int":
		return TypeInt
	case "float":
		return TypeFloat
	case "string":
		return TypeString
	default:
		return TypeObject
	}
}
