package fin

// object is a refcounted composite value allocated by the new opcode. Field
// slots are plain Values; the VM copies struct-literal argument values into
// them at construction time.
type object struct {
	ref    int32
	fields []Value
}

func newObject(fields []Value) *object {
	o := &object{ref: 1, fields: make([]Value, len(fields))}
	copy(o.fields, fields)
	return o
}

func (o *object) incRef() {
	o.ref++
}

// decRef drops the refcount and, at zero, releases any string/object field
// references before the object itself becomes collectible. The reference
// implementation frees the block outright without touching its fields;
// since fin's surface grammar cannot construct reference cycles, releasing
// field references here is always safe and avoids leaking interned strings
// held only by a dead object.
func (o *object) decRef(pool *stringPool) {
	o.ref--
	if o.ref != 0 {
		return
	}
	for _, f := range o.fields {
		switch f.kind {
		case TypeString:
			pool.release(f.s)
		case TypeObject:
			if f.o != nil {
				f.o.decRef(pool)
			}
		}
	}
	o.fields = nil
}
