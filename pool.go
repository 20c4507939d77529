package fin

import "strings"

// internedString is a refcounted, pool-owned string. Handles are only ever
// obtained through stringPool.intern and released through release; the pool
// is the sole owner of the backing bytes.
type internedString struct {
	ref  int32
	str  string
	slot int32
}

func (s *internedString) cstr() string {
	if s == nil {
		return ""
	}
	return s.str
}

func (s *internedString) len() int {
	if s == nil {
		return 0
	}
	return len(s.str)
}

type poolEntry struct {
	hash int32
	str  *internedString
}

// stringPool is an open-addressing intern table, grounded bit-for-bit on
// the reference string pool: FNV-1a hashing, linear probing, 3/4 load
// factor growth, and a tombstone hash of 1 (distinct from the 0 "never
// used" sentinel) left behind by a released slot.
type stringPool struct {
	entries  []poolEntry
	capacity int32
	count    int32
}

const (
	fnvPrime int32 = 16777619
	fnvBasis int32 = -2128831035 // 2166136261 as int32
)

func fnv1a(s string) int32 {
	hash := fnvBasis
	for i := 0; i < len(s); i++ {
		hash ^= int32(s[i])
		hash *= fnvPrime
	}
	return hash
}

func newStringPool() *stringPool {
	return &stringPool{}
}

// newStringPoolWithHint presizes the pool to the smallest power-of-two
// capacity of at least 16 that keeps hint entries within the 3/4 load
// factor, letting a
// caller that knows roughly how many strings a script will intern (via
// ContextOptions.StringPoolHint) skip the early doubling-resize churn.
func newStringPoolWithHint(hint int32) *stringPool {
	p := &stringPool{}
	if hint <= 0 {
		return p
	}
	capacity := int32(16)
	for capacity*3/4 < hint {
		capacity *= 2
	}
	p.resize(capacity)
	return p
}

func (p *stringPool) resize(capacity int32) {
	newEntries := make([]poolEntry, capacity)
	old := p.entries
	p.entries = newEntries
	p.capacity = capacity
	p.count = 0
	for _, e := range old {
		if e.str != nil {
			p.insert(e.hash, e.str)
		}
	}
}

func (p *stringPool) insert(hash int32, s *internedString) {
	slot := uint32(hash) % uint32(p.capacity)
	start := slot
	for {
		entry := &p.entries[slot]
		if entry.hash == 0 || entry.str == nil {
			entry.hash = hash
			entry.str = s
			s.slot = int32(slot)
			p.count++
			return
		}
		slot = (slot + 1) % uint32(p.capacity)
		if slot == start {
			return
		}
	}
}

// intern returns the pool-owned handle for s, incrementing its refcount if
// it already exists and creating+inserting it otherwise. An empty string
// interns to nil, matching the reference's "no allocation for empty/NULL"
// shortcut.
func (p *stringPool) intern(s string) *internedString {
	if s == "" {
		return nil
	}
	hash := fnv1a(s)
	if p.capacity > 0 {
		slot := uint32(hash) % uint32(p.capacity)
		start := slot
		for {
			entry := &p.entries[slot]
			if entry.hash == 0 && entry.str == nil {
				break
			}
			if entry.hash == hash && entry.str != nil && entry.str.str == s {
				entry.str.ref++
				return entry.str
			}
			slot = (slot + 1) % uint32(p.capacity)
			if slot == start {
				break
			}
		}
	}
	if p.capacity == 0 {
		p.resize(16)
	} else if p.count+1 > p.capacity*3/4 {
		p.resize(p.capacity * 2)
	}
	str := &internedString{ref: 1, str: s}
	p.insert(hash, str)
	return str
}

// release decrements s's refcount, tombstoning its slot at zero. Releasing
// a nil handle (the empty-string case) is a no-op.
func (p *stringPool) release(s *internedString) {
	if s == nil {
		return
	}
	s.ref--
	if s.ref == 0 {
		p.entries[s.slot].str = nil
		p.entries[s.slot].hash = 1
	}
}

func (p *stringPool) clone(s *internedString) *internedString {
	if s == nil {
		return nil
	}
	s.ref++
	return s
}

func (p *stringPool) concat(a, b *internedString) *internedString {
	return p.intern(a.cstr() + b.cstr())
}

// join interns the concatenation of strs in order, skipping nil handles the
// same way fin_str_join skips empty entries. The scratch builder is
// discarded once the result is interned.
func (p *stringPool) join(strs []*internedString) *internedString {
	var b strings.Builder
	for _, s := range strs {
		b.WriteString(s.cstr())
	}
	return p.intern(b.String())
}
