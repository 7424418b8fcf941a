// Package slots computes flat GL binding indices from per-slot resource
// counts.
//
// A pipeline declares an ordered list of resource layouts. GL has a single
// flat index space per binding kind (uniform buffer bindings, shader storage
// bindings), so the elements of the layout at slot N start after all
// elements of the same kind in slots 0..N-1.
package slots

// Counts holds the number of buffer elements of each kind in one resource
// layout.
type Counts struct {
	UniformBuffers uint32
	StorageBuffers uint32
}

// Bases are the first flat binding indices of a slot.
type Bases struct {
	Uniform uint32
	Storage uint32
}

// UniformBase returns the sum of uniform buffer counts of the slots below
// slot. Slots past the end of layouts contribute nothing.
func UniformBase(layouts []Counts, slot uint32) uint32 {
	var base uint32
	for i := uint32(0); i < slot && int(i) < len(layouts); i++ {
		base += layouts[i].UniformBuffers
	}
	return base
}

// StorageBase returns the sum of storage buffer counts of the slots below
// slot.
func StorageBase(layouts []Counts, slot uint32) uint32 {
	var base uint32
	for i := uint32(0); i < slot && int(i) < len(layouts); i++ {
		base += layouts[i].StorageBuffers
	}
	return base
}

// Compute returns both bases for slot.
//
// With legacy set, the storage base is derived from uniform buffer counts,
// reproducing executors that shared one counting function for both spaces.
// The result only differs from the non-legacy one when a lower slot has a
// different number of uniform and storage buffers.
func Compute(layouts []Counts, slot uint32, legacy bool) Bases {
	b := Bases{Uniform: UniformBase(layouts, slot)}
	if legacy {
		b.Storage = b.Uniform
	} else {
		b.Storage = StorageBase(layouts, slot)
	}
	return b
}
