package blobvec

// defaultCapacity is the number of slots a fresh vector reserves.
const defaultCapacity = 10

// Vector is a growable sequence of individually owned byte blobs.
// The zero value is not initialized; create vectors with New, or call Init.
type Vector struct {
	slots [][]byte
	used  int

	observer GrowthObserver
	metrics  *Metrics
}

// New creates a live vector with the default capacity of ten slots and no
// elements.
func New(opts ...Option) *Vector {
	v := &Vector{}
	for _, opt := range opts {
		opt(v)
	}
	if v.slots == nil {
		v.slots = make([][]byte, defaultCapacity)
	}
	return v
}

// Init returns the vector to its fresh state: default capacity, no
// elements. It is the way to bring a released vector back into service.
// Calling it on a live vector discards everything the vector holds.
func (v *Vector) Init() error {
	if v == nil {
		return ErrNotInitialized
	}
	v.slots = make([][]byte, defaultCapacity)
	v.used = 0
	return nil
}

// Initialized reports whether the vector is live, ie. holds a backing
// buffer. A released vector reports false until Init is called again.
func (v *Vector) Initialized() bool {
	return v.live()
}

// Len returns the number of elements the vector currently holds.
func (v *Vector) Len() int {
	if !v.live() {
		return 0
	}
	return v.used
}

// Cap returns the number of slots currently reserved.
func (v *Vector) Cap() int {
	if !v.live() {
		return 0
	}
	return len(v.slots)
}

// At returns a copy of the element at the given index, or nil if the index
// is out of range or the vector is not initialized. Handing out a copy
// keeps the vector's blobs exclusively owned.
func (v *Vector) At(i int) []byte {
	if !v.live() || i < 0 || i >= v.used {
		return nil
	}
	return duplicateBytes(v.slots[i])
}

// Reserve grows the capacity to exactly n slots, preserving all elements
// and their order. Reservations only ever grow: a request at or below the
// current capacity fails with ErrRange.
func (v *Vector) Reserve(n int) error {
	if !v.live() {
		return ErrNotInitialized
	}
	if n <= len(v.slots) {
		return ErrRange
	}
	v.setCapacity(n)
	return nil
}

// grow doubles the slot buffer if no free slot is left. Doubling, not
// linear growth, keeps appends at amortized O(1).
func (v *Vector) grow() {
	if v.used < len(v.slots) {
		return
	}
	v.setCapacity(2 * len(v.slots))
}

// setCapacity moves all slots into a new buffer of the given size and
// notifies the growth hooks.
func (v *Vector) setCapacity(n int) {
	grown := make([][]byte, n)
	copy(grown, v.slots[:v.used])
	oldCap := len(v.slots)
	v.slots = grown

	if v.observer != nil {
		v.observer(oldCap, n)
	}
	v.metrics.countGrow()
}

// live is the validity gate all operations consult before touching the
// slot buffer.
func (v *Vector) live() bool {
	return v != nil && v.slots != nil
}

// Clear drops every element and resets the length to zero. Capacity is
// retained unchanged. No-op on an uninitialized vector.
func (v *Vector) Clear() {
	if !v.live() {
		return
	}
	for i := 0; i < v.used; i++ {
		v.slots[i] = nil
	}
	v.used = 0
}

// Release drops every element and the backing buffer itself. Afterwards
// the vector is uninitialized: all mutations fail with ErrNotInitialized
// until Init brings it back. No-op if already released.
func (v *Vector) Release() {
	if !v.live() {
		return
	}
	v.slots = nil
	v.used = 0
}
