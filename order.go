package blobvec

import "golang.org/x/exp/slices"

// Comparator is a three-way comparison between two elements. It receives
// pointers to the slots' blob references, not the blobs themselves, and
// must dereference once to reach the payloads. It returns a negative value
// if a sorts before b, zero if they are equal, and a positive value if a
// sorts after b.
type Comparator func(a, b *[]byte) int

// Sort reorders all elements in place using cmp. The sort is not
// guaranteed to be stable, equal elements may swap places. Sorting an
// empty vector succeeds and changes nothing. Fails with ErrNotInitialized
// if the vector is not initialized or cmp is nil.
func (v *Vector) Sort(cmp Comparator) error {
	if !v.live() || cmp == nil {
		return ErrNotInitialized
	}
	if v.used == 0 {
		return nil
	}
	slices.SortFunc(v.slots[:v.used], func(a, b []byte) int {
		return cmp(&a, &b)
	})
	return nil
}

// Reverse reverses the element order in place by swapping slots, without
// allocating. No-op on an uninitialized vector.
func (v *Vector) Reverse() {
	if !v.live() {
		return
	}
	for i := 0; i < v.used/2; i++ {
		v.slots[i], v.slots[v.used-i-1] = v.slots[v.used-i-1], v.slots[i]
	}
}
