package blobvec

// Append copies the first n bytes of data into a new element at the end of
// the vector, growing capacity first if needed. Fails with ErrAlloc if the
// payload cannot be copied: nil data, or n being zero or beyond the
// payload. On failure the vector is left unchanged.
func (v *Vector) Append(data []byte, n int) error {
	if !v.live() {
		return ErrNotInitialized
	}
	blob := newBlob(data, n)
	if blob == nil {
		return ErrAlloc
	}

	v.grow()
	v.slots[v.used] = blob
	v.used++
	v.metrics.countAppend()
	return nil
}

// Insert copies the first n bytes of data into a new element at index i,
// shifting the elements at and after i one slot to the right. An index at
// or beyond the current length appends instead; this fallback is part of
// the contract, not an error. Failure modes are the same as for Append.
func (v *Vector) Insert(data []byte, n, i int) error {
	if !v.live() {
		return ErrNotInitialized
	}
	if i >= v.used {
		return v.Append(data, n)
	}
	if i < 0 {
		i = 0
	}
	blob := newBlob(data, n)
	if blob == nil {
		return ErrAlloc
	}

	v.grow()
	copy(v.slots[i+1:v.used+1], v.slots[i:v.used])
	v.slots[i] = blob
	v.used++
	v.metrics.countInsert()
	return nil
}

// Delete removes the element at the given index and transfers ownership of
// its blob to the caller - the vector no longer tracks it. An index at or
// beyond the last element clamps to the last element. Elements after the
// removed one shift left, keeping their order. Returns nil if the vector
// is not initialized or empty.
func (v *Vector) Delete(i int) []byte {
	if !v.live() || v.used == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i > v.used-1 {
		i = v.used - 1
	}

	blob := v.slots[i]
	copy(v.slots[i:v.used-1], v.slots[i+1:v.used])
	v.used--
	v.slots[v.used] = nil
	v.metrics.countDeletes(1)
	return blob
}

// DeleteRange removes and drops up to n consecutive elements starting at
// index i. Both values clamp instead of failing: an out-of-range index
// clamps to the last valid position and a count beyond the remaining tail
// clamps to exactly that tail. Trailing elements shift left to close the
// gap. No-op when n is zero or the vector is not initialized or empty.
func (v *Vector) DeleteRange(i, n int) {
	if !v.live() || v.used == 0 || n <= 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= v.used {
		i = v.used - 1
	}
	if n > v.used-i {
		n = v.used - i
	}

	copy(v.slots[i:], v.slots[i+n:v.used])
	for j := v.used - n; j < v.used; j++ {
		v.slots[j] = nil
	}
	v.used -= n
	v.metrics.countDeletes(n)
}

// newBlob returns an exclusively owned copy of the first n bytes of data,
// or nil if the payload cannot be materialized.
func newBlob(data []byte, n int) []byte {
	if data == nil || n <= 0 || n > len(data) {
		return nil
	}
	blob := make([]byte, n)
	copy(blob, data)
	return blob
}

// duplicateBytes returns a new copy of the given byte slice.
func duplicateBytes(a []byte) []byte {
	b := make([]byte, len(a))
	copy(b, a)
	return b
}
