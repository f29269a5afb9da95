// Package blobvec provides a growable sequence container for opaque byte
// blobs with an explicit lifecycle and strict single ownership.
//
// A Vector copies every payload on its way in and hands out copies on its
// way out, so the container never aliases caller memory and no two
// references ever share a blob. The one exception is Delete, which removes
// an element by transferring its blob to the caller.
//
// Capacity is managed explicitly: a fresh vector reserves ten slots, grows
// by doubling whenever an element would not fit, and can be grown further
// with Reserve. Capacity never shrinks while the vector is live; Release
// drops the backing buffer entirely and the vector must be re-initialized
// with Init before further use.
//
// Element payloads carry no type information. Every adding operation takes
// an explicit byte count and the vector never infers element size from a
// type. If heterogeneous sizes are mixed, keeping track of what is stored
// where is the caller's business.
//
// In Go a failed buffer allocation surfaces as a runtime panic, so ErrAlloc
// is in practice only returned for payloads that cannot be copied in the
// first place (nil data, or a byte count of zero or beyond the payload).
//
// A Vector is not safe for concurrent use. Callers that share one across
// goroutines must bring their own locking.
package blobvec
