package shm

import "unsafe"

// Object presents a segment sized for exactly one T as a single shared
// value.
//
// T must have a fixed, self-contained binary layout: no pointers, maps,
// slices, channels, strings or interfaces, nothing that is only meaningful
// inside one process. The bytes are reinterpreted as T with no header,
// versioning or alignment metadata, so every attaching process must agree on
// T exactly; cross-architecture sharing is out of contract.
type Object[T any] struct {
	seg *Segment
}

// NewObject creates or attaches the named segment sized for one T. A
// zero-sized T is rejected with ErrInvalidSize before any OS call.
func NewObject[T any](name string, perm Permission) (*Object[T], error) {
	seg, err := OpenSegment(name, int(unsafe.Sizeof(*new(T))), perm)
	if err != nil {
		return nil, err
	}
	return &Object[T]{seg: seg}, nil
}

// Get returns a pointer to the shared value. Stores through the pointer on a
// ReadOnly view land in the private copy and are never seen by other
// mappers.
func (o *Object[T]) Get() *T {
	return (*T)(o.seg.ptr())
}

// Load copies the shared value out.
func (o *Object[T]) Load() T {
	return *o.Get()
}

// Store overwrites the shared value. Rejected with ErrReadOnly on a ReadOnly
// view.
func (o *Object[T]) Store(v T) error {
	if o.seg.perm == ReadOnly {
		return ErrReadOnly
	}
	*o.Get() = v
	return nil
}

// Segment returns the underlying segment handle.
func (o *Object[T]) Segment() *Segment { return o.seg }

// Close releases the underlying segment.
func (o *Object[T]) Close() error { return o.seg.Close() }
