package shm

import (
	"fmt"
	"unsafe"
)

// Array presents a segment sized for n contiguous values of T as a
// fixed-length shared sequence. The layout contract is the same as
// Object's: T must be fixed-size and self-contained, and every attaching
// process must agree on T and n.
type Array[T any] struct {
	seg *Segment
	n   int
}

// NewArray creates or attaches the named segment sized for n values of T.
func NewArray[T any](name string, n int, perm Permission) (*Array[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w (got %d elements)", ErrInvalidSize, n)
	}
	seg, err := OpenSegment(name, n*int(unsafe.Sizeof(*new(T))), perm)
	if err != nil {
		return nil, err
	}
	return &Array[T]{seg: seg, n: n}, nil
}

// Len returns the element count, fixed at construction.
func (a *Array[T]) Len() int { return a.n }

// Index returns the i-th element without bounds checking. An out-of-range i
// reads or corrupts adjacent memory; that is the caller's responsibility,
// use At when in doubt.
func (a *Array[T]) Index(i int) *T {
	return (*T)(unsafe.Add(a.seg.ptr(), uintptr(i)*unsafe.Sizeof(*new(T))))
}

// At returns the i-th element, or an IndexError when i is outside [0, Len).
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.n {
		return nil, &IndexError{Index: i, Len: a.n}
	}
	return a.Index(i), nil
}

// Set stores v at index i with bounds and permission checks.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.n {
		return &IndexError{Index: i, Len: a.n}
	}
	if a.seg.perm == ReadOnly {
		return ErrReadOnly
	}
	*a.Index(i) = v
	return nil
}

// Slice views the mapped elements as a Go slice for iteration. The slice
// aliases shared memory and is only valid until Close.
func (a *Array[T]) Slice() []T {
	return unsafe.Slice((*T)(a.seg.ptr()), a.n)
}

// Data returns a pointer to the first element.
func (a *Array[T]) Data() *T {
	return (*T)(a.seg.ptr())
}

// Segment returns the underlying segment handle.
func (a *Array[T]) Segment() *Segment { return a.seg }

// Close releases the underlying segment.
func (a *Array[T]) Close() error { return a.seg.Close() }
