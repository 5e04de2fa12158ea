package shm

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrInvalidSize reports a requested segment size of zero or less. It is
// raised before any OS call is made.
var ErrInvalidSize = errors.New("shm: segment size must be greater than zero")

// ErrReadOnly reports a store through a view opened with ReadOnly.
var ErrReadOnly = errors.New("shm: segment is mapped read-only")

// ErrNoSpace reports that /dev/shm lacks room for the requested segment.
var ErrNoSpace = errors.New("shm: not enough space left on /dev/shm")

// FileCause classifies the OS-level reason behind a FileError.
type FileCause int

const (
	FileCauseUnknown FileCause = iota
	FileCausePermission
	FileCauseInvalidName
	FileCauseTooManyFiles
	FileCauseNameTooLong
	FileCauseTooLarge
	FileCauseInterrupted
	FileCauseNotExist
	FileCauseInternal
)

func (c FileCause) String() string {
	switch c {
	case FileCausePermission:
		return "permission denied"
	case FileCauseInvalidName:
		return "invalid name"
	case FileCauseTooManyFiles:
		return "too many files open"
	case FileCauseNameTooLong:
		return "filename too long"
	case FileCauseTooLarge:
		return "larger than maximum file size"
	case FileCauseInterrupted:
		return "interrupted by signal"
	case FileCauseNotExist:
		return "does not exist"
	case FileCauseInternal:
		return "internal error"
	}
	return "unknown"
}

// FileError reports a failure to create, open, resize, close or unlink the
// backing segment entry. Close and unlink failures never propagate out of
// Close; they show up in the journal only.
type FileError struct {
	Op    string // "open", "truncate", "close", "unlink"
	Name  string
	Cause FileCause
	Errno error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("shm: could not %s %s: %s", e.Op, e.Name, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Errno }

func newFileError(op, name string, err error) *FileError {
	e := &FileError{Op: op, Name: name, Cause: FileCauseUnknown, Errno: err}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return e
	}
	switch errno {
	case syscall.EACCES, syscall.EPERM:
		e.Cause = FileCausePermission
	case syscall.EINVAL:
		// ftruncate EINVAL is a descriptor problem, not a naming one.
		if op == "truncate" {
			e.Cause = FileCauseInternal
		} else {
			e.Cause = FileCauseInvalidName
		}
	case syscall.EMFILE, syscall.ENFILE:
		e.Cause = FileCauseTooManyFiles
	case syscall.ENAMETOOLONG:
		e.Cause = FileCauseNameTooLong
	case syscall.EFBIG:
		e.Cause = FileCauseTooLarge
	case syscall.EINTR:
		e.Cause = FileCauseInterrupted
	case syscall.ENOENT:
		e.Cause = FileCauseNotExist
	case syscall.EBADF:
		e.Cause = FileCauseInternal
	}
	return e
}

// MemoryCause classifies the OS-level reason behind a MemoryError.
type MemoryCause int

const (
	MemoryCauseUnknown MemoryCause = iota
	MemoryCausePermission
	MemoryCauseLocked
	MemoryCauseTooLarge
	MemoryCauseNoDevice
	MemoryCauseNoMemory
	MemoryCauseSealed
	MemoryCauseInternal
)

func (c MemoryCause) String() string {
	switch c {
	case MemoryCausePermission:
		return "permissions/file error"
	case MemoryCauseLocked:
		return "locking error"
	case MemoryCauseTooLarge:
		return "too large"
	case MemoryCauseNoDevice:
		return "filesystem does not support memory mapping"
	case MemoryCauseNoMemory:
		return "no memory available or too many mappings"
	case MemoryCauseSealed:
		return "file sealed or execution denied"
	case MemoryCauseInternal:
		return "internal error"
	}
	return "unknown"
}

// MemoryError reports a failure to map or unmap the segment. Unmap failures
// never propagate out of Close.
type MemoryError struct {
	Op    string // "map", "unmap"
	Name  string
	Size  int
	Cause MemoryCause
	Errno error
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("shm: could not %s %s (%d bytes): %s", e.Op, e.Name, e.Size, e.Cause)
}

func (e *MemoryError) Unwrap() error { return e.Errno }

func newMemoryError(op, name string, size int, err error) *MemoryError {
	e := &MemoryError{Op: op, Name: name, Size: size, Cause: MemoryCauseUnknown, Errno: err}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return e
	}
	switch errno {
	case syscall.EACCES, syscall.EBADF:
		e.Cause = MemoryCausePermission
	case syscall.EAGAIN:
		e.Cause = MemoryCauseLocked
	case syscall.EINVAL:
		if op == "unmap" {
			e.Cause = MemoryCauseInternal
		} else {
			e.Cause = MemoryCauseTooLarge
		}
	case syscall.ENODEV:
		e.Cause = MemoryCauseNoDevice
	case syscall.ENOMEM:
		e.Cause = MemoryCauseNoMemory
	case syscall.EPERM:
		e.Cause = MemoryCauseSealed
	}
	return e
}

// IndexError reports a bounds-checked array access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("shm: tried to access element %d (size = %d)", e.Index, e.Len)
}
