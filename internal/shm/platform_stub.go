//go:build !linux

package shm

import "errors"

// ErrUnsupported is returned on platforms without POSIX shared memory.
var ErrUnsupported = errors.New("shm: POSIX shared memory requires linux")

func Path(name string) string { return name }

func Open(name string) (int, error) { return NoFd, ErrUnsupported }

func OpenProbe(name string) (int, error) { return NoFd, ErrUnsupported }

func Truncate(fd int, size int64) error { return ErrUnsupported }

func Map(fd, size int, writable bool) ([]byte, error) { return nil, ErrUnsupported }

func Unmap(data []byte) error { return ErrUnsupported }

func Close(fd int) error { return ErrUnsupported }

func Unlink(name string) error { return ErrUnsupported }
