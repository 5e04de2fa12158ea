package shm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	platform "github.com/srediag/shmseg/internal/shm"
)

// Permission selects the logical access mode of a segment or view.
type Permission int

const (
	// ReadWrite maps the segment shared and writable; stores are visible to
	// every other mapper of the same name.
	ReadWrite Permission = iota
	// ReadOnly maps the segment private copy-on-write; stores land in a
	// process-local copy and are never seen by other mappers.
	ReadOnly
)

func (p Permission) String() string {
	if p == ReadOnly {
		return "read-only"
	}
	return "read-write"
}

// OpenOptions holds segment creation parameters.
type OpenOptions struct {
	// Name is the canonical segment name. Run identifiers through FormatName
	// first; Open does not validate names itself.
	Name string
	// Size is the segment length in bytes. Must be greater than zero.
	Size int
	// Permission selects the mapping mode. The zero value is ReadWrite.
	Permission Permission
	// Tracer and Meter optionally instrument the open sequence.
	Tracer trace.Tracer
	Meter  metric.Meter
}

// Segment owns one descriptor and one mapping of a named POSIX shared-memory
// segment. The bytes behind the mapping are shared with every other handle
// of the same name, in this process or any other; the Segment owns only its
// local projection.
//
// Construction runs open, truncate, map, close-descriptor, in that order;
// any failure releases what was already acquired and aborts. Close runs
// unmap then unlink, swallowing their failures (see the journal), and treats
// a name already removed by another handle as success.
type Segment struct {
	name string
	id   string
	size int
	perm Permission
	fd   int
	data []byte

	closeOnce sync.Once
}

// Open creates or attaches the named segment and maps it. The open itself
// always requests read-write access with create so that any process can
// (re)size the segment; opts.Permission is enforced at the mapping step. If
// the segment already exists it is resized to opts.Size, discarding bytes
// past the new end when shrinking.
func Open(ctx context.Context, opts OpenOptions) (s *Segment, err error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSize, opts.Size)
	}
	if opts.Tracer != nil {
		var span trace.Span
		ctx, span = opts.Tracer.Start(ctx, "shm.Open", trace.WithAttributes(
			attribute.String("shm.name", opts.Name),
			attribute.Int("shm.size", opts.Size),
			attribute.String("shm.permission", opts.Permission.String()),
		))
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()
	}

	s = &Segment{
		name: opts.Name,
		size: opts.Size,
		perm: opts.Permission,
		fd:   platform.NoFd,
	}
	if err = s.open(); err != nil {
		return nil, err
	}
	if err = s.mmap(); err != nil {
		return nil, err
	}
	s.closefd()

	registerSegment(s)
	segmentOpens.Inc()
	if opts.Meter != nil {
		if c, merr := opts.Meter.Int64Counter("shmseg.segment.opens"); merr == nil {
			c.Add(ctx, 1, metric.WithAttributes(attribute.String("shm.name", opts.Name)))
		}
	}
	return s, nil
}

// OpenSegment is shorthand for Open with a background context and no
// instrumentation.
func OpenSegment(name string, size int, perm Permission) (*Segment, error) {
	return Open(context.Background(), OpenOptions{Name: name, Size: size, Permission: perm})
}

// Name returns the canonical name the segment was opened with.
func (s *Segment) Name() string { return s.name }

// Size returns the segment length in bytes, fixed at construction.
func (s *Segment) Size() int { return s.size }

// Permission returns the logical access mode, fixed at construction.
func (s *Segment) Permission() Permission { return s.perm }

// IsMapped reports whether the segment is currently mapped.
func (s *Segment) IsMapped() bool { return s.data != nil }

// Bytes returns the mapped region. The slice aliases shared memory and is
// only valid until Close.
func (s *Segment) Bytes() []byte { return s.data }

func (s *Segment) ptr() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s.data))
}

// open creates or attaches the backing entry and resizes it. On a resize
// failure the fresh descriptor is released before the error propagates.
func (s *Segment) open() error {
	if !platform.CanCreateOnDevShm(uint64(s.size), platform.Path(s.name)) {
		err := fmt.Errorf("%w: %s needs %d bytes", ErrNoSpace, s.name, s.size)
		segmentOpenFailures.WithLabelValues("truncate").Inc()
		journal.record(OpTruncate, s.name, err)
		return err
	}
	fd, err := platform.Open(s.name)
	if err != nil {
		ferr := newFileError("open", s.name, err)
		segmentOpenFailures.WithLabelValues("open").Inc()
		journal.record(OpOpen, s.name, ferr)
		return ferr
	}
	s.fd = fd
	journal.record(OpOpen, s.name, nil)

	if err := platform.Truncate(s.fd, int64(s.size)); err != nil {
		ferr := newFileError("truncate", s.name, err)
		segmentOpenFailures.WithLabelValues("truncate").Inc()
		journal.record(OpTruncate, s.name, ferr)
		s.closefd()
		return ferr
	}
	journal.record(OpTruncate, s.name, nil)
	return nil
}

// mmap maps exactly size bytes at offset 0. On failure the descriptor is
// released before the error propagates.
func (s *Segment) mmap() error {
	data, err := platform.Map(s.fd, s.size, s.perm == ReadWrite)
	if err != nil {
		merr := newMemoryError("map", s.name, s.size, err)
		segmentOpenFailures.WithLabelValues("map").Inc()
		journal.record(OpMap, s.name, merr)
		s.closefd()
		return merr
	}
	s.data = data
	journal.record(OpMap, s.name, nil)
	return nil
}

// closefd releases the descriptor; POSIX guarantees the mapping outlives it.
// A close failure is reported, not returned, and the descriptor is treated
// as released either way.
func (s *Segment) closefd() {
	if s.fd == platform.NoFd {
		return
	}
	if err := platform.Close(s.fd); err != nil {
		ferr := newFileError("close", s.name, err)
		teardownFailures.WithLabelValues("close").Inc()
		journal.record(OpCloseFd, s.name, ferr)
		internalLogger.warnf("%v", ferr)
	} else {
		journal.record(OpCloseFd, s.name, nil)
	}
	s.fd = platform.NoFd
}

// Close unmaps the segment and unlinks its name. Existing mappings in other
// processes stay valid until they too unmap. Close never fails observably:
// teardown errors go to the logger and the journal only, and an unlink that
// finds the name already gone counts as success. Close is idempotent.
func (s *Segment) Close() error {
	s.closeOnce.Do(func() {
		s.unmap()
		s.unlink()
		unregisterSegment(s)
		segmentCloses.Inc()
	})
	return nil
}

// unmap is skipped when the segment was never mapped or mapping failed.
func (s *Segment) unmap() {
	if s.data == nil {
		return
	}
	if err := platform.Unmap(s.data); err != nil {
		merr := newMemoryError("unmap", s.name, s.size, err)
		teardownFailures.WithLabelValues("unmap").Inc()
		journal.record(OpUnmap, s.name, merr)
		internalLogger.warnf("%v", merr)
	} else {
		journal.record(OpUnmap, s.name, nil)
	}
	s.data = nil
}

// unlink removes the name so no new handle can attach. At most one handle's
// unlink actually removes it; the rest observe ENOENT and succeed silently.
func (s *Segment) unlink() {
	if err := platform.Unlink(s.name); err != nil {
		if errors.Is(err, syscall.ENOENT) {
			journal.record(OpUnlink, s.name, nil)
			return
		}
		ferr := newFileError("unlink", s.name, err)
		teardownFailures.WithLabelValues("unlink").Inc()
		journal.record(OpUnlink, s.name, ferr)
		internalLogger.warnf("%v", ferr)
		return
	}
	journal.record(OpUnlink, s.name, nil)
}
