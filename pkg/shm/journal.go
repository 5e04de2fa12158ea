/*
 * Copyright 2025 SREDiag Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package shm

import (
	"time"

	queuepkg "github.com/Workiva/go-datastructures/queue"
)

// Op identifies a lifecycle transition recorded in the journal.
type Op string

const (
	OpOpen     Op = "open"
	OpTruncate Op = "truncate"
	OpMap      Op = "map"
	OpCloseFd  Op = "close"
	OpUnmap    Op = "unmap"
	OpUnlink   Op = "unlink"
)

// Event is one recorded lifecycle transition. Err is non-nil both for
// construction failures and for teardown failures that Close swallowed;
// draining the journal is the only way to observe the latter
// programmatically.
type Event struct {
	Op   Op
	Name string
	Err  error
	At   time.Time
}

const journalCap = 1024

type lifecycleJournal struct {
	ring *queuepkg.RingBuffer
}

var journal = &lifecycleJournal{ring: queuepkg.NewRingBuffer(journalCap)}

// record never blocks; when the ring is full the newest event is dropped.
func (j *lifecycleJournal) record(op Op, name string, err error) {
	ev := Event{Op: op, Name: name, Err: err, At: time.Now()}
	if ok, qerr := j.ring.Offer(ev); !ok || qerr != nil {
		internalLogger.debugf("journal full, dropping %s %s", op, name)
	}
}

// DrainEvents empties the lifecycle journal and returns its events in record
// order. Diagnostic only; events from every segment in the process are
// interleaved.
func DrainEvents() []Event {
	var evs []Event
	for journal.ring.Len() > 0 {
		item, err := journal.ring.Poll(time.Millisecond)
		if err != nil {
			break
		}
		evs = append(evs, item.(Event))
	}
	return evs
}
