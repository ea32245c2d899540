// Copyright 2026 The memvfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package watch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/memvfs-go/memvfs/queue"
)

// MaxQueueSize bounds a Key's per-key event buffer; the (MaxQueueSize+1)th
// pending event and beyond collapse into a single OVERFLOW marker.
const MaxQueueSize = 256

type keyState int

const (
	stateReady keyState = iota
	stateSignalled
)

// Key is a single watch registration: the set of event kinds it cares
// about, its bounded event buffer, and its READY/SIGNALLED state.
type Key struct {
	mu sync.Mutex

	id        uuid.UUID
	watchable any
	kinds     map[EventKind]bool

	events        queue.Queue[Event]
	overflow      bool
	overflowCount uint32

	state keyState
	valid bool

	service *Service
}

// ID returns this key's stable identity token.
func (k *Key) ID() uuid.UUID { return k.id }

// Watchable returns the object this key was registered against.
func (k *Key) Watchable() any { return k.watchable }

// Valid reports whether the key has not been canceled.
func (k *Key) Valid() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.valid
}

func (k *Key) subscribed(kind EventKind) bool {
	return k.kinds[kind]
}

// Post appends e to the key's bounded buffer if the key is valid and
// subscribed to e.Kind. Once the buffer is full, further posts do not
// grow it; they instead increment the pending overflow count, later
// surfaced by PollEvents as a single synthetic Overflow event.
func (k *Key) Post(e EventKind) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.valid || !k.subscribed(e) {
		return
	}
	if k.events.Len() >= MaxQueueSize {
		k.overflow = true
		k.overflowCount++
		k.service.reportOverflow(1)
		return
	}
	k.events.Push(Event{Kind: e})
}

// Signal transitions READY to SIGNALLED and enqueues the key onto the
// owning service's blocking key queue. If the key was already SIGNALLED,
// it is left alone (coalescing): a key appears at most once in the
// service's queue between takes.
func (k *Key) Signal() {
	k.mu.Lock()
	wasReady := k.state == stateReady && k.valid
	k.state = stateSignalled
	k.mu.Unlock()
	if wasReady {
		k.service.enqueueKey(k)
	}
}

// PollEvents drains and returns all pending events, appending a synthetic
// Overflow event (with the dropped count) if the buffer overflowed since
// the last poll, and resets overflow tracking.
func (k *Key) PollEvents() []Event {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]Event, 0, k.events.Len()+1)
	for !k.events.IsEmpty() {
		out = append(out, k.events.Pop())
	}
	if k.overflow {
		out = append(out, Event{Kind: Overflow, Count: k.overflowCount})
		k.overflow = false
		k.overflowCount = 0
	}
	return out
}

// Reset returns the key to READY if it is SIGNALLED, valid, and has no
// pending events; a SIGNALLED key with events waiting stays SIGNALLED and
// is re-enqueued. Reports whether the key is still valid.
func (k *Key) Reset() bool {
	k.mu.Lock()
	if !k.valid {
		k.mu.Unlock()
		return false
	}
	if k.state != stateSignalled {
		k.mu.Unlock()
		return true
	}
	if k.events.IsEmpty() && !k.overflow {
		k.state = stateReady
		k.mu.Unlock()
		return true
	}
	k.mu.Unlock()
	k.service.enqueueKey(k)
	return true
}

// Cancel invalidates the key; it is removed from future signaling and
// Reset subsequently always returns false.
func (k *Key) Cancel() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.valid = false
}
