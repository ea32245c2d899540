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
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/metrics"
	"github.com/memvfs-go/memvfs/queue"
)

// Service owns the unbounded, blocking key queue: Signal enqueues a key at
// most once between Takes (coalescing); Take/Poll/PollTimeout drain it.
type Service struct {
	mu   sync.Mutex
	cond *sync.Cond

	keyQueue queue.Queue[*Key]
	keys     []*Key

	metrics metrics.Handle

	closed bool
}

// NewService constructs an open WatchService.
func NewService() *Service {
	s := &Service{keyQueue: queue.New[*Key]()}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// SetMetrics wires h to the overflow counter every key registered against
// this service reports through. Nil disables reporting.
func (s *Service) SetMetrics(h metrics.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = h
}

// reportOverflow forwards an overflow increment to the wired metrics
// handle, if any.
func (s *Service) reportOverflow(inc uint32) {
	s.mu.Lock()
	h := s.metrics
	s.mu.Unlock()
	if h != nil {
		h.WatchOverflow(context.Background(), inc)
	}
}

// Register creates a new, valid, READY key watching watchable for the
// given event kinds.
func (s *Service) Register(watchable any, kinds ...EventKind) (*Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ferrors.New(ferrors.ClosedWatchService, "register", "", "watch service is closed")
	}
	kindSet := make(map[EventKind]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}
	key := &Key{
		id:        uuid.New(),
		watchable: watchable,
		kinds:     kindSet,
		events:    queue.New[Event](),
		state:     stateReady,
		valid:     true,
		service:   s,
	}
	s.keys = append(s.keys, key)
	return key, nil
}

func (s *Service) enqueueKey(k *Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.keyQueue.Push(k)
	s.cond.Broadcast()
}

// Poll returns the next signaled key without blocking, or false if none is
// queued.
func (s *Service) Poll() (*Key, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keyQueue.IsEmpty() {
		return nil, false
	}
	return s.keyQueue.Pop(), true
}

// PollTimeout waits up to timeout for a signaled key. Returns (nil, false,
// nil) on timeout, or a ClosedWatchService error if the service closes
// while waiting.
func (s *Service) PollTimeout(timeout time.Duration) (*Key, bool, error) {
	deadline := time.Now().Add(timeout)
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.keyQueue.IsEmpty() && !s.closed {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, false, nil
		}
		timer := time.AfterFunc(remaining, func() {
			s.mu.Lock()
			s.cond.Broadcast()
			s.mu.Unlock()
		})
		s.cond.Wait()
		timer.Stop()
	}
	if s.closed {
		return nil, false, ferrors.New(ferrors.ClosedWatchService, "poll", "", "watch service is closed")
	}
	if s.keyQueue.IsEmpty() {
		return nil, false, nil
	}
	return s.keyQueue.Pop(), true, nil
}

// Take blocks until a key is signaled or the service closes.
func (s *Service) Take() (*Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.keyQueue.IsEmpty() && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return nil, ferrors.New(ferrors.ClosedWatchService, "take", "", "watch service is closed")
	}
	return s.keyQueue.Pop(), nil
}

// Close invalidates every registered key, drains the blocking key queue,
// and wakes any callers parked in Take/PollTimeout with a
// ClosedWatchService failure. Idempotent.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for !s.keyQueue.IsEmpty() {
		s.keyQueue.Pop()
	}
	keys := s.keys
	s.mu.Unlock()

	for _, k := range keys {
		k.Cancel()
	}

	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}

// PostTo posts kind to every valid, registered key watching watchable (and
// subscribed to that kind), then signals each. This is how a mutation on a
// Directory or File reaches whatever keys were registered against it,
// without the mutator needing to hold onto the keys itself.
func (s *Service) PostTo(watchable any, kind EventKind) {
	s.mu.Lock()
	var matched []*Key
	for _, k := range s.keys {
		if k.watchable == watchable {
			matched = append(matched, k)
		}
	}
	s.mu.Unlock()

	for _, k := range matched {
		if !k.Valid() || !k.subscribed(kind) {
			continue
		}
		k.Post(kind)
		k.Signal()
	}
}

// QueuedKeyCount reports how many keys are currently waiting in the
// blocking key queue. Test/metrics hook.
func (s *Service) QueuedKeyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyQueue.Len()
}

// QueuedKeys returns a point-in-time, order-preserving snapshot of the
// blocking key queue's contents. Test hook.
func (s *Service) QueuedKeys() []*Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.keyQueue.Len()
	out := make([]*Key, 0, n)
	for i := 0; i < n; i++ {
		k := s.keyQueue.Pop()
		out = append(out, k)
		s.keyQueue.Push(k)
	}
	return out
}
