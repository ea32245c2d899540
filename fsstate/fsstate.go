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

// Package fsstate tracks a filesystem's live open-handle count and
// close-once teardown, so the last stream close after a filesystem close
// can trigger final disposal exactly once.
package fsstate

import "sync"

// State is the open-handle lifecycle tracker for one filesystem instance.
type State struct {
	mu       sync.Mutex
	open     int
	closing  bool
	disposed bool
	disposer func()
}

// New constructs a State. disposer, if non-nil, runs exactly once, the
// moment both Close has been called and the last open handle closes.
func New(disposer func()) *State {
	return &State{disposer: disposer}
}

// Opened records a new live handle; call when an InputStream,
// OutputStream, or other open resource is created.
func (s *State) Opened() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open++
}

// Closed records a handle's close-once transition. Pass didClose=false if
// this call is a redundant close on an already-closed handle (idempotent
// stream Close); it will not double-decrement.
func (s *State) Closed(didClose bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !didClose {
		return
	}
	s.open--
	s.maybeDisposeLocked()
}

// Close marks the filesystem itself as closing. Once open handles reach
// zero (possibly immediately), the disposer runs.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return
	}
	s.closing = true
	s.maybeDisposeLocked()
}

func (s *State) maybeDisposeLocked() {
	if s.disposed || !s.closing || s.open > 0 {
		return
	}
	s.disposed = true
	if s.disposer != nil {
		s.disposer()
	}
}

// OpenCount reports the current live-handle count. Test hook.
func (s *State) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Closing reports whether Close has been called.
func (s *State) Closing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closing
}
