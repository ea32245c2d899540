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

// Package iostream adapts block.RegularFile content to byte-stream
// reader/writer semantics: InputStream tracks a read cursor, OutputStream
// an optionally-append write cursor, both registered against a
// fsstate.State so the filesystem can track live handles.
package iostream

import (
	"sync"

	"github.com/memvfs-go/memvfs/block"
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/fsstate"
)

// InputStream reads sequentially from a RegularFile starting at pos 0.
// mark/reset are unsupported, matching the spec's streams (this is a
// single-pass cursor, not a seekable reader).
type InputStream struct {
	mu     sync.Mutex
	file   *block.RegularFile
	pos    uint64
	state  *fsstate.State
	closed bool
}

// NewInputStream opens an input stream over file, registering an open
// handle with state.
func NewInputStream(file *block.RegularFile, state *fsstate.State) *InputStream {
	state.Opened()
	return &InputStream{file: file, state: state}
}

func (s *InputStream) checkOpen(op string) error {
	if s.closed {
		return ferrors.New(ferrors.Io, op, "", "stream closed")
	}
	return nil
}

// Read reads up to len(buf) bytes, returning the number read and true, or
// (0, false) at end of stream.
func (s *InputStream) Read(buf []byte) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen("read"); err != nil {
		return 0, false, err
	}
	n, err := s.file.ReadAt(buf, s.pos)
	if err != nil {
		return 0, false, ferrors.Wrap(ferrors.Io, "read", "", err)
	}
	if n < 0 {
		return 0, false, nil
	}
	s.pos += uint64(n)
	return n, true, nil
}

// ReadByte reads a single byte, returning (byte, true) or (0, false) at
// end of stream.
func (s *InputStream) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, ok, err := s.Read(buf[:])
	if err != nil || !ok || n == 0 {
		return 0, false, err
	}
	return buf[0], true, nil
}

// Available returns the number of bytes remaining before end of stream.
func (s *InputStream) Available() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen("available"); err != nil {
		return 0, err
	}
	size, _ := s.file.Stat()
	if s.pos >= size {
		return 0, nil
	}
	remaining := size - s.pos
	if remaining > uint64(^uint(0)>>1) {
		return int(^uint(0) >> 1), nil
	}
	return int(remaining), nil
}

// Skip advances pos by n bytes, clamped to [0, size-pos]; negative n
// returns 0 without moving pos.
func (s *InputStream) Skip(n int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen("skip"); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, nil
	}
	size, _ := s.file.Stat()
	if s.pos >= size {
		return 0, nil
	}
	remaining := size - s.pos
	advance := uint64(n)
	if advance > remaining {
		advance = remaining
	}
	s.pos += advance
	return int64(advance), nil
}

// Close releases the stream's open handle. Idempotent: only the first
// call decrements the FileSystemState counter.
func (s *InputStream) Close() {
	s.mu.Lock()
	first := !s.closed
	s.closed = true
	s.mu.Unlock()
	s.state.Closed(first)
}
