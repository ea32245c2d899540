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

package iostream

import (
	"sync"

	"github.com/memvfs-go/memvfs/block"
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/fsstate"
)

// OutputStream writes sequentially to a RegularFile. In append mode,
// every write first repositions pos to the file's current size, so
// concurrent appenders never clobber each other's bytes within a single
// write call.
type OutputStream struct {
	mu     sync.Mutex
	file   *block.RegularFile
	pos    uint64
	append bool
	state  *fsstate.State
	closed bool
}

// NewOutputStream opens an output stream over file, registering an open
// handle with state. If append is true, the initial position is the
// file's current size.
func NewOutputStream(file *block.RegularFile, appendMode bool, state *fsstate.State) *OutputStream {
	state.Opened()
	s := &OutputStream{file: file, append: appendMode, state: state}
	if appendMode {
		size, _ := file.Stat()
		s.pos = size
	}
	return s
}

func (s *OutputStream) checkOpen(op string) error {
	if s.closed {
		return ferrors.New(ferrors.Io, op, "", "stream closed")
	}
	return nil
}

// Write writes buf at the stream's current position, zero-filling any
// gap if pos is past the current end of file, and advances pos.
func (s *OutputStream) Write(buf []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen("write"); err != nil {
		return 0, err
	}
	if s.append {
		size, _ := s.file.Stat()
		s.pos = size
	}
	n, err := s.file.WriteAt(buf, s.pos)
	if err != nil {
		return n, err
	}
	s.pos += uint64(n)
	return n, nil
}

// WriteByte writes a single byte.
func (s *OutputStream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})
	return err
}

// Close releases the stream's open handle. Idempotent: only the first
// call decrements the FileSystemState counter.
func (s *OutputStream) Close() {
	s.mu.Lock()
	first := !s.closed
	s.closed = true
	s.mu.Unlock()
	s.state.Closed(first)
}
