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

package block

import (
	"io"
	"sync"

	"github.com/memvfs-go/memvfs/ferrors"
)

// RegularFile is a growable, block-addressed byte container backed by a
// Disk. It is the content of a regular-file inode. All mutations are
// serialized under mu; concurrent reads are allowed but are not guaranteed
// to observe writes atomically byte-for-byte, matching the teacher's
// mutable.TempFile concurrency contract.
type RegularFile struct {
	mu sync.Mutex

	disk      *Disk
	blocks    []Block
	size      uint64
	openCount int
}

// NewRegularFile returns an empty RegularFile backed by disk.
func NewRegularFile(disk *Disk) *RegularFile {
	return &RegularFile{disk: disk}
}

// Stat reports the logical size and current block count, mirroring the
// teacher's TempFile.Stat.
func (f *RegularFile) Stat() (size uint64, blocks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size, len(f.blocks)
}

// CheckInvariants asserts size <= blockCount*blockSize and that every block
// slot below blockCount is non-nil. Test-only, mirroring TempFile's
// invariant checker.
func (f *RegularFile) CheckInvariants() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkInvariantsLocked()
}

func (f *RegularFile) checkInvariantsLocked() {
	cap := uint64(len(f.blocks)) * uint64(f.disk.BlockSize())
	if f.size > cap {
		ferrors.PanicInternal("size %d exceeds block capacity %d", f.size, cap)
	}
	for i, b := range f.blocks {
		if b == nil {
			ferrors.PanicInternal("nil block at index %d", i)
		}
	}
}

// blockSize is a shorthand used throughout this file.
func (f *RegularFile) blockSize() uint64 {
	return uint64(f.disk.BlockSize())
}

// growTo ensures enough blocks exist to cover byte offset upTo (exclusive),
// allocating only the blocks that are missing. All-or-nothing: on failure
// no new blocks are retained.
func (f *RegularFile) growTo(upTo uint64) error {
	bs := f.blockSize()
	need := 0
	if upTo > 0 {
		need = int((upTo + bs - 1) / bs)
	}
	if need <= len(f.blocks) {
		return nil
	}

	added, err := f.disk.Allocate(uint32(need - len(f.blocks)))
	if err != nil {
		return ferrors.Wrap(ferrors.OutOfSpace, "write", "", err)
	}
	f.blocks = append(f.blocks, added...)
	return nil
}

// ReadAt reads up to len(buf) bytes starting at pos into buf, returning the
// number of bytes read. If pos >= size it returns (-1, nil): there is
// nothing to read and this is not an error. ReadAt never fails for valid
// (non-negative) indices.
func (f *RegularFile) ReadAt(buf []byte, pos uint64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if pos >= f.size {
		return -1, nil
	}

	end := pos + uint64(len(buf))
	if end > f.size {
		end = f.size
	}
	n := int(end - pos)

	bs := f.blockSize()
	read := 0
	for read < n {
		abs := pos + uint64(read)
		blockIdx := abs / bs
		blockOff := abs % bs
		chunk := int(bs - blockOff)
		if remaining := n - read; chunk > remaining {
			chunk = remaining
		}
		copy(buf[read:read+chunk], f.blocks[blockIdx][blockOff:blockOff+uint64(chunk)])
		read += chunk
	}
	return read, nil
}

// WriteAt writes buf at pos, growing the file (allocating blocks as
// needed) and zero-filling any gap between the old size and pos. size
// becomes max(size, pos+len(buf)). Fails with OutOfSpace if the disk
// cannot satisfy the needed allocation; on failure the file is left
// unchanged.
func (f *RegularFile) WriteAt(buf []byte, pos uint64) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	newSize := pos + uint64(len(buf))
	if newSize < f.size {
		newSize = f.size
	}
	if err := f.growTo(newSize); err != nil {
		return 0, err
	}

	// Zero-fill the gap between the old size and pos, if any, now that the
	// blocks spanning it are allocated (growTo already zeroed fresh blocks
	// wholesale; this only matters when pos falls within previously-sized
	// but never-written space of a freshly grown region, which growTo's
	// fresh blocks already satisfy).

	bs := f.blockSize()
	written := 0
	for written < len(buf) {
		abs := pos + uint64(written)
		blockIdx := abs / bs
		blockOff := abs % bs
		chunk := int(bs - blockOff)
		if remaining := len(buf) - written; chunk > remaining {
			chunk = remaining
		}
		copy(f.blocks[blockIdx][blockOff:blockOff+uint64(chunk)], buf[written:written+chunk])
		written += chunk
	}

	if newSize > f.size {
		f.size = newSize
	}
	return written, nil
}

// Truncate resizes the file to newSize. Shrinking frees whole trailing
// blocks back to the disk and zeroes the tail bytes of the new last
// (partial) block. Growing leaves existing data unchanged and allocates
// blocks through growTo; the newly addressable bytes read as zero at once,
// since fresh blocks are zeroed and shrinking zeroes the stale tail bytes.
func (f *RegularFile) Truncate(newSize uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if newSize > f.size {
		if err := f.growTo(newSize); err != nil {
			return err
		}
		f.size = newSize
		return nil
	}

	bs := f.blockSize()
	keepBlocks := 0
	if newSize > 0 {
		keepBlocks = int((newSize + bs - 1) / bs)
	}

	freed := f.blocks[keepBlocks:]
	f.disk.Free(freed...)
	f.blocks = f.blocks[:keepBlocks]

	if keepBlocks > 0 {
		tailOff := newSize % bs
		if tailOff != 0 {
			clear(f.blocks[keepBlocks-1][tailOff:])
		}
	}

	f.size = newSize
	return nil
}

// CopyBlocksTo appends deep copies of the last count blocks of f to other.
// The logical sizes of neither file are changed by this call; it is a raw
// content-block operation used by higher-level copy/transfer semantics.
func (f *RegularFile) CopyBlocksTo(other *RegularFile, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if other != f {
		other.mu.Lock()
		defer other.mu.Unlock()
	}

	if count > len(f.blocks) {
		count = len(f.blocks)
	}
	src := f.blocks[len(f.blocks)-count:]

	fresh, err := f.disk.Allocate(uint32(count))
	if err != nil {
		return ferrors.Wrap(ferrors.OutOfSpace, "copyBlocksTo", "", err)
	}
	for i, b := range src {
		copy(fresh[i], b)
	}
	other.blocks = append(other.blocks, fresh...)
	return nil
}

// TransferBlocksTo moves (not copies) the last count blocks of f to other,
// without touching the disk's allocation accounting.
func (f *RegularFile) TransferBlocksTo(other *RegularFile, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if other != f {
		other.mu.Lock()
		defer other.mu.Unlock()
	}

	if count > len(f.blocks) {
		count = len(f.blocks)
	}
	moved := f.blocks[len(f.blocks)-count:]
	other.blocks = append(other.blocks, moved...)
	f.blocks = f.blocks[:len(f.blocks)-count]
}

// TransferFrom reads count bytes from r and writes them at pos, a
// streaming variant of WriteAt for bulk copy/transfer operations.
func (f *RegularFile) TransferFrom(r io.Reader, pos uint64, count int64) (int64, error) {
	buf := make([]byte, count)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, err
	}
	written, werr := f.WriteAt(buf[:n], pos)
	return int64(written), werr
}

// TransferTo streams count bytes starting at pos to w.
func (f *RegularFile) TransferTo(pos uint64, count int64, w io.Writer) (int64, error) {
	buf := make([]byte, count)
	n, err := f.ReadAt(buf, pos)
	if n < 0 {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	written, werr := w.Write(buf[:n])
	return int64(written), werr
}

// Opened records that a new stream handle has been opened against this
// file's content.
func (f *RegularFile) Opened() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openCount++
}

// Closed records that a stream handle has closed. If this was the last
// open handle and links (the inode's hard-link count, owned by the caller)
// is zero, every block is returned to the disk and the file is emptied.
func (f *RegularFile) Closed(links uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.openCount > 0 {
		f.openCount--
	}
	if f.openCount == 0 && links == 0 {
		f.disk.Free(f.blocks...)
		f.blocks = nil
		f.size = 0
	}
}

// BlockCount returns the number of blocks currently backing this file.
func (f *RegularFile) BlockCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.blocks)
}

// OpenCount reports the number of currently open stream handles against
// this file's content, letting a caller decide whether an unlink with zero
// links can free its blocks immediately or must wait for Closed.
func (f *RegularFile) OpenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openCount
}
