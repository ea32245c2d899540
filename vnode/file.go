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

// Package vnode is the inode layer: File is the tagged-union record shared
// by directories, regular files and symbolic links, carrying identity,
// link count, timestamps and the attribute map; Directory, RegularFile (via
// the block package) and SymbolicLink supply the kind-specific content.
package vnode

import (
	"sync"
	"sync/atomic"

	"github.com/memvfs-go/memvfs/block"
	"github.com/memvfs-go/memvfs/clock"
	"github.com/memvfs-go/memvfs/ferrors"
)

// Kind discriminates a File's content.
type Kind int

const (
	KindDirectory Kind = iota
	KindRegularFile
	KindSymbolicLink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegularFile:
		return "regular-file"
	case KindSymbolicLink:
		return "symbolic-link"
	default:
		return "unknown"
	}
}

// IDGenerator hands out monotonically increasing File IDs.
type IDGenerator struct {
	next atomic.Uint64
}

// Next returns the next unused ID, starting from 1 (0 is never issued, so
// it can serve as a caller-side "no id" sentinel).
func (g *IDGenerator) Next() uint64 {
	return g.next.Add(1)
}

// File is the inode: the shared header (id, kind, links, timestamps,
// attributes) plus a discriminated content field. Its intrinsic lock
// guards links, timestamps and attributes; Directory and RegularFile each
// carry their own internal locking for their content.
type File struct {
	mu sync.Mutex

	id    uint64
	kind  Kind
	links uint32

	creationTime     clock.FileTime
	lastModifiedTime clock.FileTime
	lastAccessTime   clock.FileTime

	attributes map[string]any

	dir     *Directory
	regular *block.RegularFile
	symlink *SymbolicLink
}

// Lock/Unlock implement sync.Locker over the same mutex the header
// accessors take internally, so a caller holding it must not call them on
// this File; rename uses it only to order concurrent directory moves.
func (f *File) Lock()   { f.mu.Lock() }
func (f *File) Unlock() { f.mu.Unlock() }

// ID returns this file's stable identity within its filesystem. Does not
// require the lock.
func (f *File) ID() uint64 { return f.id }

// Kind returns the file's content discriminator. Does not require the
// lock.
func (f *File) Kind() Kind { return f.kind }

// Links returns the current hard-link count.
func (f *File) Links() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.links
}

// IncLinks increments the hard-link count, called when a Directory links
// this file under a new name.
func (f *File) IncLinks() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links++
}

// DecLinks decrements the hard-link count, called when a Directory unlinks
// this file. Returns the resulting count.
func (f *File) DecLinks() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.links == 0 {
		ferrors.PanicInternal("DecLinks called with links already zero on file %d", f.id)
	}
	f.links--
	return f.links
}

func (f *File) CreationTime() clock.FileTime {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creationTime
}

func (f *File) LastModifiedTime() clock.FileTime {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastModifiedTime
}

func (f *File) SetLastModifiedTime(t clock.FileTime) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastModifiedTime = t
}

func (f *File) LastAccessTime() clock.FileTime {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAccessTime
}

func (f *File) SetLastAccessTime(t clock.FileTime) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAccessTime = t
}

func (f *File) SetCreationTime(t clock.FileTime) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creationTime = t
}

// Attribute returns the raw value stored under "view:attr" key, if any.
func (f *File) Attribute(key string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.attributes[key]
	return v, ok
}

// SetAttribute stores a raw value under "view:attr" key.
func (f *File) SetAttribute(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attributes == nil {
		f.attributes = make(map[string]any)
	}
	f.attributes[key] = value
}

// AttributeKeys returns a snapshot of all populated "view:attr" keys.
func (f *File) AttributeKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.attributes))
	for k := range f.attributes {
		keys = append(keys, k)
	}
	return keys
}

// Directory returns the file's Directory content, or nil if Kind() !=
// KindDirectory.
func (f *File) Directory() *Directory { return f.dir }

// Regular returns the file's RegularFile content, or nil if Kind() !=
// KindRegularFile.
func (f *File) Regular() *block.RegularFile { return f.regular }

// SymbolicLink returns the file's SymbolicLink content, or nil if Kind() !=
// KindSymbolicLink.
func (f *File) SymbolicLink() *SymbolicLink { return f.symlink }

func newFileHeader(id uint64, kind Kind, now clock.FileTime) File {
	return File{
		id:               id,
		kind:             kind,
		creationTime:     now,
		lastModifiedTime: now,
		lastAccessTime:   now,
		attributes:       make(map[string]any),
	}
}

// NewRegularFile constructs a new, empty regular-file inode with links=0.
func NewRegularFile(id uint64, now clock.FileTime, disk *block.Disk) *File {
	f := newFileHeader(id, KindRegularFile, now)
	f.regular = block.NewRegularFile(disk)
	return &f
}

// NewSymbolicLink constructs a new symlink inode pointing at target.
func NewSymbolicLink(id uint64, now clock.FileTime, target string) *File {
	f := newFileHeader(id, KindSymbolicLink, now)
	f.symlink = &SymbolicLink{target: target}
	return &f
}

// NewDirectoryFile constructs a new directory inode, initially parented to
// itself.
func NewDirectoryFile(id uint64, now clock.FileTime) *File {
	f := newFileHeader(id, KindDirectory, now)
	f.dir = NewDirectory(&f)
	return &f
}
