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

package vnode

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/name"
)

const (
	minTableSize    = 8
	maxLoadFactor   = 0.75
	tableGrowFactor = 2
)

type slotState int

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type slot struct {
	state slotState
	name  name.Name
	child *File
}

// Directory is the open-addressed hash table backing a directory's entries.
// Lookups and mutations hash on name.Canonical(); "." and ".." are
// synthesized on read from self and parent rather than stored as slots.
type Directory struct {
	mu sync.Mutex

	self   *File
	parent *File

	slots      []slot
	count      int // occupied, excluding tombstones
	tombstones int
}

// NewDirectory constructs an empty directory owned by self, initially
// parented to itself (a freshly created directory is its own parent until
// linked elsewhere).
func NewDirectory(self *File) *Directory {
	d := &Directory{
		self:   self,
		parent: self,
		slots:  make([]slot, minTableSize),
	}
	return d
}

func hashName(n name.Name) uint64 {
	return xxhash.Sum64String(n.Canonical())
}

// Lock/Unlock expose the directory's content lock directly. Link, Unlink,
// Get and the other methods take it themselves, so a caller holding it must
// not call them; rename serializes on the owning File header locks instead.
func (d *Directory) Lock()   { d.mu.Lock() }
func (d *Directory) Unlock() { d.mu.Unlock() }

// SetParent updates the directory's ".." target. Called when the directory
// is relinked under a new parent (e.g. during Rename).
func (d *Directory) SetParent(parent *File) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parent = parent
}

// Parent returns the current ".." target.
func (d *Directory) Parent() *File {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.parent
}

// IsRoot reports whether this directory is its own parent.
func (d *Directory) IsRoot() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.parent == d.self
}

// IsEmpty reports whether the directory has no entries besides "." and
// "..".
func (d *Directory) IsEmpty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count == 0
}

// Get looks up a single entry by name, synthesizing "." and "..".
func (d *Directory) Get(n name.Name) (*File, bool) {
	if n.IsSelf() {
		return d.self, true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if n.IsParent() {
		return d.parent, true
	}
	idx, found := d.find(n)
	if !found {
		return nil, false
	}
	return d.slots[idx].child, true
}

// find returns the slot index holding n, if present, via linear probing
// from its hash bucket. Tombstones are skipped over but not returned.
func (d *Directory) find(n name.Name) (int, bool) {
	mask := uint64(len(d.slots) - 1)
	start := hashName(n) & mask
	for i := uint64(0); i < uint64(len(d.slots)); i++ {
		idx := (start + i) & mask
		s := &d.slots[idx]
		switch s.state {
		case slotEmpty:
			return 0, false
		case slotOccupied:
			if s.name.Equal(n) {
				return int(idx), true
			}
		case slotTombstone:
			// keep probing
		}
	}
	return 0, false
}

// insertionSlot finds the slot n should occupy for insertion: an existing
// occupied slot with the same name (for overwrite detection), else the
// first tombstone or empty slot seen along the probe sequence.
func (d *Directory) insertionSlot(n name.Name) (idx int, exists bool) {
	mask := uint64(len(d.slots) - 1)
	start := hashName(n) & mask
	firstTombstone := -1
	for i := uint64(0); i < uint64(len(d.slots)); i++ {
		j := int((start + i) & mask)
		s := &d.slots[j]
		switch s.state {
		case slotEmpty:
			if firstTombstone != -1 {
				return firstTombstone, false
			}
			return j, false
		case slotTombstone:
			if firstTombstone == -1 {
				firstTombstone = j
			}
		case slotOccupied:
			if s.name.Equal(n) {
				return j, true
			}
		}
	}
	ferrors.PanicInternal("directory table full without finding a slot")
	return 0, false
}

// Link adds a new entry name -> child. Returns ferrors.FileAlreadyExists if an
// entry of that name is already present. Increments child's link count.
func (d *Directory) Link(n name.Name, child *File) error {
	if n.IsSelf() || n.IsParent() {
		return ferrors.New(ferrors.InvalidName, "link", n.Display(), "cannot link reserved name")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, exists := d.insertionSlot(n)
	if exists {
		return ferrors.New(ferrors.FileAlreadyExists, "link", n.Display(), "entry already exists")
	}
	if d.slots[idx].state == slotTombstone {
		d.tombstones--
	}
	d.slots[idx] = slot{state: slotOccupied, name: n, child: child}
	d.count++
	child.IncLinks()
	d.maybeGrow()
	return nil
}

// Unlink removes the entry named n, returning the removed child. Decrements
// the child's link count.
func (d *Directory) Unlink(n name.Name) (*File, error) {
	if n.IsSelf() || n.IsParent() {
		return nil, ferrors.New(ferrors.InvalidName, "unlink", n.Display(), "cannot unlink reserved name")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, found := d.find(n)
	if !found {
		return nil, ferrors.New(ferrors.NoSuchFile, "unlink", n.Display(), "no such entry")
	}
	child := d.slots[idx].child
	d.slots[idx] = slot{state: slotTombstone}
	d.count--
	d.tombstones++
	child.DecLinks()
	return child, nil
}

// Entries returns a snapshot of (name, file) pairs, excluding "." and "..".
func (d *Directory) Entries() []DirEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DirEntry, 0, d.count)
	for _, s := range d.slots {
		if s.state == slotOccupied {
			out = append(out, DirEntry{Name: s.name, File: s.child})
		}
	}
	return out
}

// DirEntry is a single (name, file) pair returned by Entries.
type DirEntry struct {
	Name name.Name
	File *File
}

// maybeGrow rehashes into a larger table once the occupied+tombstone load
// factor crosses maxLoadFactor, so long probe chains from accumulated
// tombstones get cleared even without churn in live entry count.
func (d *Directory) maybeGrow() {
	load := float64(d.count+d.tombstones) / float64(len(d.slots))
	if load < maxLoadFactor {
		return
	}
	newSize := nextPowerOf2(len(d.slots) * tableGrowFactor)
	old := d.slots
	d.slots = make([]slot, newSize)
	d.tombstones = 0
	for _, s := range old {
		if s.state != slotOccupied {
			continue
		}
		idx, _ := d.insertionSlot(s.name)
		d.slots[idx] = s
	}
}

// nextPowerOf2 returns the smallest power of two >= n, with a floor of
// minTableSize. n is always a positive, already-power-of-two table size
// multiplied by tableGrowFactor in this package's only caller, so the
// degenerate n<=0 case never arises here; the explicit floor exists so the
// function is total for any caller, present or future.
func nextPowerOf2(n int) int {
	if n <= minTableSize {
		return minTableSize
	}
	p := minTableSize
	for p < n {
		p *= 2
	}
	return p
}
