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

// Package block is the process-wide block pool ("disk") that backs every
// RegularFile's content: a fixed block size, a free-block cache, and an
// accounting limit, modeled on the teacher's lease.FileLeaser byte-budget
// leasing but addressed in fixed-size blocks rather than arbitrary byte
// ranges.
package block

import (
	"context"
	"sync"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/metrics"
)

// Block is a fixed-size byte slot owned by a Disk.
type Block []byte

// DiskStats is a read-only snapshot of a Disk's accounting, used by tests
// and by the metrics package's gauges.
type DiskStats struct {
	BlockSize       uint32
	MaxBlockCount   uint32
	AllocatedBlocks uint32
	CachedBlocks    uint32
}

// Disk is the in-memory block pool. All operations are atomic under a
// single mutex, matching the teacher's FileLeaser's monitor-style locking.
type Disk struct {
	mu sync.Mutex

	blockSize           uint32
	maxBlockCount       uint32
	maxCachedBlockCount uint32

	allocatedBlocks uint32
	freeCache       []Block

	metrics metrics.Handle
}

// New constructs a Disk. maxCachedBlockCount may be zero, which disables
// the free cache entirely (every freed block is discarded immediately).
func New(blockSize, maxBlockCount, maxCachedBlockCount uint32) *Disk {
	if blockSize == 0 {
		ferrors.PanicInternal("block size must be non-zero")
	}
	return &Disk{
		blockSize:           blockSize,
		maxBlockCount:       maxBlockCount,
		maxCachedBlockCount: maxCachedBlockCount,
	}
}

// SetMetrics wires h to this Disk's allocate/free counters and blocks-in-
// use gauge. Nil disables reporting (the zero value of Disk already
// behaves this way).
func (d *Disk) SetMetrics(h metrics.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.metrics = h
}

// BlockSize returns the fixed size of every block this Disk hands out.
func (d *Disk) BlockSize() uint32 {
	return d.blockSize
}

// Stats returns a snapshot of the Disk's current accounting.
func (d *Disk) Stats() DiskStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DiskStats{
		BlockSize:       d.blockSize,
		MaxBlockCount:   d.maxBlockCount,
		AllocatedBlocks: d.allocatedBlocks,
		CachedBlocks:    uint32(len(d.freeCache)),
	}
}

// Allocate returns count new, zero-filled blocks, drawing from the free
// cache first and creating fresh blocks up to maxBlockCount. It is
// all-or-nothing: if the full count cannot be satisfied, none of it is,
// and allocatedBlocks is left unchanged (per the "partial-failure leaves
// state unchanged" contract).
func (d *Disk) Allocate(count uint32) ([]Block, error) {
	if count == 0 {
		return nil, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.maxBlockCount > 0 && d.allocatedBlocks+count > d.maxBlockCount {
		return nil, ferrors.New(ferrors.OutOfSpace, "allocate", "", "block pool exhausted")
	}

	out := make([]Block, 0, count)
	for uint32(len(out)) < count {
		if n := len(d.freeCache); n > 0 {
			b := d.freeCache[n-1]
			d.freeCache = d.freeCache[:n-1]
			clear(b)
			out = append(out, b)
			continue
		}
		out = append(out, make(Block, d.blockSize))
	}

	d.allocatedBlocks += count
	if d.metrics != nil {
		ctx := context.Background()
		for range out {
			d.metrics.BlockAllocated(ctx)
		}
	}
	return out, nil
}

// Free returns blocks to the disk. Each freed block either re-enters the
// cache (while it has room) or is discarded.
func (d *Disk) Free(blocks ...Block) {
	if len(blocks) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, b := range blocks {
		if uint32(len(d.freeCache)) < d.maxCachedBlockCount {
			d.freeCache = append(d.freeCache, b)
		}
		d.allocatedBlocks--
	}
	if d.metrics != nil {
		ctx := context.Background()
		for range blocks {
			d.metrics.BlockFreed(ctx)
		}
	}
}
