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

package vfs

import (
	"github.com/memvfs-go/memvfs/iostream"
	"github.com/memvfs-go/memvfs/vnode"
)

// InputHandle is an InputStream bound to the inode it was opened against,
// so closing it can also tell the underlying RegularFile that a handle
// went away (which, combined with a zero link count, frees its blocks).
type InputHandle struct {
	*iostream.InputStream
	file *vnode.File
}

// Close closes the stream, then reports the close to the inode's
// RegularFile content so it can free its blocks once both links and open
// handles reach zero.
func (h *InputHandle) Close() {
	h.InputStream.Close()
	h.file.Regular().Closed(h.file.Links())
}

// OutputHandle is the write-side counterpart of InputHandle.
type OutputHandle struct {
	*iostream.OutputStream
	file *vnode.File
}

func (h *OutputHandle) Close() {
	h.OutputStream.Close()
	h.file.Regular().Closed(h.file.Links())
}
