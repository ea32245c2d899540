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
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/options"
	"github.com/memvfs-go/memvfs/vnode"
	"github.com/memvfs-go/memvfs/watch"
)

// Rename moves the entry at oldPath to newPath, across directories if
// needed. When both paths share a parent, the move is a single unlink+link
// under that one directory's lock. Across two different parent
// directories, the two parent Files' header locks are taken in ascending
// File.id order before touching either Directory, so concurrent renames
// going in opposite directions between the same two directories can never
// deadlock.
func (fs *FileSystem) Rename(oldPath, newPath string, opts ...options.CopyOption) error {
	if err := fs.checkOpen("rename"); err != nil {
		return err
	}
	fs.recordOp("rename")

	src, err := fs.resolve(oldPath, false)
	if err != nil {
		return err
	}
	if src.file == nil {
		return ferrors.New(ferrors.NoSuchFile, "rename", oldPath, "no such file")
	}

	dst, err := fs.resolve(newPath, false)
	if err != nil {
		return err
	}
	replaceExisting := hasCopyOption(opts, options.ReplaceExisting)
	if dst.file != nil {
		if !replaceExisting {
			return ferrors.New(ferrors.FileAlreadyExists, "rename", newPath, "already exists")
		}
		if dst.file.Kind() == vnode.KindDirectory && !dst.file.Directory().IsEmpty() {
			return ferrors.New(ferrors.DirectoryNotEmpty, "rename", newPath, "directory not empty")
		}
	}

	if src.parent == dst.parent {
		return fs.renameWithinDir(src, dst)
	}
	return fs.renameAcrossDirs(src, dst)
}

func hasCopyOption(opts []options.CopyOption, want options.CopyOption) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

func (fs *FileSystem) renameWithinDir(src, dst *resolved) error {
	src.parent.Lock()
	defer src.parent.Unlock()
	return fs.doRename(src, dst)
}

// renameAcrossDirs locks the two parent Files' headers in ascending
// File.id order. This is the File header lock (guarding links/timestamps/
// attributes), not the Directory's own content lock that Link/Unlink
// already take internally — using it purely as an ordered mutex pair
// avoids re-entering the non-reentrant Directory mutex while still
// serializing concurrent cross-directory renames consistently.
func (fs *FileSystem) renameAcrossDirs(src, dst *resolved) error {
	first, second := src.parent, dst.parent
	if second.ID() < first.ID() {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()
	return fs.doRename(src, dst)
}

func (fs *FileSystem) doRename(src, dst *resolved) error {
	if dst.file != nil {
		if _, err := dst.parent.Directory().Unlink(dst.name); err != nil {
			return err
		}
	}
	child, err := src.parent.Directory().Unlink(src.name)
	if err != nil {
		return err
	}
	if err := dst.parent.Directory().Link(dst.name, child); err != nil {
		// Best effort: put it back where it came from rather than losing
		// the entry entirely.
		_ = src.parent.Directory().Link(src.name, child)
		return err
	}
	if child.Kind() == vnode.KindDirectory {
		child.Directory().SetParent(dst.parent)
	}
	fs.postEvent(src.parent, watch.Delete)
	fs.postEvent(dst.parent, watch.Create)
	return nil
}
