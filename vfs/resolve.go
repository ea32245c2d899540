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
	"github.com/memvfs-go/memvfs/name"
	"github.com/memvfs-go/memvfs/vnode"
	"github.com/memvfs-go/memvfs/vpath"
)

// maxSymlinkHops bounds how many symbolic links a single resolution may
// follow before it is treated as a cycle, mirroring the conventional POSIX
// ELOOP threshold.
const maxSymlinkHops = 40

// parsePath turns pathStr into an absolute vpath.Path, joining it onto the
// configured working directory first if it is relative.
func (fs *FileSystem) parsePath(pathStr string) (vpath.Path, error) {
	p := fs.paths.ParsePath(pathStr)
	if p.IsAbsolute() {
		return p.Normalize(), nil
	}
	if fs.cfg.WorkingDirectory == "" {
		return vpath.Path{}, ferrors.New(ferrors.InvalidPath, "resolve", pathStr, "relative path with no working directory configured")
	}
	base := fs.paths.ParsePath(fs.cfg.WorkingDirectory)
	if !base.IsAbsolute() {
		return vpath.Path{}, ferrors.New(ferrors.InvalidPath, "resolve", pathStr, "working directory is not absolute")
	}
	return base.Join(p).Normalize(), nil
}

func (fs *FileSystem) rootFor(p vpath.Path) (*vnode.File, error) {
	r, ok := p.Root()
	if !ok {
		return nil, ferrors.New(ferrors.InvalidPath, "resolve", p.String(), "path carries no root")
	}
	root, ok := fs.roots[r.Canonical()]
	if !ok {
		return nil, ferrors.New(ferrors.NoSuchFile, "resolve", p.String(), "unknown root")
	}
	return root, nil
}

// walker threads a symlink-hop budget through a single top-level resolve
// call, so a chain of step/followSymlink calls shares one loop detector.
type walker struct {
	fs   *FileSystem
	hops int
}

// resolveDir resolves every component of p as directories, following
// symbolic links as it goes, and returns the final directory inode.
func (w *walker) resolveDir(p vpath.Path) (*vnode.File, error) {
	cur, err := w.fs.rootFor(p)
	if err != nil {
		return nil, err
	}
	for _, n := range p.Names() {
		if n.IsEmpty() {
			continue
		}
		cur, err = w.step(cur, n, true)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// step looks up n under dir, following n if it names a symlink and follow
// is true. dir must be a directory inode.
func (w *walker) step(dir *vnode.File, n name.Name, follow bool) (*vnode.File, error) {
	if dir.Kind() != vnode.KindDirectory {
		return nil, ferrors.New(ferrors.NotDirectory, "resolve", n.Display(), "not a directory")
	}
	child, ok := dir.Directory().Get(n)
	if !ok {
		return nil, ferrors.New(ferrors.NoSuchFile, "resolve", n.Display(), "no such entry")
	}
	if follow && child.Kind() == vnode.KindSymbolicLink {
		return w.followSymlink(dir, child)
	}
	return child, nil
}

func (w *walker) followSymlink(dir *vnode.File, link *vnode.File) (*vnode.File, error) {
	w.hops++
	if w.hops > maxSymlinkHops {
		return nil, ferrors.New(ferrors.Loop, "resolve", "", "too many levels of symbolic links")
	}
	target := link.SymbolicLink().Target()
	p := w.fs.paths.ParsePath(target)
	var cur *vnode.File
	var err error
	if p.IsAbsolute() {
		cur, err = w.fs.rootFor(p)
	} else {
		cur = dir
	}
	if err != nil {
		return nil, err
	}
	for _, n := range p.Names() {
		if n.IsEmpty() {
			continue
		}
		cur, err = w.step(cur, n, true)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// resolved is the outcome of resolving a full path: the directory
// containing the final component, the final component's Name, and the
// final File itself (nil if the name does not exist in parent, which is
// not itself an error — callers like Create use this to detect "missing
// leaf, existing parent").
type resolved struct {
	parent *vnode.File
	name   name.Name
	file   *vnode.File
}

// resolve walks pathStr to its parent directory and final component,
// following symlinks for every component including the final one iff
// follow is true (Lstat/Symlink/Remove pass false; most other ops pass
// true).
func (fs *FileSystem) resolve(pathStr string, follow bool) (*resolved, error) {
	p, err := fs.parsePath(pathStr)
	if err != nil {
		return nil, err
	}
	leaf := p.FileName()
	parentPath, hasParent := p.Parent()
	var parent *vnode.File
	w := &walker{fs: fs}
	if hasParent {
		parent, err = w.resolveDir(parentPath)
	} else {
		parent, err = fs.rootFor(p)
	}
	if err != nil {
		return nil, err
	}
	if leaf.IsEmpty() {
		// The path named only a root: the "file" itself is the root
		// directory, with no distinct parent/name pair.
		return &resolved{parent: parent, name: leaf, file: parent}, nil
	}
	if parent.Kind() != vnode.KindDirectory {
		return nil, ferrors.New(ferrors.NotDirectory, "resolve", pathStr, "parent is not a directory")
	}
	child, ok := parent.Directory().Get(leaf)
	if !ok {
		return &resolved{parent: parent, name: leaf, file: nil}, nil
	}
	if follow && child.Kind() == vnode.KindSymbolicLink {
		resolvedChild, err := w.followSymlink(parent, child)
		if err != nil {
			return nil, err
		}
		return &resolved{parent: parent, name: leaf, file: resolvedChild}, nil
	}
	return &resolved{parent: parent, name: leaf, file: child}, nil
}
