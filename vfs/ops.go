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
	"context"
	"sort"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/iostream"
	"github.com/memvfs-go/memvfs/options"
	"github.com/memvfs-go/memvfs/vnode"
	"github.com/memvfs-go/memvfs/watch"
)

// Entry is a single (name, kind) pair returned by ReadDir.
type Entry struct {
	Name string
	Kind vnode.Kind
}

func (fs *FileSystem) opCtx() context.Context { return context.Background() }

func (fs *FileSystem) recordOp(op string) {
	fs.metrics.OpsCount(fs.opCtx(), op)
}

// Mkdir creates a new, empty directory at path. The parent must already
// exist; path itself must not.
func (fs *FileSystem) Mkdir(path string) error {
	if err := fs.checkOpen("mkdir"); err != nil {
		return err
	}
	fs.recordOp("mkdir")

	r, err := fs.resolve(path, true)
	if err != nil {
		return err
	}
	if r.file != nil {
		return ferrors.New(ferrors.FileAlreadyExists, "mkdir", path, "already exists")
	}
	if r.parent.Kind() != vnode.KindDirectory {
		return ferrors.New(ferrors.NotDirectory, "mkdir", path, "parent is not a directory")
	}

	dir := vnode.NewDirectoryFile(fs.ids.Next(), fs.now())
	dir.Directory().SetParent(r.parent)
	fs.attrs.InitializeOnCreate(dir, fs.cfg.DefaultAttributeValues)
	if err := r.parent.Directory().Link(r.name, dir); err != nil {
		return err
	}
	fs.postEvent(r.parent, watch.Create)
	return nil
}

// Create creates a new, empty regular file at path and returns a write
// handle over it. The file must not already exist.
func (fs *FileSystem) Create(path string) (*OutputHandle, error) {
	if err := fs.checkOpen("create"); err != nil {
		return nil, err
	}
	fs.recordOp("create")

	r, err := fs.resolve(path, true)
	if err != nil {
		return nil, err
	}
	if r.file != nil {
		return nil, ferrors.New(ferrors.FileAlreadyExists, "create", path, "already exists")
	}
	if r.parent.Kind() != vnode.KindDirectory {
		return nil, ferrors.New(ferrors.NotDirectory, "create", path, "parent is not a directory")
	}

	f := vnode.NewRegularFile(fs.ids.Next(), fs.now(), fs.disk)
	fs.attrs.InitializeOnCreate(f, fs.cfg.DefaultAttributeValues)
	if err := r.parent.Directory().Link(r.name, f); err != nil {
		return nil, err
	}
	fs.postEvent(r.parent, watch.Create)

	f.Regular().Opened()
	return &OutputHandle{OutputStream: iostream.NewOutputStream(f.Regular(), false, fs.state), file: f}, nil
}

// OpenFile opens path per opts, returning whichever of an input and output
// stream the options call for (at least one is always non-nil on success).
// OpenOption.Create/CreateNew create a missing file; Truncate resets an
// existing one to empty; Append starts the write cursor at end-of-file.
func (fs *FileSystem) OpenFile(path string, opts ...options.OpenOption) (*InputHandle, *OutputHandle, error) {
	if err := fs.checkOpen("open"); err != nil {
		return nil, nil, err
	}
	fs.recordOp("open")

	normalized, err := options.ForChannel(opts)
	if err != nil {
		return nil, nil, err
	}

	r, err := fs.resolve(path, true)
	if err != nil {
		return nil, nil, err
	}

	wantCreate := hasOption(normalized, options.Create) || hasOption(normalized, options.CreateNew)
	if r.file == nil {
		if !wantCreate {
			return nil, nil, ferrors.New(ferrors.NoSuchFile, "open", path, "no such file")
		}
		if r.parent.Kind() != vnode.KindDirectory {
			return nil, nil, ferrors.New(ferrors.NotDirectory, "open", path, "parent is not a directory")
		}
		f := vnode.NewRegularFile(fs.ids.Next(), fs.now(), fs.disk)
		fs.attrs.InitializeOnCreate(f, fs.cfg.DefaultAttributeValues)
		if err := r.parent.Directory().Link(r.name, f); err != nil {
			return nil, nil, err
		}
		fs.postEvent(r.parent, watch.Create)
		r.file = f
	} else if hasOption(normalized, options.CreateNew) {
		return nil, nil, ferrors.New(ferrors.FileAlreadyExists, "open", path, "already exists")
	}

	if r.file.Kind() != vnode.KindRegularFile {
		return nil, nil, ferrors.New(ferrors.IsDirectory, "open", path, "not a regular file")
	}
	regular := r.file.Regular()

	if hasOption(normalized, options.Truncate) {
		if err := regular.Truncate(0); err != nil {
			return nil, nil, err
		}
	}

	var in *InputHandle
	var out *OutputHandle
	if hasOption(normalized, options.Read) {
		regular.Opened()
		in = &InputHandle{InputStream: iostream.NewInputStream(regular, fs.state), file: r.file}
	}
	if hasOption(normalized, options.Write) || hasOption(normalized, options.Append) {
		regular.Opened()
		out = &OutputHandle{OutputStream: iostream.NewOutputStream(regular, hasOption(normalized, options.Append), fs.state), file: r.file}
	}
	return in, out, nil
}

func hasOption(opts []options.OpenOption, want options.OpenOption) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

// ReadDir lists path's entries, excluding "." and "..".
func (fs *FileSystem) ReadDir(path string) ([]Entry, error) {
	if err := fs.checkOpen("readdir"); err != nil {
		return nil, err
	}
	fs.recordOp("readdir")

	r, err := fs.resolve(path, true)
	if err != nil {
		return nil, err
	}
	if r.file == nil {
		return nil, ferrors.New(ferrors.NoSuchFile, "readdir", path, "no such file")
	}
	if r.file.Kind() != vnode.KindDirectory {
		return nil, ferrors.New(ferrors.NotDirectory, "readdir", path, "not a directory")
	}

	raw := r.file.Directory().Entries()
	out := make([]Entry, len(raw))
	for i, e := range raw {
		out[i] = Entry{Name: e.Name.Display(), Kind: e.File.Kind()}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Remove deletes the entry at path: a regular file, symlink, or empty
// directory. A non-empty directory fails with DirectoryNotEmpty.
func (fs *FileSystem) Remove(path string) error {
	if err := fs.checkOpen("remove"); err != nil {
		return err
	}
	fs.recordOp("remove")

	r, err := fs.resolve(path, false)
	if err != nil {
		return err
	}
	if r.file == nil {
		return ferrors.New(ferrors.NoSuchFile, "remove", path, "no such file")
	}
	if r.file.Kind() == vnode.KindDirectory && !r.file.Directory().IsEmpty() {
		return ferrors.New(ferrors.DirectoryNotEmpty, "remove", path, "directory not empty")
	}
	if _, err := r.parent.Directory().Unlink(r.name); err != nil {
		return err
	}
	// A regular file with no remaining links and no open handles can free
	// its blocks immediately; one that is still open keeps its content
	// alive until its last InputHandle/OutputHandle closes.
	if r.file.Kind() == vnode.KindRegularFile && r.file.Links() == 0 && r.file.Regular().OpenCount() == 0 {
		r.file.Regular().Closed(0)
	}
	fs.postEvent(r.parent, watch.Delete)
	return nil
}

// Symlink creates a symbolic link at path pointing at target. target is
// stored verbatim and only interpreted (absolute vs. relative to path's
// parent) when the link is later followed.
func (fs *FileSystem) Symlink(path, target string) error {
	if err := fs.checkOpen("symlink"); err != nil {
		return err
	}
	fs.recordOp("symlink")

	r, err := fs.resolve(path, false)
	if err != nil {
		return err
	}
	if r.file != nil {
		return ferrors.New(ferrors.FileAlreadyExists, "symlink", path, "already exists")
	}
	link := vnode.NewSymbolicLink(fs.ids.Next(), fs.now(), target)
	fs.attrs.InitializeOnCreate(link, fs.cfg.DefaultAttributeValues)
	if err := r.parent.Directory().Link(r.name, link); err != nil {
		return err
	}
	fs.postEvent(r.parent, watch.Create)
	return nil
}

// Readlink returns the raw target string stored in the symlink at path.
func (fs *FileSystem) Readlink(path string) (string, error) {
	if err := fs.checkOpen("readlink"); err != nil {
		return "", err
	}
	fs.recordOp("readlink")

	r, err := fs.resolve(path, false)
	if err != nil {
		return "", err
	}
	if r.file == nil {
		return "", ferrors.New(ferrors.NoSuchFile, "readlink", path, "no such file")
	}
	if r.file.Kind() != vnode.KindSymbolicLink {
		return "", ferrors.New(ferrors.NotSymbolicLink, "readlink", path, "not a symbolic link")
	}
	return r.file.SymbolicLink().Target(), nil
}

// Stat returns an attribute snapshot for path, following a final symlink.
func (fs *FileSystem) Stat(path string) (map[string]any, error) {
	return fs.stat("stat", path, true)
}

// Lstat returns an attribute snapshot for path without following a final
// symlink.
func (fs *FileSystem) Lstat(path string) (map[string]any, error) {
	return fs.stat("lstat", path, false)
}

func (fs *FileSystem) stat(op, path string, follow bool) (map[string]any, error) {
	if err := fs.checkOpen(op); err != nil {
		return nil, err
	}
	fs.recordOp(op)

	r, err := fs.resolve(path, follow)
	if err != nil {
		return nil, err
	}
	if r.file == nil {
		return nil, ferrors.New(ferrors.NoSuchFile, op, path, "no such file")
	}

	out := make(map[string]any)
	for _, view := range fs.cfg.AttributeViews {
		attrs, err := fs.attrs.ReadAttributes(r.file, string(view))
		if err != nil {
			return nil, err
		}
		for k, v := range attrs {
			out[k] = v
		}
	}
	return out, nil
}

// SetAttribute sets a single "view:attribute" value on path's file.
func (fs *FileSystem) SetAttribute(path, qualified string, value any) error {
	if err := fs.checkOpen("setAttribute"); err != nil {
		return err
	}
	fs.recordOp("setAttribute")

	r, err := fs.resolve(path, true)
	if err != nil {
		return err
	}
	if r.file == nil {
		return ferrors.New(ferrors.NoSuchFile, "setAttribute", path, "no such file")
	}
	if err := fs.attrs.Set(r.file, qualified, value, false); err != nil {
		return err
	}
	fs.postEvent(r.file, watch.Modify)
	return nil
}
