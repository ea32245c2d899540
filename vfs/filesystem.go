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

// Package vfs is the filesystem facade: the in-scope half of the host
// boundary. It resolves paths through PathService and the Directory tree,
// obtains a File, and calls down into RegularFile/Directory/SymbolicLink/
// Attribute operations, posting watch events along the way. It does not
// parse URIs or register instances by scheme; a caller plugging this into
// a host's abstract filesystem API owns that layer.
package vfs

import (
	"sync"

	"github.com/memvfs-go/memvfs/attr"
	"github.com/memvfs-go/memvfs/block"
	"github.com/memvfs-go/memvfs/clock"
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/fsstate"
	"github.com/memvfs-go/memvfs/internal/logger"
	"github.com/memvfs-go/memvfs/memvfsconfig"
	"github.com/memvfs-go/memvfs/metrics"
	"github.com/memvfs-go/memvfs/name"
	"github.com/memvfs-go/memvfs/vnode"
	"github.com/memvfs-go/memvfs/vpath"
	"github.com/memvfs-go/memvfs/watch"
)

// FileSystem is a single, self-contained in-memory filesystem instance.
// All of its state lives in this struct and whatever it transitively owns;
// nothing touches the host OS.
type FileSystem struct {
	mu sync.Mutex

	cfg     *memvfsconfig.Config
	disk    *block.Disk
	clock   clock.Clock
	ids     vnode.IDGenerator
	paths   *vpath.Service
	attrs   *attr.Registry
	watches *watch.Service
	metrics metrics.Handle
	state   *fsstate.State

	roots map[string]*vnode.File // canonical root name -> root directory inode

	closeRequested bool
}

// New builds a FileSystem from cfg, wiring the path service, block pool,
// attribute registry and watch service the way the rest of the component
// table describes, and creating one root directory per cfg.Roots entry.
func New(cfg *memvfsconfig.Config) (*FileSystem, error) {
	if cfg == nil {
		cfg = &memvfsconfig.Config{}
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Configure(cfg.LogFormat, cfg.LogSeverity, cfg.LogFilePath, cfg.LogRotation); err != nil {
		return nil, err
	}

	m, err := metrics.New()
	if err != nil {
		return nil, err
	}

	pType := vpath.NewUnixType()
	if cfg.PathType == memvfsconfig.PathTypeWindows {
		pType = vpath.NewWindowsType()
	}
	displayNorm, canonNorm := resolveNormalizations(cfg)
	paths := vpath.NewService(pType, displayNorm, canonNorm, cfg.PathEqualityUsesCanonicalForm)

	disk := block.New(cfg.BlockSize, cfg.MaxBlockCount(), cfg.MaxCachedBlockCount())
	disk.SetMetrics(m)

	watches := watch.NewService()
	watches.SetMetrics(m)

	fs := &FileSystem{
		cfg:     cfg,
		disk:    disk,
		clock:   clock.RealClock{},
		paths:   paths,
		attrs:   attr.NewRegistry(),
		watches: watches,
		metrics: m,
		roots:   make(map[string]*vnode.File),
	}
	fs.state = fsstate.New(func() {
		fs.watches.Close()
		logger.Infof("filesystem teardown complete")
	})

	for _, root := range cfg.Roots {
		n := name.New(root, displayNorm, canonNorm)
		now := clock.NewFileTime(fs.clock.Now())
		r := vnode.NewDirectoryFile(fs.ids.Next(), now)
		r.IncLinks()
		fs.attrs.InitializeOnCreate(r, cfg.DefaultAttributeValues)
		fs.roots[n.Canonical()] = r
	}

	logger.Infof("filesystem initialized with %d root(s), block size %d", len(fs.roots), cfg.BlockSize)
	return fs, nil
}

func resolveNormalizations(cfg *memvfsconfig.Config) (display, canonical name.Normalization) {
	display = firstOrNone(cfg.NameDisplayNormalization)
	canonical = firstOrNone(cfg.NameCanonicalNormalization)
	return
}

func firstOrNone(ns []memvfsconfig.Normalization) name.Normalization {
	if len(ns) == 0 {
		return name.NormNone
	}
	switch ns[0] {
	case memvfsconfig.NormalizationCaseFoldASCII:
		return name.NormCaseFoldASCII
	case memvfsconfig.NormalizationCaseFoldUnicode:
		return name.NormCaseFoldUnicode
	case memvfsconfig.NormalizationNFC:
		return name.NormNFC
	case memvfsconfig.NormalizationNFD:
		return name.NormNFD
	default:
		return name.NormNone
	}
}

// PathService exposes the filesystem's configured path service, e.g. so a
// host provider can parse a path the same way the filesystem does.
func (fs *FileSystem) PathService() *vpath.Service { return fs.paths }

// NewWatcher resolves path and registers its file for the given event
// kinds, returning a key that the filesystem's mutations on that file (or,
// for a directory, on its entries) post events to.
func (fs *FileSystem) NewWatcher(path string, kinds ...watch.EventKind) (*watch.Key, error) {
	if err := fs.checkOpen("watch"); err != nil {
		return nil, err
	}
	r, err := fs.resolve(path, true)
	if err != nil {
		return nil, err
	}
	if r.file == nil {
		return nil, ferrors.New(ferrors.NoSuchFile, "watch", path, "no such file")
	}
	return fs.watches.Register(r.file, kinds...)
}

// WatchService returns the filesystem's notification engine, for callers
// that want to Take/Poll directly instead of going through a single Key.
func (fs *FileSystem) WatchService() *watch.Service { return fs.watches }

// Close marks the filesystem closed: no further operations may be
// performed. Any streams still open continue to work until their own
// Close; once the last one does, FileSystemState's disposer runs final
// teardown (closing the watch service) exactly once.
func (fs *FileSystem) Close() error {
	fs.mu.Lock()
	fs.closeRequested = true
	fs.mu.Unlock()
	fs.state.Close()
	logger.Infof("filesystem close requested (%d handle(s) still open)", fs.state.OpenCount())
	return nil
}

func (fs *FileSystem) checkOpen(op string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.closeRequested {
		return ferrors.New(ferrors.ClosedFileSystem, op, "", "filesystem is closed")
	}
	return nil
}

func (fs *FileSystem) now() clock.FileTime {
	return clock.NewFileTime(fs.clock.Now())
}

// postEvent notifies every key registered against watchable (a Directory's
// owning *vnode.File, by convention) of kind.
func (fs *FileSystem) postEvent(watchable any, kind watch.EventKind) {
	fs.watches.PostTo(watchable, kind)
}
