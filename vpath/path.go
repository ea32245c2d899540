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

// Package vpath implements the path service: a Path type (unix vs.
// windows), parsing/normalization/canonicalization, display-vs-canonical
// name equality, and a glob/regex path-matcher compiler.
package vpath

import "github.com/memvfs-go/memvfs/name"

// Path is { root Option<Name>, names []Name }. Absolute iff root is
// present. The empty path has no root and a single empty-string name.
type Path struct {
	root    *name.Name
	names   []name.Name
	pType   *Type
}

// IsAbsolute reports whether the path carries a root.
func (p Path) IsAbsolute() bool { return p.root != nil }

// Root returns the root name and whether one is present.
func (p Path) Root() (name.Name, bool) {
	if p.root == nil {
		return name.Name{}, false
	}
	return *p.root, true
}

// Names returns the path's components (excluding the root).
func (p Path) Names() []name.Name {
	return p.names
}

// IsEmpty reports whether this is the empty path (no root, single
// empty-string component).
func (p Path) IsEmpty() bool {
	return p.root == nil && len(p.names) == 1 && p.names[0].IsEmpty()
}

// FileName returns the last component, or the empty Name for a root-only
// or empty path.
func (p Path) FileName() name.Name {
	if len(p.names) == 0 {
		return name.Empty
	}
	return p.names[len(p.names)-1]
}

// Parent returns the path without its final component, and whether a
// parent exists (a root-only or empty path has none).
func (p Path) Parent() (Path, bool) {
	if len(p.names) == 0 {
		return Path{}, false
	}
	return Path{root: p.root, names: p.names[:len(p.names)-1], pType: p.pType}, true
}

// Join appends more onto p, as a relative continuation (more must not be
// absolute).
func (p Path) Join(more Path) Path {
	out := Path{root: p.root, pType: p.pType}
	out.names = append(out.names, p.names...)
	out.names = append(out.names, more.names...)
	return out
}

// String renders the path using its owning Type's separator rules.
func (p Path) String() string {
	if p.pType == nil {
		return ""
	}
	return p.pType.Render(p)
}

// Normalize resolves "." and ".." components lexically, without touching
// the filesystem (symlink resolution happens during traversal, not here).
func (p Path) Normalize() Path {
	out := Path{root: p.root, pType: p.pType}
	for _, n := range p.names {
		switch {
		case n.IsSelf():
			continue
		case n.IsParent():
			if len(out.names) > 0 && !out.names[len(out.names)-1].IsParent() {
				out.names = out.names[:len(out.names)-1]
				continue
			}
			if p.root != nil {
				// ".." above the root is a no-op, mirroring typical
				// filesystem lexical normalization.
				continue
			}
			out.names = append(out.names, n)
		default:
			out.names = append(out.names, n)
		}
	}
	if len(out.names) == 0 {
		if p.root == nil {
			out.names = []name.Name{name.Empty}
		}
	}
	return out
}
