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

package attr

import (
	"github.com/memvfs-go/memvfs/clock"
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/vnode"
)

// BasicProvider implements the "basic" view: size, file-kind predicates
// and the three clock-sourced timestamps every file carries intrinsically
// (so it reads from the File header, not the generic attribute map).
type BasicProvider struct{}

func (*BasicProvider) Name() string     { return "basic" }
func (*BasicProvider) Inherits() []string { return nil }

func (*BasicProvider) AttributeNames() []string {
	return []string{
		"size", "fileKey", "isDirectory", "isRegularFile", "isSymbolicLink",
		"isOther", "creationTime", "lastModifiedTime", "lastAccessTime",
	}
}

func (*BasicProvider) FixedAttributes() []string {
	return []string{"size", "fileKey", "isDirectory", "isRegularFile", "isSymbolicLink", "isOther"}
}

func (*BasicProvider) DefaultValues(map[string]any) map[string]any {
	return nil
}

func (*BasicProvider) Get(f *vnode.File, attribute string) (any, bool) {
	switch attribute {
	case "size":
		if f.Kind() == vnode.KindRegularFile {
			size, _ := f.Regular().Stat()
			return size, true
		}
		return uint64(0), true
	case "fileKey":
		return f.ID(), true
	case "isDirectory":
		return f.Kind() == vnode.KindDirectory, true
	case "isRegularFile":
		return f.Kind() == vnode.KindRegularFile, true
	case "isSymbolicLink":
		return f.Kind() == vnode.KindSymbolicLink, true
	case "isOther":
		return false, true
	case "creationTime":
		return f.CreationTime(), true
	case "lastModifiedTime":
		return f.LastModifiedTime(), true
	case "lastAccessTime":
		return f.LastAccessTime(), true
	}
	return nil, false
}

func (*BasicProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	switch attribute {
	case "creationTime":
		v, ok := value.(clock.FileTime)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "basic:creationTime", "value must be a FileTime")
		}
		f.SetCreationTime(v)
	case "lastModifiedTime":
		v, ok := value.(clock.FileTime)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "basic:lastModifiedTime", "value must be a FileTime")
		}
		f.SetLastModifiedTime(v)
	case "lastAccessTime":
		v, ok := value.(clock.FileTime)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "basic:lastAccessTime", "value must be a FileTime")
		}
		f.SetLastAccessTime(v)
	default:
		return ferrors.New(ferrors.UnsupportedOperation, "setAttribute", "basic:"+attribute, "not settable")
	}
	return nil
}
