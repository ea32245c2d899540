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
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/vnode"
)

// UnixProvider implements the "unix" view: uid/gid/mode plus the derived
// ctime/dev/ino/nlink/rdev fields, all eight of them fixed (read-only
// through Registry.Set; uid/gid are seeded at creation). It extends "posix" the way
// most real filesystems layer a unix-specific view over POSIX
// permissions.
type UnixProvider struct{}

func (*UnixProvider) Name() string       { return "unix" }
func (*UnixProvider) Inherits() []string { return []string{"posix"} }

func (*UnixProvider) AttributeNames() []string {
	return []string{"uid", "gid", "mode", "ctime", "rdev", "dev", "ino", "nlink"}
}

func (*UnixProvider) FixedAttributes() []string {
	return []string{"uid", "gid", "mode", "ctime", "rdev", "dev", "ino", "nlink"}
}

func (*UnixProvider) DefaultValues(userProvided map[string]any) map[string]any {
	out := map[string]any{"uid": uint32(0), "gid": uint32(0)}
	if v, ok := userProvided["unix:uid"]; ok {
		out["uid"] = v
	}
	if v, ok := userProvided["unix:gid"]; ok {
		out["gid"] = v
	}
	return out
}

func (*UnixProvider) Get(f *vnode.File, attribute string) (any, bool) {
	switch attribute {
	case "uid":
		v, ok := f.Attribute("unix:uid")
		if !ok {
			return uint32(0), true
		}
		return v, true
	case "gid":
		v, ok := f.Attribute("unix:gid")
		if !ok {
			return uint32(0), true
		}
		return v, true
	case "mode":
		perms, _ := f.Attribute("posix:permissions")
		mode, _ := perms.(uint32)
		return modeBitsFor(f.Kind()) | mode, true
	case "ctime":
		return f.LastModifiedTime(), true
	case "rdev", "dev":
		return uint64(0), true
	case "ino":
		return f.ID(), true
	case "nlink":
		return f.Links(), true
	}
	return nil, false
}

func (*UnixProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	switch attribute {
	case "uid":
		v, ok := value.(uint32)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "unix:uid", "value must be a uint32")
		}
		f.SetAttribute("unix:uid", v)
	case "gid":
		v, ok := value.(uint32)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "unix:gid", "value must be a uint32")
		}
		f.SetAttribute("unix:gid", v)
	default:
		return ferrors.New(ferrors.UnsupportedOperation, "setAttribute", "unix:"+attribute, "not settable")
	}
	return nil
}

func modeBitsFor(kind vnode.Kind) uint32 {
	switch kind {
	case vnode.KindDirectory:
		return 0o040000
	case vnode.KindSymbolicLink:
		return 0o120000
	default:
		return 0o100000
	}
}
