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

const defaultPermissions uint32 = 0o644
const defaultGroup = "nobody"

// PosixProvider implements the "posix" view: octal permissions and a
// group principal, layered on top of "owner".
type PosixProvider struct{}

func (*PosixProvider) Name() string          { return "posix" }
func (*PosixProvider) Inherits() []string    { return []string{"owner"} }
func (*PosixProvider) AttributeNames() []string { return []string{"permissions", "group"} }
func (*PosixProvider) FixedAttributes() []string { return nil }

func (*PosixProvider) DefaultValues(userProvided map[string]any) map[string]any {
	out := map[string]any{"permissions": defaultPermissions, "group": defaultGroup}
	if v, ok := userProvided["posix:permissions"]; ok {
		out["permissions"] = v
	}
	if v, ok := userProvided["posix:group"]; ok {
		out["group"] = v
	}
	return out
}

func (*PosixProvider) Get(f *vnode.File, attribute string) (any, bool) {
	switch attribute {
	case "permissions":
		v, ok := f.Attribute("posix:permissions")
		if !ok {
			return defaultPermissions, true
		}
		return v, true
	case "group":
		v, ok := f.Attribute("posix:group")
		if !ok {
			return defaultGroup, true
		}
		return v, true
	}
	return nil, false
}

func (*PosixProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	switch attribute {
	case "permissions":
		v, ok := value.(uint32)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "posix:permissions", "value must be a uint32")
		}
		f.SetAttribute("posix:permissions", v)
	case "group":
		v, ok := value.(string)
		if !ok {
			return ferrors.New(ferrors.IllegalArgument, "setAttribute", "posix:group", "value must be a string")
		}
		f.SetAttribute("posix:group", v)
	default:
		return ferrors.New(ferrors.UnsupportedOperation, "setAttribute", "posix:"+attribute, "not settable")
	}
	return nil
}
