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

var dosFlags = []string{"readonly", "hidden", "archive", "system"}

// DosProvider implements the "dos" view: four boolean flags, all
// defaulting to false and independently settable.
type DosProvider struct{}

func (*DosProvider) Name() string           { return "dos" }
func (*DosProvider) Inherits() []string     { return nil }
func (*DosProvider) AttributeNames() []string { return dosFlags }
func (*DosProvider) FixedAttributes() []string { return nil }

func (*DosProvider) DefaultValues(userProvided map[string]any) map[string]any {
	out := map[string]any{}
	for _, flag := range dosFlags {
		if v, ok := userProvided["dos:"+flag]; ok {
			out[flag] = v
		} else {
			out[flag] = false
		}
	}
	return out
}

func (*DosProvider) Get(f *vnode.File, attribute string) (any, bool) {
	for _, flag := range dosFlags {
		if attribute == flag {
			v, ok := f.Attribute("dos:" + flag)
			if !ok {
				return false, true
			}
			return v, true
		}
	}
	return nil, false
}

func (*DosProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	for _, flag := range dosFlags {
		if attribute == flag {
			v, ok := value.(bool)
			if !ok {
				return ferrors.New(ferrors.IllegalArgument, "setAttribute", "dos:"+flag, "value must be a bool")
			}
			f.SetAttribute("dos:"+flag, v)
			return nil
		}
	}
	return ferrors.New(ferrors.UnsupportedOperation, "setAttribute", "dos:"+attribute, "not settable")
}
