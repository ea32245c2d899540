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

const defaultOwner = "nobody"

// OwnerProvider implements the "owner" view: a single settable principal
// name, stored in the File's generic attribute map under "owner:owner".
type OwnerProvider struct{}

func (*OwnerProvider) Name() string         { return "owner" }
func (*OwnerProvider) Inherits() []string   { return nil }
func (*OwnerProvider) AttributeNames() []string { return []string{"owner"} }
func (*OwnerProvider) FixedAttributes() []string { return nil }

func (*OwnerProvider) DefaultValues(userProvided map[string]any) map[string]any {
	if v, ok := userProvided["owner:owner"]; ok {
		return map[string]any{"owner": v}
	}
	return map[string]any{"owner": defaultOwner}
}

func (*OwnerProvider) Get(f *vnode.File, attribute string) (any, bool) {
	if attribute != "owner" {
		return nil, false
	}
	v, ok := f.Attribute("owner:owner")
	if !ok {
		return defaultOwner, true
	}
	return v, true
}

func (*OwnerProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	if attribute != "owner" {
		return ferrors.New(ferrors.UnsupportedOperation, "setAttribute", "owner:"+attribute, "not settable")
	}
	v, ok := value.(string)
	if !ok {
		return ferrors.New(ferrors.IllegalArgument, "setAttribute", "owner:owner", "value must be a string")
	}
	f.SetAttribute("owner:owner", v)
	return nil
}
