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
	"strings"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/vnode"
)

// UserProvider implements the "user" view: arbitrary caller-defined
// byte-slice attributes, addressed by whatever name the caller chooses
// (mirroring a filesystem's extended-attribute namespace). Names are
// discovered from the File's populated attribute keys rather than a
// fixed list, since they're open-ended.
type UserProvider struct{}

func (*UserProvider) Name() string           { return "user" }
func (*UserProvider) Inherits() []string     { return nil }
func (*UserProvider) FixedAttributes() []string { return nil }

func (*UserProvider) AttributeNames() []string {
	// Populated dynamically per-file; attr.go's readInto loop instead
	// calls DynamicAttributeNames when enumerating a concrete file.
	return nil
}

// DynamicAttributeNames returns the user-attribute names currently
// populated on f.
func (*UserProvider) DynamicAttributeNames(f *vnode.File) []string {
	var out []string
	for _, k := range f.AttributeKeys() {
		if rest, ok := strings.CutPrefix(k, "user:"); ok {
			out = append(out, rest)
		}
	}
	return out
}

func (*UserProvider) DefaultValues(userProvided map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range userProvided {
		if rest, ok := strings.CutPrefix(k, "user:"); ok {
			out[rest] = v
		}
	}
	return out
}

func (*UserProvider) Get(f *vnode.File, attribute string) (any, bool) {
	return f.Attribute("user:" + attribute)
}

func (*UserProvider) Set(f *vnode.File, attribute string, value any, create bool) error {
	v, ok := value.([]byte)
	if !ok {
		return ferrors.New(ferrors.IllegalArgument, "setAttribute", "user:"+attribute, "value must be a byte slice")
	}
	f.SetAttribute("user:"+attribute, v)
	return nil
}
