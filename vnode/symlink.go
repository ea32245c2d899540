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

package vnode

// SymbolicLink holds an immutable target path string, stored unparsed so a
// symlink can be created before its target is known to exist or even be
// syntactically valid for a particular PathType.
type SymbolicLink struct {
	target string
}

// Target returns the link's target path string.
func (s *SymbolicLink) Target() string { return s.target }
