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

package vpath

import (
	"strings"

	"github.com/memvfs-go/memvfs/name"
)

// Flavor distinguishes the two supported path grammars.
type Flavor int

const (
	Unix Flavor = iota
	Windows
)

// Type owns a path flavor's separator and rendering/parsing rules.
type Type struct {
	flavor        Flavor
	separator     byte
	altSeparators string
}

// NewUnixType returns the unix Type: separator '/', a single root "/".
func NewUnixType() *Type {
	return &Type{flavor: Unix, separator: '/'}
}

// NewWindowsType returns the windows Type: separator '\', per-drive roots
// like "C:\" and UNC roots like "\\host\share\"; '/' is accepted as an
// alternate separator on input but never emitted.
func NewWindowsType() *Type {
	return &Type{flavor: Windows, separator: '\\', altSeparators: "/"}
}

// Flavor reports which grammar this Type implements.
func (t *Type) Flavor() Flavor { return t.flavor }

func (t *Type) isSeparator(b byte) bool {
	if b == t.separator {
		return true
	}
	return strings.IndexByte(t.altSeparators, b) != -1
}

func (t *Type) splitComponents(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if t.isSeparator(s[i]) {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// splitRoot splits a raw joined string into an optional root prefix and
// the remaining component string, per this Type's root grammar.
func (t *Type) splitRoot(s string) (root string, rest string, absolute bool) {
	switch t.flavor {
	case Unix:
		if strings.HasPrefix(s, "/") {
			return "/", strings.TrimPrefix(s, "/"), true
		}
		return "", s, false
	case Windows:
		norm := strings.ReplaceAll(s, "/", `\`)
		if strings.HasPrefix(norm, `\\`) {
			// UNC root: \\host\share\
			rest := norm[2:]
			parts := strings.SplitN(rest, `\`, 3)
			if len(parts) >= 2 {
				root := `\\` + parts[0] + `\` + parts[1] + `\`
				remainder := ""
				if len(parts) == 3 {
					remainder = parts[2]
				}
				return root, remainder, true
			}
			return norm, "", true
		}
		if len(norm) >= 2 && norm[1] == ':' {
			root := norm[:2] + `\`
			remainder := strings.TrimPrefix(norm[2:], `\`)
			return root, remainder, true
		}
		return "", norm, false
	}
	return "", s, false
}

// Render converts p back to its string form using this Type's rules.
func (t *Type) Render(p Path) string {
	var b strings.Builder
	if p.root != nil {
		b.WriteString(p.root.Display())
	}
	for i, n := range p.names {
		if n.IsEmpty() && len(p.names) == 1 && p.root == nil {
			break
		}
		if i > 0 || (p.root != nil && !strings.HasSuffix(b.String(), string(t.separator))) {
			b.WriteByte(t.separator)
		}
		b.WriteString(n.Display())
	}
	return b.String()
}

// displayNorm/canonicalNorm select how raw components become Names. A
// PathService configures these once, at construction; Type itself stays
// stateless and is reused by Parse* helpers that take the normalizations
// explicitly.
func (t *Type) parse(joined string, displayNorm, canonicalNorm name.Normalization) Path {
	rootStr, rest, absolute := t.splitRoot(joined)
	p := Path{pType: t}
	if absolute {
		r := name.New(rootStr, displayNorm, canonicalNorm)
		p.root = &r
	}
	comps := t.splitComponents(rest)
	if len(comps) == 0 {
		if !absolute {
			p.names = []name.Name{name.Empty}
		}
		return p
	}
	p.names = make([]name.Name, len(comps))
	for i, c := range comps {
		p.names[i] = name.New(c, displayNorm, canonicalNorm)
	}
	return p
}
