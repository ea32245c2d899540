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

	"github.com/cespare/xxhash/v2"
	"github.com/memvfs-go/memvfs/name"
)

// Service is the PathService: it owns a Type, the configured display and
// canonical name normalizations, and the equality mode used by Hash/Compare.
type Service struct {
	pType                    *Type
	displayNorm, canonicalNorm name.Normalization
	equalityUsesCanonicalForm bool
}

// NewService constructs a PathService for the given Type and normalization
// configuration.
func NewService(t *Type, displayNorm, canonicalNorm name.Normalization, equalityUsesCanonicalForm bool) *Service {
	return &Service{
		pType:                     t,
		displayNorm:               displayNorm,
		canonicalNorm:             canonicalNorm,
		equalityUsesCanonicalForm: equalityUsesCanonicalForm,
	}
}

// EmptyPath returns the relative, empty path: no root, a single
// empty-string component.
func (s *Service) EmptyPath() Path {
	return Path{pType: s.pType, names: []name.Name{name.Empty}}
}

// CreateRoot builds an absolute, component-less path whose root is n.
func (s *Service) CreateRoot(n name.Name) Path {
	r := n
	return Path{pType: s.pType, root: &r}
}

// CreateFileName builds a single-component relative path.
func (s *Service) CreateFileName(n name.Name) Path {
	return Path{pType: s.pType, names: []name.Name{n}}
}

// CreateRelativePath builds a relative path from the given components.
func (s *Service) CreateRelativePath(names []name.Name) Path {
	return Path{pType: s.pType, names: append([]name.Name(nil), names...)}
}

// CreatePath builds an absolute or relative path from an optional root and
// components.
func (s *Service) CreatePath(root *name.Name, names []name.Name) Path {
	return Path{pType: s.pType, root: root, names: append([]name.Name(nil), names...)}
}

// ParsePath joins first and more with the Type's separator and parses the
// result, ignoring empty components — so ParsePath("", "foo") yields
// "foo", not "/foo".
func (s *Service) ParsePath(first string, more ...string) Path {
	parts := make([]string, 0, 1+len(more))
	if first != "" {
		parts = append(parts, first)
	}
	for _, m := range more {
		if m != "" {
			parts = append(parts, m)
		}
	}
	joined := strings.Join(parts, string(s.pType.separator))
	return s.pType.parse(joined, s.displayNorm, s.canonicalNorm)
}

// formOf returns the form (display or canonical) this service uses for
// hashing and comparison.
func (s *Service) formOf(n name.Name) string {
	if s.equalityUsesCanonicalForm {
		return n.Canonical()
	}
	return n.Display()
}

// Compare orders two paths component-by-component in the service's
// configured equality form. It returns <0, 0, or >0.
func (s *Service) Compare(a, b Path) int {
	ar, aok := a.Root()
	br, bok := b.Root()
	if aok != bok {
		if aok {
			return 1
		}
		return -1
	}
	if aok {
		if c := strings.Compare(s.formOf(ar), s.formOf(br)); c != 0 {
			return c
		}
	}
	for i := 0; i < len(a.names) && i < len(b.names); i++ {
		if c := strings.Compare(s.formOf(a.names[i]), s.formOf(b.names[i])); c != 0 {
			return c
		}
	}
	return len(a.names) - len(b.names)
}

// Equal reports whether a and b compare equal.
func (s *Service) Equal(a, b Path) bool {
	return s.Compare(a, b) == 0
}

// Hash computes a hash of p consistent with Compare: Compare(a,b)==0
// implies Hash(a)==Hash(b).
func (s *Service) Hash(p Path) uint64 {
	h := xxhash.New()
	if r, ok := p.Root(); ok {
		h.Write([]byte(s.formOf(r)))
	}
	h.Write([]byte{0})
	for _, n := range p.names {
		h.Write([]byte(s.formOf(n)))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// Type returns the underlying PathType.
func (s *Service) Type() *Type { return s.pType }
