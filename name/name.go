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

// Package name implements the interned path-component type: an immutable
// (display, canonical) pair. Directory tables hash and compare names by
// their canonical form; display form is kept only for rendering.
package name

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Self and Parent are the two reserved names every Directory materializes
// on read.
var (
	Self   = Simple(".")
	Parent = Simple("..")
	Empty  = Simple("")
)

// Normalization selects how a Name's canonical (or display) form is derived
// from raw input, per the filesystem's configured
// nameCanonicalNormalization / nameDisplayNormalization sets.
type Normalization int

const (
	NormNone Normalization = iota
	NormCaseFoldASCII
	NormCaseFoldUnicode
	NormNFC
	NormNFD
)

// Apply folds/normalizes s per n.
func (n Normalization) Apply(s string) string {
	switch n {
	case NormCaseFoldASCII:
		return foldASCII(s)
	case NormCaseFoldUnicode:
		return cases.Fold().String(s)
	case NormNFC:
		return norm.NFC.String(s)
	case NormNFD:
		return norm.NFD.String(s)
	default:
		return s
	}
}

func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// Name is an immutable (display, canonical) pair. Two Names are equal (and
// hash equal) iff their canonical forms are equal.
type Name struct {
	display   string
	canonical string
}

// Simple builds a Name whose display and canonical forms are both s,
// unmodified. Used for the reserved names and for path services configured
// with no normalization.
func Simple(s string) Name {
	return Name{display: s, canonical: s}
}

// New builds a Name from raw input s, applying the given display and
// canonical normalizations independently (a filesystem may, for instance,
// preserve display case while folding canonical case for lookups).
func New(s string, displayNorm, canonicalNorm Normalization) Name {
	return Name{
		display:   displayNorm.Apply(s),
		canonical: canonicalNorm.Apply(s),
	}
}

// Display returns the form used for rendering.
func (n Name) Display() string { return n.display }

// Canonical returns the form used for equality and hashing.
func (n Name) Canonical() string { return n.canonical }

// Equal compares two Names by canonical form.
func (n Name) Equal(other Name) bool { return n.canonical == other.canonical }

// IsSelf reports whether n is the "." reserved name.
func (n Name) IsSelf() bool { return n.canonical == "." }

// IsParent reports whether n is the ".." reserved name.
func (n Name) IsParent() bool { return n.canonical == ".." }

// IsEmpty reports whether n is the "" reserved marker name.
func (n Name) IsEmpty() bool { return n.canonical == "" }

func (n Name) String() string { return n.display }
