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

package name_test

import (
	"testing"

	"github.com/memvfs-go/memvfs/name"
	"github.com/stretchr/testify/assert"
)

func TestSimpleSetsBothForms(t *testing.T) {
	n := name.Simple("foo")
	assert.Equal(t, "foo", n.Display())
	assert.Equal(t, "foo", n.Canonical())
}

func TestReservedNames(t *testing.T) {
	assert.True(t, name.Self.IsSelf())
	assert.True(t, name.Parent.IsParent())
	assert.True(t, name.Empty.IsEmpty())
	assert.False(t, name.Self.IsParent())
}

func TestCaseFoldASCIIEquality(t *testing.T) {
	a := name.New("FOO.txt", name.NormNone, name.NormCaseFoldASCII)
	b := name.New("foo.txt", name.NormNone, name.NormCaseFoldASCII)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "FOO.txt", a.Display())
	assert.Equal(t, "foo.txt", a.Canonical())
}

func TestCaseFoldUnicodeEquality(t *testing.T) {
	a := name.New("Straße", name.NormNone, name.NormCaseFoldUnicode)
	b := name.New("STRASSE", name.NormNone, name.NormCaseFoldUnicode)

	assert.True(t, a.Equal(b))
}

func TestDisplayNormalizationIndependentOfCanonical(t *testing.T) {
	n := name.New("Foo", name.NormCaseFoldASCII, name.NormCaseFoldASCII)
	assert.Equal(t, "foo", n.Display())
	assert.Equal(t, "foo", n.Canonical())
}

func TestNoNormalizationPreservesCase(t *testing.T) {
	a := name.New("Foo", name.NormNone, name.NormNone)
	b := name.New("foo", name.NormNone, name.NormNone)
	assert.False(t, a.Equal(b))
}
