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

package vpath_test

import (
	"testing"

	"github.com/memvfs-go/memvfs/name"
	"github.com/memvfs-go/memvfs/vpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnixService(canonical bool) *vpath.Service {
	return vpath.NewService(vpath.NewUnixType(), name.NormNone, name.NormNone, canonical)
}

// TestS4PathScenario is the literal spec.md S4 scenario.
func TestS4PathScenario(t *testing.T) {
	s := newUnixService(false)

	p := s.ParsePath("", "foo")
	assert.Equal(t, "foo", p.String())

	p2 := s.ParsePath("/a/./b/../c")
	assert.Equal(t, "/a/c", p2.Normalize().String())

	m, err := s.CreatePathMatcher("glob:**/*.txt")
	require.NoError(t, err)
	assert.True(t, m.Matches(s.ParsePath("a/b/c.txt")))
	assert.False(t, m.Matches(s.ParsePath("a/b/c.csv")))
}

func TestParsePathIgnoresEmptyComponents(t *testing.T) {
	s := newUnixService(false)
	p := s.ParsePath("a", "", "b")
	assert.Equal(t, "a/b", p.String())
}

func TestPathRoundTrip(t *testing.T) {
	s := newUnixService(false)
	for _, raw := range []string{"/a/b/c", "a/b", "/", "a"} {
		p := s.ParsePath(raw)
		got := s.ParsePath(p.String())
		assert.Equal(t, p.String(), got.String(), "round trip for %q", raw)
	}
}

func TestHashCompareConsistency(t *testing.T) {
	s := newUnixService(false)
	a := s.ParsePath("/a/b")
	b := s.ParsePath("/a/b")

	assert.Equal(t, 0, s.Compare(a, b))
	assert.Equal(t, s.Hash(a), s.Hash(b))
}

func TestEqualityUsesConfiguredForm(t *testing.T) {
	display := vpath.NewService(vpath.NewUnixType(), name.NormNone, name.NormCaseFoldASCII, false)
	canonical := vpath.NewService(vpath.NewUnixType(), name.NormNone, name.NormCaseFoldASCII, true)

	a := display.ParsePath("/Foo")
	b := display.ParsePath("/foo")

	assert.False(t, display.Equal(a, b), "display-form equality should distinguish case")
	assert.True(t, canonical.Equal(a, b), "canonical-form equality should fold case")
}

func TestWindowsDriveRoot(t *testing.T) {
	s := vpath.NewService(vpath.NewWindowsType(), name.NormNone, name.NormNone, false)
	p := s.ParsePath(`C:\foo\bar`)
	assert.Equal(t, `C:\foo\bar`, p.String())
	assert.True(t, p.IsAbsolute())
}

func TestWindowsUNCRoot(t *testing.T) {
	s := vpath.NewService(vpath.NewWindowsType(), name.NormNone, name.NormNone, false)
	p := s.ParsePath(`\\host\share\dir`)
	assert.True(t, p.IsAbsolute())
	root, ok := p.Root()
	require.True(t, ok)
	assert.Equal(t, `\\host\share\`, root.Display())
}

func TestWindowsAcceptsForwardSlashButEmitsBackslash(t *testing.T) {
	s := vpath.NewService(vpath.NewWindowsType(), name.NormNone, name.NormNone, false)
	p := s.ParsePath("C:/foo/bar")
	assert.Equal(t, `C:\foo\bar`, p.String())
}

func TestGlobQuestionMarkAndCharClass(t *testing.T) {
	s := newUnixService(false)
	m, err := s.CreatePathMatcher("glob:foo?.[tc]xt")
	require.NoError(t, err)
	assert.True(t, m.Matches(s.ParsePath("foo1.txt")))
	assert.True(t, m.Matches(s.ParsePath("foo2.cxt")))
	assert.False(t, m.Matches(s.ParsePath("foo12.txt")))
}

func TestGlobBraceAlternation(t *testing.T) {
	s := newUnixService(false)
	m, err := s.CreatePathMatcher("glob:*.{jpg,png}")
	require.NoError(t, err)
	assert.True(t, m.Matches(s.ParsePath("a.jpg")))
	assert.True(t, m.Matches(s.ParsePath("a.png")))
	assert.False(t, m.Matches(s.ParsePath("a.gif")))
}

func TestRegexMatcher(t *testing.T) {
	s := newUnixService(false)
	m, err := s.CreatePathMatcher("regex:a/.*\\.txt")
	require.NoError(t, err)
	assert.True(t, m.Matches(s.ParsePath("a/b.txt")))
}

func TestCreatePathMatcherRejectsUnknownSyntax(t *testing.T) {
	s := newUnixService(false)
	_, err := s.CreatePathMatcher("weird:foo")
	assert.Error(t, err)
}

func TestEmptyPath(t *testing.T) {
	s := newUnixService(false)
	p := s.EmptyPath()
	assert.True(t, p.IsEmpty())
	assert.False(t, p.IsAbsolute())
}
