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

package vnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memvfs-go/memvfs/block"
	"github.com/memvfs-go/memvfs/clock"
	"github.com/memvfs-go/memvfs/vnode"
)

func TestIDGeneratorIsMonotonicAndNonZero(t *testing.T) {
	var ids vnode.IDGenerator
	a := ids.Next()
	b := ids.Next()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)
}

func TestNewRegularFileHasKindAndZeroLinks(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	disk := block.New(4096, 0, 0)
	f := vnode.NewRegularFile(1, now, disk)
	assert.Equal(t, vnode.KindRegularFile, f.Kind())
	assert.Equal(t, uint32(0), f.Links())
	assert.NotNil(t, f.Regular())
	assert.Nil(t, f.Directory())
	assert.Nil(t, f.SymbolicLink())
}

func TestNewSymbolicLinkTarget(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	f := vnode.NewSymbolicLink(1, now, "/a/b")
	assert.Equal(t, vnode.KindSymbolicLink, f.Kind())
	assert.Equal(t, "/a/b", f.SymbolicLink().Target())
}

func TestLinksIncDec(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	f := vnode.NewDirectoryFile(1, now)
	f.IncLinks()
	f.IncLinks()
	assert.Equal(t, uint32(2), f.Links())
	assert.Equal(t, uint32(1), f.DecLinks())
	assert.Equal(t, uint32(0), f.DecLinks())
}

func TestDecLinksPanicsBelowZero(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	f := vnode.NewDirectoryFile(1, now)
	assert.Panics(t, func() { f.DecLinks() })
}

func TestAttributeStorage(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	f := vnode.NewDirectoryFile(1, now)

	_, ok := f.Attribute("posix:permissions")
	assert.False(t, ok)

	f.SetAttribute("posix:permissions", uint32(0o755))
	v, ok := f.Attribute("posix:permissions")
	assert.True(t, ok)
	assert.Equal(t, uint32(0o755), v)
	assert.Contains(t, f.AttributeKeys(), "posix:permissions")
}

func TestTimestampsMutate(t *testing.T) {
	now := clock.NewFileTime(clock.RealClock{}.Now())
	f := vnode.NewDirectoryFile(1, now)
	assert.True(t, f.CreationTime().Equal(now))

	later := clock.NewFileTime(now.Time().Add(1))
	f.SetLastModifiedTime(later)
	f.SetLastAccessTime(later)
	assert.True(t, f.LastModifiedTime().Equal(later))
	assert.True(t, f.LastAccessTime().Equal(later))
}
