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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvfs-go/memvfs/clock"
	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/name"
	"github.com/memvfs-go/memvfs/vnode"
)

// TestS3DirectoryScenario is the literal spec.md S3 scenario: mkdir /a,
// link /a/b, rename to /a/c, unlink, and the link-count transitions along
// the way.
func TestS3DirectoryScenario(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())

	root := vnode.NewDirectoryFile(ids.Next(), now)
	a := vnode.NewDirectoryFile(ids.Next(), now)

	require.NoError(t, root.Directory().Link(name.Simple("a"), a))
	assert.Equal(t, uint32(1), a.Links())
	a.Directory().SetParent(root)

	b := vnode.NewDirectoryFile(ids.Next(), now)
	require.NoError(t, a.Directory().Link(name.Simple("b"), b))
	assert.Equal(t, uint32(1), b.Links())

	got, ok := a.Directory().Get(name.Simple("b"))
	require.True(t, ok)
	assert.Equal(t, b.ID(), got.ID())

	// rename b -> c within the same directory: unlink then relink.
	removed, err := a.Directory().Unlink(name.Simple("b"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), removed.Links())

	require.NoError(t, a.Directory().Link(name.Simple("c"), removed))
	assert.Equal(t, uint32(1), removed.Links())

	_, ok = a.Directory().Get(name.Simple("b"))
	assert.False(t, ok)
	gotC, ok := a.Directory().Get(name.Simple("c"))
	require.True(t, ok)
	assert.Equal(t, b.ID(), gotC.ID())

	_, err = a.Directory().Unlink(name.Simple("c"))
	require.NoError(t, err)
	assert.True(t, a.Directory().IsEmpty())
}

func TestDotAndDotDotSynthesized(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())

	root := vnode.NewDirectoryFile(ids.Next(), now)
	child := vnode.NewDirectoryFile(ids.Next(), now)
	require.NoError(t, root.Directory().Link(name.Simple("child"), child))
	child.Directory().SetParent(root)

	self, ok := child.Directory().Get(name.Self)
	require.True(t, ok)
	assert.Equal(t, child.ID(), self.ID())

	parent, ok := child.Directory().Get(name.Parent)
	require.True(t, ok)
	assert.Equal(t, root.ID(), parent.ID())
}

func TestLinkDuplicateNameFails(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	dir := vnode.NewDirectoryFile(ids.Next(), now)
	f1 := vnode.NewDirectoryFile(ids.Next(), now)
	f2 := vnode.NewDirectoryFile(ids.Next(), now)

	require.NoError(t, dir.Directory().Link(name.Simple("x"), f1))
	err := dir.Directory().Link(name.Simple("x"), f2)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.FileAlreadyExists))
}

func TestUnlinkMissingFails(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	dir := vnode.NewDirectoryFile(ids.Next(), now)
	_, err := dir.Directory().Unlink(name.Simple("missing"))
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.NoSuchFile))
}

func TestLinkReservedNameRejected(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	dir := vnode.NewDirectoryFile(ids.Next(), now)
	child := vnode.NewDirectoryFile(ids.Next(), now)
	err := dir.Directory().Link(name.Self, child)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.InvalidName))
}

// TestRehashSurvivesManyInsertsAndDeletes exercises growth through
// maxLoadFactor and tombstone accumulation without losing entries.
func TestRehashSurvivesManyInsertsAndDeletes(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	dir := vnode.NewDirectoryFile(ids.Next(), now)

	const n = 500
	children := make([]*vnode.File, n)
	for i := 0; i < n; i++ {
		children[i] = vnode.NewDirectoryFile(ids.Next(), now)
		require.NoError(t, dir.Directory().Link(name.Simple(fmt.Sprintf("f%d", i)), children[i]))
	}
	// delete every other entry, then reinsert under new names.
	for i := 0; i < n; i += 2 {
		_, err := dir.Directory().Unlink(name.Simple(fmt.Sprintf("f%d", i)))
		require.NoError(t, err)
	}
	for i := 0; i < n; i += 2 {
		require.NoError(t, dir.Directory().Link(name.Simple(fmt.Sprintf("g%d", i)), children[i]))
	}

	for i := 1; i < n; i += 2 {
		got, ok := dir.Directory().Get(name.Simple(fmt.Sprintf("f%d", i)))
		require.True(t, ok)
		assert.Equal(t, children[i].ID(), got.ID())
	}
	for i := 0; i < n; i += 2 {
		got, ok := dir.Directory().Get(name.Simple(fmt.Sprintf("g%d", i)))
		require.True(t, ok)
		assert.Equal(t, children[i].ID(), got.ID())
	}
}

func TestEntriesExcludesDotAndDotDot(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	dir := vnode.NewDirectoryFile(ids.Next(), now)
	child := vnode.NewDirectoryFile(ids.Next(), now)
	require.NoError(t, dir.Directory().Link(name.Simple("x"), child))

	entries := dir.Directory().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Name.Display())
}

func TestIsRoot(t *testing.T) {
	var ids vnode.IDGenerator
	now := clock.NewFileTime(clock.RealClock{}.Now())
	root := vnode.NewDirectoryFile(ids.Next(), now)
	assert.True(t, root.Directory().IsRoot())

	child := vnode.NewDirectoryFile(ids.Next(), now)
	require.NoError(t, root.Directory().Link(name.Simple("child"), child))
	child.Directory().SetParent(root)
	assert.False(t, child.Directory().IsRoot())
}
