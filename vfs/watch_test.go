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

package vfs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvfs-go/memvfs/vfs"
	"github.com/memvfs-go/memvfs/watch"
)

func TestMkdirSignalsWatcherOnParent(t *testing.T) {
	fs := newTestFS(t)
	key, err := fs.NewWatcher("/", watch.Create, watch.Modify, watch.Delete)
	require.NoError(t, err)

	require.NoError(t, fs.Mkdir("/a"))

	waitSignalled(t, fs, key)
	events := key.PollEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, watch.Create, events[0].Kind)
}

func TestRemoveSignalsWatcherOnParent(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/a"))
	key, err := fs.NewWatcher("/", watch.Create, watch.Modify, watch.Delete)
	require.NoError(t, err)

	require.NoError(t, fs.Remove("/a"))

	waitSignalled(t, fs, key)
	events := key.PollEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, watch.Delete, events[len(events)-1].Kind)
}

func TestSetAttributeSignalsWatcherOnFileItself(t *testing.T) {
	fs, err := vfsWithViews(t, "dos")
	require.NoError(t, err)
	require.NoError(t, fs.Mkdir("/a"))
	key, err := fs.NewWatcher("/a", watch.Modify)
	require.NoError(t, err)

	require.NoError(t, fs.SetAttribute("/a", "dos:readonly", true))

	waitSignalled(t, fs, key)
	events := key.PollEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, watch.Modify, events[0].Kind)
}

func TestNewWatcherOnMissingPathFails(t *testing.T) {
	fs := newTestFS(t)
	_, err := fs.NewWatcher("/missing", watch.Create)
	require.Error(t, err)
}

func waitSignalled(t *testing.T, fs *vfs.FileSystem, key *watch.Key) {
	t.Helper()
	taken, ok, err := fs.WatchService().PollTimeout(time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, key.ID(), taken.ID())
}
