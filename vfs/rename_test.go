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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/options"
)

func TestRenameWithinSameDirectory(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/a"))

	require.NoError(t, fs.Rename("/a", "/b"))

	_, err := fs.ReadDir("/b")
	require.NoError(t, err)
	_, err = fs.ReadDir("/a")
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.NoSuchFile))
}

func TestRenameAcrossDirectories(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/src"))
	require.NoError(t, fs.Mkdir("/dst"))
	_, err := fs.Create("/src/f")
	require.NoError(t, err)

	require.NoError(t, fs.Rename("/src/f", "/dst/f"))

	_, _, err = fs.OpenFile("/dst/f", options.Read)
	require.NoError(t, err)
	_, _, err = fs.OpenFile("/src/f", options.Read)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.NoSuchFile))
}

func TestRenameRejectsExistingDestinationWithoutReplaceExisting(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/a"))
	require.NoError(t, fs.Mkdir("/b"))

	err := fs.Rename("/a", "/b")
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.FileAlreadyExists))
}

func TestRenameReplacesExistingDestinationWhenRequested(t *testing.T) {
	fs := newTestFS(t)
	_, err := fs.Create("/a")
	require.NoError(t, err)
	_, err = fs.Create("/b")
	require.NoError(t, err)

	require.NoError(t, fs.Rename("/a", "/b", options.ReplaceExisting))

	_, _, err = fs.OpenFile("/a", options.Read)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.NoSuchFile))
}

// TestConcurrentReverseRenamesDoNotDeadlock exercises two goroutines
// renaming files between the same two directories in opposite directions,
// over and over, asserting the ascending-File.id lock order keeps the
// whole thing from wedging.
func TestConcurrentReverseRenamesDoNotDeadlock(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/x"))
	require.NoError(t, fs.Mkdir("/y"))
	_, err := fs.Create("/x/f")
	require.NoError(t, err)
	_, err = fs.Create("/y/g")
	require.NoError(t, err)

	const rounds = 200
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = fs.Rename("/x/f", "/y/f", options.ReplaceExisting)
			_ = fs.Rename("/y/f", "/x/f", options.ReplaceExisting)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = fs.Rename("/y/g", "/x/g", options.ReplaceExisting)
			_ = fs.Rename("/x/g", "/y/g", options.ReplaceExisting)
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent cross-directory renames deadlocked")
	}
}
