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

package fsstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memvfs-go/memvfs/fsstate"
)

func TestDisposesOnlyAfterCloseAndLastHandle(t *testing.T) {
	disposed := 0
	s := fsstate.New(func() { disposed++ })

	s.Opened()
	s.Opened()
	s.Close()
	assert.Equal(t, 0, disposed, "still one handle open")

	s.Closed(true)
	assert.Equal(t, 0, disposed, "still one handle open")

	s.Closed(true)
	assert.Equal(t, 1, disposed)
}

func TestDisposesImmediatelyIfNoHandlesOpen(t *testing.T) {
	disposed := 0
	s := fsstate.New(func() { disposed++ })
	s.Close()
	assert.Equal(t, 1, disposed)
}

func TestCloseIsIdempotent(t *testing.T) {
	disposed := 0
	s := fsstate.New(func() { disposed++ })
	s.Close()
	s.Close()
	assert.Equal(t, 1, disposed)
}

func TestRedundantCloseDoesNotDoubleDecrement(t *testing.T) {
	s := fsstate.New(nil)
	s.Opened()
	s.Closed(true)
	s.Closed(false) // idempotent second close on same handle
	assert.Equal(t, 0, s.OpenCount())
}
