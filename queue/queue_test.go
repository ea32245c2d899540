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

package queue_test

import (
	"testing"

	"github.com/memvfs-go/memvfs/queue"
	"github.com/stretchr/testify/assert"
)

func TestFIFOOrder(t *testing.T) {
	q := queue.New[int]()
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, q.PeekStart())
		assert.Equal(t, i, q.Pop())
	}
	assert.True(t, q.IsEmpty())
}

func TestPopEmptyPanics(t *testing.T) {
	q := queue.New[string]()
	assert.Panics(t, func() { q.Pop() })
}

func TestPeekEmptyPanics(t *testing.T) {
	q := queue.New[string]()
	assert.Panics(t, func() { q.PeekStart() })
}

func TestInterleavedPushPop(t *testing.T) {
	q := queue.New[int]()
	q.Push(1)
	q.Push(2)
	assert.Equal(t, 1, q.Pop())
	q.Push(3)
	assert.Equal(t, 2, q.Pop())
	assert.Equal(t, 3, q.Pop())
	assert.True(t, q.IsEmpty())
}
