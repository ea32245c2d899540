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

package clock_test

import (
	"testing"
	"time"

	"github.com/memvfs-go/memvfs/clock"
	"github.com/stretchr/testify/assert"
)

func TestFileTimeRoundTrip(t *testing.T) {
	t.Parallel()

	in := time.Date(2012, 8, 15, 22, 56, 0, 1234, time.UTC)
	ft := clock.NewFileTime(in)

	assert.True(t, ft.Equal(clock.NewFileTime(in)))
	assert.Equal(t, in, ft.Time())
}

func TestFileTimeBefore(t *testing.T) {
	t.Parallel()

	base := time.Date(2012, 8, 15, 22, 56, 0, 0, time.UTC)
	early := clock.NewFileTime(base)
	late := clock.NewFileTime(base.Add(time.Second))

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))
}

func TestSimulatedClockAdvance(t *testing.T) {
	t.Parallel()

	start := time.Date(2012, 8, 15, 22, 56, 0, 0, time.UTC)
	c := clock.NewSimulatedClock(start)

	assert.True(t, c.Now().Equal(start))

	c.AdvanceTime(time.Hour)
	assert.True(t, c.Now().Equal(start.Add(time.Hour)))

	c.SetTime(start)
	assert.True(t, c.Now().Equal(start))
}

func TestSimulatedClockAfterFiresOnAdvance(t *testing.T) {
	t.Parallel()

	start := time.Date(2012, 8, 15, 22, 56, 0, 0, time.UTC)
	c := clock.NewSimulatedClock(start)

	ch := c.After(time.Minute)
	select {
	case <-ch:
		t.Fatal("After fired before the duration elapsed")
	default:
	}

	c.AdvanceTime(time.Minute)
	select {
	case got := <-ch:
		assert.True(t, got.Equal(start.Add(time.Minute)))
	default:
		t.Fatal("After did not fire once the duration elapsed")
	}
}

var _ clock.Clock = clock.RealClock{}
