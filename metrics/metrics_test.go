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

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllInstrumentsWithoutError(t *testing.T) {
	h, err := New()
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestHandleRecordsWithoutPanicking(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		h.BlockAllocated(ctx)
		h.BlockAllocated(ctx)
		h.BlockFreed(ctx)
		h.WatchOverflow(ctx, 3)
		h.OpsCount(ctx, "mkdir")
		h.OpsCount(ctx, "mkdir")
	})
}

func TestOpAttributeIsCachedPerName(t *testing.T) {
	a := opAttribute("rename")
	b := opAttribute("rename")
	assert.Equal(t, a, b)
	assert.Equal(t, opKey, string(a.Key))
	assert.Equal(t, "rename", a.Value.AsString())
}
