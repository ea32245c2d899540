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

package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvfs-go/memvfs/ferrors"
	"github.com/memvfs-go/memvfs/options"
)

func TestForInputStreamRejectsWrite(t *testing.T) {
	_, err := options.ForInputStream([]options.OpenOption{options.Write})
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.UnsupportedOperation))
	assert.Contains(t, err.Error(), "WRITE")
}

func TestForInputStreamRejectsAppend(t *testing.T) {
	_, err := options.ForInputStream([]options.OpenOption{options.Append})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPEND")
}

func TestForInputStreamKeepsKnownOptions(t *testing.T) {
	got, err := options.ForInputStream([]options.OpenOption{options.Read, options.Read, options.Sparse})
	require.NoError(t, err)
	assert.Equal(t, []options.OpenOption{options.Read, options.Sparse}, got)
}

func TestForChannelRejectsReadPlusAppend(t *testing.T) {
	_, err := options.ForChannel([]options.OpenOption{options.Read, options.Append})
	require.Error(t, err)
	assert.Equal(t, "'READ' + 'APPEND' not allowed", err.(*ferrors.Error).Msg)
}

func TestForChannelDefaultsToReadOnly(t *testing.T) {
	got, err := options.ForChannel(nil)
	require.NoError(t, err)
	assert.Equal(t, []options.OpenOption{options.Read}, got)
}

func TestForChannelCollapsesDuplicates(t *testing.T) {
	got, err := options.ForChannel([]options.OpenOption{options.Write, options.Write, options.Create})
	require.NoError(t, err)
	assert.Equal(t, []options.OpenOption{options.Write, options.Create}, got)
}
