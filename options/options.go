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

// Package options parses and validates the OpenOption / CopyOption /
// LinkOption sets accepted by filesystem operations.
package options

import "github.com/memvfs-go/memvfs/ferrors"

// OpenOption selects how OpenFile/NewInputStream/NewOutputStream treat an
// existing or missing file.
type OpenOption int

const (
	Read OpenOption = iota
	Write
	Append
	Create
	CreateNew
	Truncate
	DeleteOnClose
	Sparse
	Sync
)

// CopyOption modifies Copy's behavior.
type CopyOption int

const (
	ReplaceExisting CopyOption = iota
	CopyAttributes
	AtomicMove
)

// LinkOption modifies path-resolution behavior (symlink following).
type LinkOption int

const (
	NoFollowLinks LinkOption = iota
)

func dedupeOpen(opts []OpenOption) []OpenOption {
	seen := make(map[OpenOption]bool, len(opts))
	out := make([]OpenOption, 0, len(opts))
	for _, o := range opts {
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

func hasOpen(opts []OpenOption, want OpenOption) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

// ForInputStream deduplicates opts and rejects Write and Append (an input
// stream is never writable); every other option is kept.
func ForInputStream(opts []OpenOption) ([]OpenOption, error) {
	deduped := dedupeOpen(opts)
	for _, o := range deduped {
		if o == Write {
			return nil, ferrors.New(ferrors.UnsupportedOperation, "getOptionsForInputStream", "", "'WRITE' not allowed")
		}
		if o == Append {
			return nil, ferrors.New(ferrors.UnsupportedOperation, "getOptionsForInputStream", "", "'APPEND' not allowed")
		}
	}
	return deduped, nil
}

// ForChannel validates and normalizes the options for a
// read/write-capable channel (OutputStream or a general byte channel),
// rejecting the READ + APPEND combination and defaulting to READ-only
// when none of READ/WRITE/APPEND is present.
func ForChannel(opts []OpenOption) ([]OpenOption, error) {
	deduped := dedupeOpen(opts)
	if hasOpen(deduped, Read) && hasOpen(deduped, Append) {
		return nil, ferrors.New(ferrors.UnsupportedOperation, "getOptionsForChannel", "", "'READ' + 'APPEND' not allowed")
	}
	if !hasOpen(deduped, Read) && !hasOpen(deduped, Write) && !hasOpen(deduped, Append) {
		deduped = append(deduped, Read)
	}
	return deduped, nil
}
