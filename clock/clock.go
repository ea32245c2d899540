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

// Package clock is the FileTimeSource capability used by every timestamp in
// the filesystem: creationTime, lastModifiedTime and lastAccessTime all
// funnel through a Clock so that tests can inject a fixed or manually
// advanced instant instead of depending on wall-clock time.
package clock

import "time"

// Clock knows the current time. Implementations are RealClock (usable as
// its zero value) and SimulatedClock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// FileTime is the 96-bit (seconds, nanos) instant spec'd for
// creationTime/lastModifiedTime/lastAccessTime. It stores the seconds and
// nanos of a time.Time so that File records carry explicit, comparable
// values rather than depending on monotonic-clock reading internals.
type FileTime struct {
	seconds int64
	nanos   int32
}

// NewFileTime truncates t to whole nanoseconds and drops its monotonic
// reading, matching the wire/stored representation of a (seconds, nanos)
// pair.
func NewFileTime(t time.Time) FileTime {
	return FileTime{seconds: t.Unix(), nanos: int32(t.Nanosecond())}
}

// Time converts back to a time.Time in UTC.
func (ft FileTime) Time() time.Time {
	return time.Unix(ft.seconds, int64(ft.nanos)).UTC()
}

// Before reports whether ft is strictly earlier than other.
func (ft FileTime) Before(other FileTime) bool {
	if ft.seconds != other.seconds {
		return ft.seconds < other.seconds
	}
	return ft.nanos < other.nanos
}

// Equal reports whether ft and other represent the same instant.
func (ft FileTime) Equal(other FileTime) bool {
	return ft.seconds == other.seconds && ft.nanos == other.nanos
}

func (ft FileTime) String() string {
	return ft.Time().Format(time.RFC3339Nano)
}
