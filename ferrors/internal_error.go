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

package ferrors

import "fmt"

// Internal is the Kind used for programming errors: violated invariants,
// out-of-bounds indices, nil where non-nil was required. These never reach
// a caller as a returned error; PanicInternal always panics.
const Internal Kind = -1

// PanicInternal fails fast on a violated invariant. It never returns.
func PanicInternal(format string, args ...any) {
	panic(&Error{Kind: Internal, Op: "invariant", Msg: fmt.Sprintf(format, args...)})
}
