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
	"sync"

	"go.opentelemetry.io/otel/attribute"
)

const opKey = "fs_op"

var opAttributes sync.Map

// opAttribute caches the attribute.KeyValue for each operation name so
// repeated counter increments don't re-allocate one per call.
func opAttribute(op string) attribute.KeyValue {
	if v, ok := opAttributes.Load(op); ok {
		return v.(attribute.KeyValue)
	}
	kv := attribute.String(opKey, op)
	actual, _ := opAttributes.LoadOrStore(op, kv)
	return actual.(attribute.KeyValue)
}
