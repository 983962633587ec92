// Copyright 2025 RowBridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package connector

// Scalar is a decoded value in one of the cursor's storage encodings: the
// boolean slot, the 64-bit integer slot (all integral and date/time-like
// types), the 64-bit float slot, the byte slot (character data and long
// decimals), or the opaque slot.  One tagged struct per column replaces a
// set of parallel per-kind arrays; a constant store is a plain []Scalar.
type Scalar struct {
	Null  bool
	B     bool
	I64   int64
	F64   float64
	Bytes []byte
	Obj   any
}

// NullScalar is the value of every structurally absent column.
func NullScalar() Scalar {
	return Scalar{Null: true}
}
