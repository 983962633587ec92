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

// RowSource is the physical reader a cursor delegates Regular columns to.
// The protocol is pull-based and single-threaded: one caller advances with
// Next and reads fields to completion before advancing again.  Getters are
// valid only after a successful Next and before the following Next; they
// are indexed by physical column position in [0, ColumnCount()).
//
// A false Next with a nil Error means the source is exhausted.  Blocking
// and cancellation behavior of Next is entirely the source's contract.
type RowSource interface {
	Next() bool
	Error() error
	Close() error

	ColumnCount() int

	GetBool(i int) bool
	GetInt64(i int) int64
	GetFloat64(i int) float64
	GetBytes(i int) []byte
	GetObject(i int) any
	IsNull(i int) bool
}
