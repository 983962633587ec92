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

import (
	"fmt"

	"github.com/rowbridge/rowbridge/pkg/container/types"
)

// MappingKind classifies the provenance of one output column.
type MappingKind uint8

const (
	// Regular columns read per row from the physical row source.
	Regular MappingKind = iota
	// Prefilled columns hold one partition-derived constant for the whole
	// data split.
	Prefilled
	// Empty columns are structurally absent from the physical data and
	// always read as null.
	Empty
)

func (k MappingKind) String() string {
	switch k {
	case Regular:
		return "REGULAR"
	case Prefilled:
		return "PREFILLED"
	case Empty:
		return "EMPTY"
	}
	return fmt.Sprintf("unexpected_mapping_kind(%d)", uint8(k))
}

// ColumnMapping describes one output column of a row cursor.  The mapping
// table is computed by the planning layer before the cursor is built and is
// immutable afterwards; output position equals the index in the table.
type ColumnMapping struct {
	kind MappingKind
	name string
	typ  types.Type

	// sourceIndex is the position in the physical row source; Regular only.
	sourceIndex int
	// rawValue is the partition-key-encoded text; Prefilled only.
	rawValue string
}

// RegularMapping maps an output column onto physical column sourceIndex.
func RegularMapping(name string, typ types.Type, sourceIndex int) ColumnMapping {
	return ColumnMapping{kind: Regular, name: name, typ: typ, sourceIndex: sourceIndex}
}

// PrefilledMapping maps an output column onto a partition-derived constant.
func PrefilledMapping(name string, typ types.Type, rawValue string) ColumnMapping {
	return ColumnMapping{kind: Prefilled, name: name, typ: typ, rawValue: rawValue}
}

// EmptyMapping maps an output column that the physical data predates.
func EmptyMapping(name string, typ types.Type) ColumnMapping {
	return ColumnMapping{kind: Empty, name: name, typ: typ}
}

func (m ColumnMapping) Kind() MappingKind {
	return m.kind
}

// Name is the column's display name, used in diagnostics only.
func (m ColumnMapping) Name() string {
	return m.name
}

func (m ColumnMapping) Type() types.Type {
	return m.typ
}

func (m ColumnMapping) SourceIndex() int {
	return m.sourceIndex
}

func (m ColumnMapping) RawValue() string {
	return m.rawValue
}
