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

package types

import (
	"fmt"
)

// T is the logical type tag.  The enumeration is closed: every member has
// exactly one display name here and one decode rule in the partition value
// decoder; a tag outside this set fails fast at cursor construction.
type T uint8

const (
	// T_any is the zero tag and is deliberately not decodable.
	T_any T = 0

	T_bool T = 10

	T_int8  T = 20
	T_int16 T = 21
	T_int32 T = 22
	T_int64 T = 23

	T_float32 T = 30
	T_float64 T = 31

	T_date      T = 50
	T_datetime  T = 51
	T_timestamp T = 52

	T_char    T = 60
	T_varchar T = 61

	T_decimal64  T = 70
	T_decimal128 T = 71
)

// Type is the catalog-level type descriptor of an output column.  Width
// holds the declared character length of char/varchar and the precision of
// decimals; Scale is meaningful for decimals only.
type Type struct {
	Oid   T
	Width int32
	Scale int32
}

func New(oid T, width, scale int32) Type {
	return Type{Oid: oid, Width: width, Scale: scale}
}

// ToType returns the descriptor with zero width and scale.  Parameterized
// types (char, varchar, decimal) should be built with New instead.
func (t T) ToType() Type {
	return Type{Oid: t}
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOLEAN"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_date:
		return "DATE"
	case T_datetime:
		return "DATETIME"
	case T_timestamp:
		return "TIMESTAMP"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	case T_decimal64:
		return "DECIMAL64"
	case T_decimal128:
		return "DECIMAL128"
	}
	return fmt.Sprintf("unexpected_type_tag(%d)", t)
}

// String renders the display name used in diagnostics, e.g. DECIMAL(10,2)
// or CHAR(5).
func (t Type) String() string {
	switch t.Oid {
	case T_char, T_varchar:
		if t.Width > 0 {
			return fmt.Sprintf("%s(%d)", t.Oid.String(), t.Width)
		}
		return t.Oid.String()
	case T_decimal64, T_decimal128:
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Width, t.Scale)
	}
	return t.Oid.String()
}

func (t Type) IsBoolean() bool {
	return t.Oid == T_bool
}

func (t Type) IsInt() bool {
	switch t.Oid {
	case T_int8, T_int16, T_int32, T_int64:
		return true
	}
	return false
}

func (t Type) IsFloat() bool {
	return t.Oid == T_float32 || t.Oid == T_float64
}

func (t Type) IsString() bool {
	return t.Oid == T_char || t.Oid == T_varchar
}

func (t Type) IsDecimal() bool {
	return t.Oid == T_decimal64 || t.Oid == T_decimal128
}

func (t Type) IsDateRelated() bool {
	switch t.Oid {
	case T_date, T_datetime, T_timestamp:
		return true
	}
	return false
}
