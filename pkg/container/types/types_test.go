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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	require.Equal(t, "BIGINT", T_int64.ToType().String())
	require.Equal(t, "BOOLEAN", T_bool.ToType().String())
	require.Equal(t, "TINYINT", T_int8.ToType().String())
	require.Equal(t, "SMALLINT", T_int16.ToType().String())
	require.Equal(t, "INT", T_int32.ToType().String())
	require.Equal(t, "FLOAT", T_float32.ToType().String())
	require.Equal(t, "DOUBLE", T_float64.ToType().String())
	require.Equal(t, "DATE", T_date.ToType().String())
	require.Equal(t, "DATETIME", T_datetime.ToType().String())
	require.Equal(t, "TIMESTAMP", T_timestamp.ToType().String())

	require.Equal(t, "DECIMAL(10,2)", New(T_decimal64, 10, 2).String())
	require.Equal(t, "DECIMAL(38,10)", New(T_decimal128, 38, 10).String())
	require.Equal(t, "CHAR(5)", New(T_char, 5, 0).String())
	require.Equal(t, "VARCHAR(64)", New(T_varchar, 64, 0).String())
	require.Equal(t, "VARCHAR", T_varchar.ToType().String())
}

func TestTypePredicates(t *testing.T) {
	require.True(t, T_bool.ToType().IsBoolean())
	require.True(t, T_int16.ToType().IsInt())
	require.False(t, T_float32.ToType().IsInt())
	require.True(t, T_float32.ToType().IsFloat())
	require.True(t, New(T_char, 3, 0).IsString())
	require.True(t, New(T_varchar, 3, 0).IsString())
	require.True(t, New(T_decimal64, 10, 2).IsDecimal())
	require.True(t, New(T_decimal128, 20, 2).IsDecimal())
	require.True(t, T_date.ToType().IsDateRelated())
	require.True(t, T_timestamp.ToType().IsDateRelated())
	require.False(t, T_varchar.ToType().IsDateRelated())
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, int64(-1), floorDiv(int64(-1), int64(86400)))
	require.Equal(t, int64(0), floorDiv(int64(1), int64(86400)))
	require.Equal(t, int64(-1), floorDiv(int64(-86400), int64(86400)))
	require.Equal(t, int64(86399), floorMod(int64(-1), int64(86400)))
}
