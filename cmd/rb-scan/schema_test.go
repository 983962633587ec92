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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/textscan"
)

func TestParseSchema(t *testing.T) {
	cols, err := parseSchema("id:BIGINT, name:VARCHAR(20), price:DECIMAL(10,2)")
	require.NoError(t, err)
	require.Equal(t, []textscan.Column{
		{Name: "id", Type: types.T_int64.ToType()},
		{Name: "name", Type: types.New(types.T_varchar, 20, 0)},
		{Name: "price", Type: types.New(types.T_decimal64, 10, 2)},
	}, cols)
}

func TestParseSchemaInvalid(t *testing.T) {
	for _, s := range []string{"", "noname", ":BIGINT", "id:NOPE", "id:DECIMAL(10"} {
		_, err := parseSchema(s)
		require.Error(t, err, s)
	}
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want types.Type
	}{
		{"BOOLEAN", types.T_bool.ToType()},
		{"tinyint", types.T_int8.ToType()},
		{"SMALLINT", types.T_int16.ToType()},
		{"INTEGER", types.T_int32.ToType()},
		{"BIGINT", types.T_int64.ToType()},
		{"REAL", types.T_float32.ToType()},
		{"DOUBLE", types.T_float64.ToType()},
		{"DATE", types.T_date.ToType()},
		{"DATETIME", types.T_datetime.ToType()},
		{"TIMESTAMP", types.T_timestamp.ToType()},
		{"CHAR(5)", types.New(types.T_char, 5, 0)},
		{"VARCHAR(20)", types.New(types.T_varchar, 20, 0)},
		{"DECIMAL(18,4)", types.New(types.T_decimal64, 18, 4)},
		{"DECIMAL(19,4)", types.New(types.T_decimal128, 19, 4)},
		{"DECIMAL(38,0)", types.New(types.T_decimal128, 38, 0)},
	}
	for _, tt := range tests {
		got, err := parseTypeName(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseTypeName("DECIMAL(39,0)")
	require.Error(t, err)
	_, err = parseTypeName("DECIMAL")
	require.Error(t, err)
	_, err = parseTypeName("BLOB")
	require.Error(t, err)
}
