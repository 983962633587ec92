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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowbridge/rowbridge/pkg/container/types"
)

func TestMappingKindString(t *testing.T) {
	require.Equal(t, "REGULAR", Regular.String())
	require.Equal(t, "PREFILLED", Prefilled.String())
	require.Equal(t, "EMPTY", Empty.String())
	require.Equal(t, "unexpected_mapping_kind(9)", MappingKind(9).String())
}

func TestMappingConstructors(t *testing.T) {
	m := RegularMapping("v", types.T_int64.ToType(), 3)
	require.Equal(t, Regular, m.Kind())
	require.Equal(t, "v", m.Name())
	require.Equal(t, types.T_int64.ToType(), m.Type())
	require.Equal(t, 3, m.SourceIndex())

	m = PrefilledMapping("ds", types.T_date.ToType(), "2024-01-02")
	require.Equal(t, Prefilled, m.Kind())
	require.Equal(t, "2024-01-02", m.RawValue())

	m = EmptyMapping("gone", types.T_varchar.ToType())
	require.Equal(t, Empty, m.Kind())
}
