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

package rberr

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err := NewMalformedPartitionValue("12a.45", "DECIMAL(10,2)", "price")
	require.Equal(t, ErrMalformedPartitionValue, err.ErrorCode())
	require.Equal(t, "invalid partition value '12a.45' for DECIMAL(10,2) column: price", err.Error())
}

func TestIsErrCode(t *testing.T) {
	err := NewUnsupportedType("JSON", "payload")
	require.True(t, IsErrCode(err, ErrUnsupportedType))
	require.False(t, IsErrCode(err, ErrMalformedPartitionValue))
	require.False(t, IsErrCode(io.EOF, ErrUnsupportedType))
	require.False(t, IsErrCode(nil, ErrUnsupportedType))
}

func TestIsErrCodeWrapped(t *testing.T) {
	err := fmt.Errorf("building cursor: %w", NewInvalidInput("bad mapping"))
	require.True(t, IsErrCode(err, ErrInvalidInput))
}

func TestEveryCodeHasFormat(t *testing.T) {
	codes := []uint16{
		ErrInternal, ErrNotSupported, ErrOutOfRange, ErrInvalidArg,
		ErrBadConfig, ErrInvalidInput, ErrInvalidTz,
		ErrUnsupportedType, ErrMalformedPartitionValue,
	}
	for _, code := range codes {
		_, ok := errorMsgRefer[code]
		require.True(t, ok, "code %d", code)
	}
}
