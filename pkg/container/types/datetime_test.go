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

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
)

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		input string
		scale int32
		want  Datetime
	}{
		{"1970-01-01 00:00:00", 0, 0},
		{"1970-01-01 00:00:01", 0, 1000},
		{"2024-01-02 03:04:05", 0, FromClock(2024, 1, 2, 3, 4, 5, 0, 0)},
		{"2024-01-02 03:04:05.123", 3, FromClock(2024, 1, 2, 3, 4, 5, 123, 0)},
		{"2024-01-02 3:4:5.1", 3, FromClock(2024, 1, 2, 3, 4, 5, 100, 0)},
		{"1969-12-31 23:59:59", 0, -1000},
		// a bare date parses to midnight
		{"2024-01-02", 3, FromCalendar(2024, 1, 2).ToDatetime()},
	}
	for _, tt := range tests {
		got, err := ParseDatetime(tt.input, tt.scale)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseDatetimeRounding(t *testing.T) {
	// digits beyond the scale round half away from zero
	got, err := ParseDatetime("1999-09-09 11:11:11.1234", 3)
	require.NoError(t, err)
	require.Equal(t, FromClock(1999, 9, 9, 11, 11, 11, 123, 0), got)

	got, err = ParseDatetime("1999-09-09 11:11:11.1235", 3)
	require.NoError(t, err)
	require.Equal(t, FromClock(1999, 9, 9, 11, 11, 11, 124, 0), got)

	// rounding may carry into the seconds column
	got, err = ParseDatetime("1999-09-09 11:11:11.9995", 3)
	require.NoError(t, err)
	require.Equal(t, FromClock(1999, 9, 9, 11, 11, 12, 0, 0), got)

	// with scale 0 the whole fraction rounds
	got, err = ParseDatetime("1999-09-09 11:11:11.5", 0)
	require.NoError(t, err)
	require.Equal(t, FromClock(1999, 9, 9, 11, 11, 12, 0, 0), got)
}

func TestParseDatetimeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"2024-01-02 25:00:00",
		"2024-01-02 00:61:00",
		"2024-01-02 00:00:61",
		"2024-01-02 00:00",
		"2024-01-02 00:00:00 extra",
		"2024-02-30 00:00:00",
		"2024-01-02 00:00:0x",
		"2024-01-02 00:00:00.12x",
	}
	for _, input := range inputs {
		_, err := ParseDatetime(input, 3)
		require.Error(t, err, input)
		require.True(t, rberr.IsErrCode(err, rberr.ErrInvalidInput), input)
	}
}

func TestDatetimeClock(t *testing.T) {
	dt := FromClock(2024, 1, 2, 3, 4, 5, 123, 0)
	hour, min, sec := dt.Clock()
	require.Equal(t, int8(3), hour)
	require.Equal(t, int8(4), min)
	require.Equal(t, int8(5), sec)
	require.Equal(t, int64(123), dt.MilliSec())
	require.Equal(t, FromCalendar(2024, 1, 2), dt.ToDate())
}

func TestDatetimeClockBeforeEpoch(t *testing.T) {
	dt, err := ParseDatetime("1969-12-31 23:59:59.500", 3)
	require.NoError(t, err)
	hour, min, sec := dt.Clock()
	require.Equal(t, int8(23), hour)
	require.Equal(t, int8(59), min)
	require.Equal(t, int8(59), sec)
	require.Equal(t, int64(500), dt.MilliSec())
	require.Equal(t, FromCalendar(1969, 12, 31), dt.ToDate())
}

func TestDatetimeString(t *testing.T) {
	dt := FromClock(2024, 1, 2, 3, 4, 5, 120, 0)
	require.Equal(t, "2024-01-02 03:04:05", dt.String())
	require.Equal(t, "2024-01-02 03:04:05.12", dt.String2(2))
	require.Equal(t, "2024-01-02 03:04:05.120", dt.String2(3))
}
