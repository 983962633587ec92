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
	"strconv"
	"strings"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
)

// Datetime is a zone-less local date-time, stored as milliseconds since the
// Unix epoch.  Values before the epoch are negative.
type Datetime int64

const (
	secsPerMinute = 60
	secsPerHour   = 60 * secsPerMinute
	secsPerDay    = 24 * secsPerHour

	msecsPerSecond = 1000
	msecsPerDay    = secsPerDay * msecsPerSecond

	// DatetimeScale is the fractional-second precision of the storage
	// encoding.  Parse input may carry more digits; they are rounded.
	DatetimeScale = 3

	minHourInDay, maxHourInDay           = 0, 23
	minMinuteInHour, maxMinuteInHour     = 0, 59
	minSecondInMinute, maxSecondInMinute = 0, 59
)

// msecScaleTable holds the millisecond multiplier for each scale in
// [0, DatetimeScale].
var msecScaleTable = [...]uint32{1000, 100, 10, 1}

func validTimeInDay(h, m, s uint8) bool {
	if h < minHourInDay || h > maxHourInDay {
		return false
	}
	if m < minMinuteInHour || m > maxMinuteInHour {
		return false
	}
	if s < minSecondInMinute || s > maxSecondInMinute {
		return false
	}
	return true
}

// getMsec parses a fractional-second string under the given scale.  Digits
// beyond the scale round half away from zero; a full carry propagates into
// the seconds column through the second return value.
func getMsec(msecStr string, scale int32) (uint32, uint32, error) {
	if scale > DatetimeScale {
		scale = DatetimeScale
	}
	carryMsec := uint32(0)
	if len(msecStr) > int(scale) {
		switch {
		case msecStr[scale] >= '5' && msecStr[scale] <= '9':
			carryMsec = 1
		case msecStr[scale] >= '0' && msecStr[scale] <= '4':
			carryMsec = 0
		default:
			return 0, 0, rberr.NewInvalidInputf("invalid fractional seconds '%s'", msecStr)
		}
		for _, c := range msecStr[scale:] {
			if c < '0' || c > '9' {
				return 0, 0, rberr.NewInvalidInputf("invalid fractional seconds '%s'", msecStr)
			}
		}
		msecStr = msecStr[:scale]
	} else if len(msecStr) < int(scale) {
		scale = int32(len(msecStr))
	}
	if len(msecStr) == 0 {
		return 0, carryMsec, nil
	}
	m, err := strconv.ParseUint(msecStr, 10, 32)
	if err != nil {
		return 0, 0, rberr.NewInvalidInputf("invalid fractional seconds '%s'", msecStr)
	}
	msecs := (uint32(m) + carryMsec) * msecScaleTable[scale]
	carry := uint32(0)
	if msecs == msecsPerSecond {
		carry = 1
		msecs = 0
	}
	return msecs, carry, nil
}

// ParseDatetime parses a local date-time string.  Supported forms:
//  1. any valid date value, placed at midnight
//  2. yyyy-mm-dd hh:mm:ss(.frac)
//
// Fractional digits beyond the scale are rounded away from zero, e.g. with
// scale 3 the input "11:11:11.1235" parses as "11:11:11.124".
func ParseDatetime(s string, scale int32) (Datetime, error) {
	s = strings.TrimSpace(s)
	strArr := strings.Split(s, " ")
	if len(strArr) == 1 {
		d, err := ParseDate(s)
		if err != nil {
			return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
		}
		return d.ToDatetime(), nil
	}
	if len(strArr) != 2 {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}

	front := strings.Split(strArr[0], "-")
	if len(front) != 3 {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	num, err := strconv.ParseInt(front[0], 10, 32)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	year := int32(num)
	unum, err := strconv.ParseUint(front[1], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	month := uint8(unum)
	unum, err = strconv.ParseUint(front[2], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	day := uint8(unum)
	if !validDate(year, month, day) {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}

	middleAndBack := strings.Split(strArr[1], ".")
	if len(middleAndBack) > 2 {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	middle := strings.Split(middleAndBack[0], ":")
	if len(middle) != 3 {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	unum, err = strconv.ParseUint(middle[0], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	hour := uint8(unum)
	unum, err = strconv.ParseUint(middle[1], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	minute := uint8(unum)
	unum, err = strconv.ParseUint(middle[2], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}
	second := uint8(unum)
	if !validTimeInDay(hour, minute, second) {
		return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
	}

	var msec, carry uint32
	if len(middleAndBack) == 2 {
		msec, carry, err = getMsec(middleAndBack[1], scale)
		if err != nil {
			return -1, rberr.NewInvalidInputf("invalid datetime value '%s'", s)
		}
	}
	return FromClock(year, month, day, hour, minute, second, msec, carry), nil
}

// FromClock builds a Datetime from calendar and clock fields.  carrySec
// absorbs a rounded-up fractional second; it may roll the value across a
// minute, hour or day boundary.
func FromClock(year int32, month, day, hour, min, sec uint8, msec uint32, carrySec uint32) Datetime {
	days := FromCalendar(year, month, day)
	secs := int64(days)*secsPerDay +
		int64(hour)*secsPerHour +
		int64(min)*secsPerMinute +
		int64(sec) + int64(carrySec)
	return Datetime(secs*msecsPerSecond + int64(msec))
}

func (dt Datetime) ToDate() Date {
	return Date(floorDiv(int64(dt), int64(msecsPerDay)))
}

// Clock returns the time-of-day components.
func (dt Datetime) Clock() (hour, min, sec int8) {
	t := floorMod(int64(dt), int64(msecsPerDay)) / msecsPerSecond
	hour = int8(t / secsPerHour)
	min = int8(t % secsPerHour / secsPerMinute)
	sec = int8(t % secsPerMinute)
	return
}

// MilliSec returns the fractional-second part in milliseconds.
func (dt Datetime) MilliSec() int64 {
	return floorMod(int64(dt), int64(msecsPerSecond))
}

func (dt Datetime) String() string {
	y, m, d := dt.ToDate().Calendar()
	hour, minute, sec := dt.Clock()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, m, d, hour, minute, sec)
}

// String2 renders the value with the given fractional-second scale.
func (dt Datetime) String2(scale int32) string {
	if scale <= 0 {
		return dt.String()
	}
	if scale > DatetimeScale {
		scale = DatetimeScale
	}
	msecStr := fmt.Sprintf("%03d", dt.MilliSec())
	return dt.String() + "." + msecStr[:scale]
}
