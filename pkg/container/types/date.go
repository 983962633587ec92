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

// Date holds the number of days since the Unix epoch (1970-01-01).  Days
// before the epoch are negative.
type Date int32

const (
	MinDateYear = 1
	MaxDateYear = 9999

	MinMonthInYear = 1
	MaxMonthInYear = 12

	// epochDays is the count of days from 0000-03-01 (the era origin of the
	// civil-calendar conversion below) to 1970-01-01.
	epochDays = 719468
	eraDays   = 146097
	eraYears  = 400
)

var leapYearMonthDays = [12]uint8{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
var flatYearMonthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func validDate(year int32, month, day uint8) bool {
	if year < MinDateYear || year > MaxDateYear {
		return false
	}
	if month < MinMonthInYear || month > MaxMonthInYear {
		return false
	}
	if day == 0 {
		return false
	}
	if isLeap(year) {
		return day <= leapYearMonthDays[month-1]
	}
	return day <= flatYearMonthDays[month-1]
}

// ParseDate parses a "yyyy-mm-dd" string; month and day may be one or two
// digits.  Anything else, including out-of-calendar dates, is rejected.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return -1, rberr.NewInvalidInputf("invalid date value '%s'", s)
	}
	y, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid date value '%s'", s)
	}
	m, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid date value '%s'", s)
	}
	d, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return -1, rberr.NewInvalidInputf("invalid date value '%s'", s)
	}
	if !validDate(int32(y), uint8(m), uint8(d)) {
		return -1, rberr.NewInvalidInputf("invalid date value '%s'", s)
	}
	return FromCalendar(int32(y), uint8(m), uint8(d)), nil
}

// FromCalendar converts a civil date to days since the Unix epoch.  The
// conversion shifts the year to start in March so that the leap day falls
// at the end of the internal year.
func FromCalendar(year int32, month, day uint8) Date {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, eraYears)
	yoe := y - era*eraYears
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return Date(era*eraDays + doe - epochDays)
}

// Calendar is the inverse of FromCalendar.
func (d Date) Calendar() (year int32, month, day uint8) {
	z := int64(d) + epochDays
	era := floorDiv(z, eraDays)
	doe := z - era*eraDays
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*eraYears
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = uint8(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = uint8(mp + 3)
	} else {
		month = uint8(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return int32(y), month, day
}

func (d Date) Year() int32 {
	y, _, _ := d.Calendar()
	return y
}

func (d Date) Month() uint8 {
	_, m, _ := d.Calendar()
	return m
}

func (d Date) Day() uint8 {
	_, _, day := d.Calendar()
	return day
}

func (d Date) String() string {
	y, m, day := d.Calendar()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}

// ToDatetime places the date at midnight.
func (d Date) ToDatetime() Datetime {
	return Datetime(int64(d) * msecsPerDay)
}
