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

// Timestamp is the zone-aware date-time encoding.  A single int64 packs the
// local millisecond instant in the high 52 bits and the zone key in the low
// 12 bits, so a whole column of timestamps stays a flat int64 vector.

package types

import (
	"fmt"
)

type Timestamp int64

const zoneKeyBits = 12
const zoneKeyMask = 1<<zoneKeyBits - 1

// PackTimestamp combines a millisecond instant with a zone key.
func PackTimestamp(msec int64, zone ZoneKey) Timestamp {
	return Timestamp(msec<<zoneKeyBits | int64(zone&zoneKeyMask))
}

// MilliSeconds returns the packed instant.
func (ts Timestamp) MilliSeconds() int64 {
	return int64(ts) >> zoneKeyBits
}

// Zone returns the packed zone key.
func (ts Timestamp) Zone() ZoneKey {
	return ZoneKey(int64(ts) & zoneKeyMask)
}

func (ts Timestamp) ToDatetime() Datetime {
	return Datetime(ts.MilliSeconds())
}

// ParseTimestamp parses a local date-time string and packs it with zone.
// ZoneUnset selects the process-wide default zone.
func ParseTimestamp(s string, scale int32, zone ZoneKey) (Timestamp, error) {
	dt, err := ParseDatetime(s, scale)
	if err != nil {
		return -1, err
	}
	if zone == ZoneUnset {
		zone = DefaultZone()
	}
	return PackTimestamp(int64(dt), zone), nil
}

func (ts Timestamp) String() string {
	name := ZoneName(ts.Zone())
	if name == "" {
		return ts.ToDatetime().String()
	}
	return fmt.Sprintf("%s %s", ts.ToDatetime().String(), name)
}
