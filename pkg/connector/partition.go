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
	"bytes"
	"strconv"
	"strings"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/container/types"
)

// DefaultNullValue is the conventional null marker of partition-key-encoded
// values.
const DefaultNullValue = `\N`

// DecodeOptions adjusts partition value decoding.  The zero value uses the
// default null marker and the process-wide default time zone.
type DecodeOptions struct {
	// NullValue overrides the raw string that decodes to null.
	NullValue string
	// Zone is packed into timestamp-with-zone values; ZoneUnset selects
	// the process-wide default.
	Zone types.ZoneKey
}

func (o DecodeOptions) nullValue() string {
	if o.NullValue == "" {
		return DefaultNullValue
	}
	return o.NullValue
}

// DecodePartitionValue turns the raw partition-key text of one prefilled
// column into its typed scalar encoding.  It is called once per prefilled
// column when a cursor is built, never per row.
//
// The decode table is closed over the logical type enumeration: every type
// has exactly one rule here, and a type without a rule fails construction
// with an unsupported-type error rather than surfacing at row time.
func DecodePartitionValue(raw string, typ types.Type, name string, opts DecodeOptions) (Scalar, error) {
	if raw == opts.nullValue() {
		return NullScalar(), nil
	}
	switch typ.Oid {
	case types.T_bool:
		return booleanPartitionValue(raw, typ, name)
	case types.T_int8:
		return integerPartitionValue(raw, typ, name, 8)
	case types.T_int16:
		return integerPartitionValue(raw, typ, name, 16)
	case types.T_int32:
		return integerPartitionValue(raw, typ, name, 32)
	case types.T_int64:
		return integerPartitionValue(raw, typ, name, 64)
	case types.T_float32:
		// widened to the float64 slot; the mapping keeps the FLOAT tag so
		// readers can narrow on the way out
		return floatPartitionValue(raw, typ, name, 32)
	case types.T_float64:
		return floatPartitionValue(raw, typ, name, 64)
	case types.T_char:
		return charPartitionValue(raw, typ, name)
	case types.T_varchar:
		return varcharPartitionValue(raw, typ, name)
	case types.T_date:
		return datePartitionValue(raw, typ, name)
	case types.T_datetime:
		return datetimePartitionValue(raw, typ, name)
	case types.T_timestamp:
		return timestampPartitionValue(raw, typ, name, opts.Zone)
	case types.T_decimal64:
		return shortDecimalPartitionValue(raw, typ, name)
	case types.T_decimal128:
		return longDecimalPartitionValue(raw, typ, name)
	}
	return Scalar{}, rberr.NewUnsupportedType(typ.String(), name)
}

func booleanPartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	switch strings.ToLower(raw) {
	case "true":
		return Scalar{B: true}, nil
	case "false":
		return Scalar{B: false}, nil
	}
	return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
}

func integerPartitionValue(raw string, typ types.Type, name string, bitSize int) (Scalar, error) {
	v, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{I64: v}, nil
}

func floatPartitionValue(raw string, typ types.Type, name string, bitSize int) (Scalar, error) {
	v, err := strconv.ParseFloat(raw, bitSize)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{F64: v}, nil
}

// charPartitionValue pads the UTF-8 bytes with trailing spaces to the
// declared width.  A value longer than the width is malformed.
func charPartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	b := []byte(raw)
	if typ.Width > 0 {
		if len(b) > int(typ.Width) {
			return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
		}
		if len(b) < int(typ.Width) {
			padded := make([]byte, typ.Width)
			copy(padded, b)
			for i := len(b); i < int(typ.Width); i++ {
				padded[i] = ' '
			}
			b = padded
		}
	}
	return Scalar{Bytes: b}, nil
}

func varcharPartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	b := []byte(raw)
	if typ.Width > 0 && len(b) > int(typ.Width) {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{Bytes: b}, nil
}

func datePartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	d, err := types.ParseDate(raw)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{I64: int64(d)}, nil
}

func datetimePartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	dt, err := types.ParseDatetime(raw, types.DatetimeScale)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{I64: int64(dt)}, nil
}

func timestampPartitionValue(raw string, typ types.Type, name string, zone types.ZoneKey) (Scalar, error) {
	ts, err := types.ParseTimestamp(raw, types.DatetimeScale, zone)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{I64: int64(ts)}, nil
}

func shortDecimalPartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	d, err := types.ParseDecimal64(raw, typ.Width, typ.Scale)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{I64: int64(d)}, nil
}

func longDecimalPartitionValue(raw string, typ types.Type, name string) (Scalar, error) {
	d, err := types.ParseDecimal128(raw, typ.Width, typ.Scale)
	if err != nil {
		return Scalar{}, rberr.NewMalformedPartitionValue(raw, typ.String(), name)
	}
	return Scalar{Bytes: d.BigEndianBytes()}, nil
}

// PartitionKV is one name=value segment of a partition-encoded path.
type PartitionKV struct {
	Name  string
	Value string
}

// ParsePartitionPath splits a partition-encoded path such as
// "ds=2024-01-02/country=US" into its name/value pairs, decoding %XX
// escapes.  It resolves a single already-chosen path; enumerating or
// pruning partitions is the planning layer's job.
func ParsePartitionPath(path string) ([]PartitionKV, error) {
	var kvs []PartitionKV
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq <= 0 {
			return nil, rberr.NewInvalidInputf("partition path segment '%s' is not name=value", seg)
		}
		name, err := unescapePathName(seg[:eq])
		if err != nil {
			return nil, err
		}
		value, err := unescapePathName(seg[eq+1:])
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, PartitionKV{Name: name, Value: value})
	}
	return kvs, nil
}

func unescapePathName(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b bytes.Buffer
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", rberr.NewInvalidInputf("truncated escape in partition path segment '%s'", s)
		}
		v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", rberr.NewInvalidInputf("bad escape in partition path segment '%s'", s)
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return b.String(), nil
}
