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
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
)

// Decimal64 is the unscaled value of a short decimal (precision <= 18).
type Decimal64 int64

// Decimal128 is the unscaled value of a long decimal (precision <= 38),
// stored as a 128-bit two's-complement integer.
type Decimal128 struct {
	B0_63   uint64
	B64_127 uint64
}

const (
	MaxDecimal64Width  = 18
	MaxDecimal128Width = 38
)

var pow10 = func() [39]*big.Int {
	var tab [39]*big.Int
	tab[0] = big.NewInt(1)
	ten := big.NewInt(10)
	for i := 1; i < len(tab); i++ {
		tab[i] = new(big.Int).Mul(tab[i-1], ten)
	}
	return tab
}()

var twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)

// parseDecimalDigits splits a plain decimal string into sign, integer and
// fraction digit runs.  Exponents are not accepted; partition values are
// always written in plain form.
func parseDecimalDigits(s string) (neg bool, intPart, fracPart string, err error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}
	intPart = s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	if len(intPart) == 0 && len(fracPart) == 0 {
		return false, "", "", rberr.NewInvalidInputf("invalid decimal value '%s'", s)
	}
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false, "", "", rberr.NewInvalidInputf("invalid decimal value '%s'", s)
			}
		}
	}
	return neg, intPart, fracPart, nil
}

// parseDecimalToBig produces the unscaled value at the requested scale.
// Fraction digits beyond the scale round half away from zero; the result
// must fit in width decimal digits.
func parseDecimalToBig(s string, width, scale int32) (*big.Int, error) {
	neg, intPart, fracPart, err := parseDecimalDigits(s)
	if err != nil {
		return nil, err
	}
	carry := int64(0)
	if int32(len(fracPart)) > scale {
		if fracPart[scale] >= '5' {
			carry = 1
		}
		fracPart = fracPart[:scale]
	}
	v, ok := new(big.Int).SetString("0"+intPart+fracPart, 10)
	if !ok {
		return nil, rberr.NewInvalidInputf("invalid decimal value '%s'", s)
	}
	if pad := scale - int32(len(fracPart)); pad > 0 {
		v.Mul(v, pow10[pad])
	}
	v.Add(v, big.NewInt(carry))
	if width < 1 || width > MaxDecimal128Width {
		return nil, rberr.NewInvalidArg("decimal width", width)
	}
	if v.CmpAbs(pow10[width]) >= 0 {
		return nil, rberr.NewOutOfRange(Type{Oid: T_decimal128, Width: width, Scale: scale}.String(), s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// ParseDecimal64 parses s into the unscaled short-decimal encoding, e.g.
// "123.45" with scale 2 parses to 12345.
func ParseDecimal64(s string, width, scale int32) (Decimal64, error) {
	if width > MaxDecimal64Width {
		width = MaxDecimal64Width
	}
	v, err := parseDecimalToBig(s, width, scale)
	if err != nil {
		return 0, err
	}
	return Decimal64(v.Int64()), nil
}

// ParseDecimal128 parses s into the unscaled long-decimal encoding.
func ParseDecimal128(s string, width, scale int32) (Decimal128, error) {
	if width > MaxDecimal128Width {
		width = MaxDecimal128Width
	}
	v, err := parseDecimalToBig(s, width, scale)
	if err != nil {
		return Decimal128{}, err
	}
	return decimal128FromBig(v), nil
}

func decimal128FromBig(v *big.Int) Decimal128 {
	t := new(big.Int).Set(v)
	if t.Sign() < 0 {
		t.Add(t, twoPow128)
	}
	var buf [16]byte
	t.FillBytes(buf[:])
	return Decimal128{
		B0_63:   binary.BigEndian.Uint64(buf[8:16]),
		B64_127: binary.BigEndian.Uint64(buf[0:8]),
	}
}

func (x Decimal128) toBig() *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], x.B64_127)
	binary.BigEndian.PutUint64(buf[8:16], x.B0_63)
	v := new(big.Int).SetBytes(buf[:])
	if x.B64_127>>63 == 1 {
		v.Sub(v, twoPow128)
	}
	return v
}

// BigEndianBytes returns the fixed 16-byte two's-complement encoding used
// for long-decimal scalars.
func (x Decimal128) BigEndianBytes() []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], x.B64_127)
	binary.BigEndian.PutUint64(buf[8:16], x.B0_63)
	return buf
}

// Decimal128FromBigEndianBytes is the inverse of BigEndianBytes.
func Decimal128FromBigEndianBytes(buf []byte) (Decimal128, error) {
	if len(buf) != 16 {
		return Decimal128{}, rberr.NewInvalidArg("long decimal encoding length", len(buf))
	}
	return Decimal128{
		B0_63:   binary.BigEndian.Uint64(buf[8:16]),
		B64_127: binary.BigEndian.Uint64(buf[0:8]),
	}, nil
}

func formatUnscaled(digits string, neg bool, scale int32) string {
	for int32(len(digits)) <= scale {
		digits = "0" + digits
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if scale > 0 {
		point := int32(len(digits)) - scale
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	} else {
		b.WriteString(digits)
	}
	return b.String()
}

// Format renders the decimal with the point placed per scale.
func (x Decimal64) Format(scale int32) string {
	v := int64(x)
	neg := v < 0
	if neg {
		v = -v
	}
	return formatUnscaled(big.NewInt(v).String(), neg, scale)
}

// Format renders the decimal with the point placed per scale.
func (x Decimal128) Format(scale int32) string {
	v := x.toBig()
	neg := v.Sign() < 0
	return formatUnscaled(new(big.Int).Abs(v).String(), neg, scale)
}

func CompareDecimal64(a, b Decimal64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func CompareDecimal128(a, b Decimal128) int {
	return a.toBig().Cmp(b.toBig())
}
