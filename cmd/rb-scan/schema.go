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
	"strconv"
	"strings"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/textscan"
)

// parseSchema parses a comma separated column list such as
// "id:BIGINT,name:VARCHAR(20),price:DECIMAL(10,2)".  Commas inside a type's
// parenthesis do not split columns.
func parseSchema(s string) ([]textscan.Column, error) {
	var cols []textscan.Column
	for _, item := range splitTopLevel(s) {
		name, typName, ok := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, rberr.NewInvalidInputf("schema entry '%s' is not name:type", item)
		}
		typ, err := parseTypeName(strings.TrimSpace(typName))
		if err != nil {
			return nil, err
		}
		cols = append(cols, textscan.Column{Name: name, Type: typ})
	}
	if len(cols) == 0 {
		return nil, rberr.NewInvalidInput("schema is empty")
	}
	return cols, nil
}

func splitTopLevel(s string) []string {
	var items []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(s[start:]) != "" {
		items = append(items, s[start:])
	}
	return items
}

// parseTypeName resolves a SQL type name, with optional width and scale, to
// its logical type.  DECIMAL picks the 64 or 128 bit representation from
// the declared width.
func parseTypeName(s string) (types.Type, error) {
	base := strings.ToUpper(s)
	var args []int32
	if open := strings.IndexByte(base, '('); open >= 0 {
		if !strings.HasSuffix(base, ")") {
			return types.Type{}, rberr.NewInvalidInputf("malformed type name '%s'", s)
		}
		for _, a := range strings.Split(base[open+1:len(base)-1], ",") {
			v, err := strconv.ParseInt(strings.TrimSpace(a), 10, 32)
			if err != nil {
				return types.Type{}, rberr.NewInvalidInputf("malformed type name '%s'", s)
			}
			args = append(args, int32(v))
		}
		base = base[:open]
	}
	width := func(i int) int32 {
		if i < len(args) {
			return args[i]
		}
		return 0
	}

	switch base {
	case "BOOLEAN", "BOOL":
		return types.T_bool.ToType(), nil
	case "TINYINT":
		return types.T_int8.ToType(), nil
	case "SMALLINT":
		return types.T_int16.ToType(), nil
	case "INT", "INTEGER":
		return types.T_int32.ToType(), nil
	case "BIGINT":
		return types.T_int64.ToType(), nil
	case "FLOAT", "REAL":
		return types.T_float32.ToType(), nil
	case "DOUBLE":
		return types.T_float64.ToType(), nil
	case "DATE":
		return types.T_date.ToType(), nil
	case "DATETIME":
		return types.T_datetime.ToType(), nil
	case "TIMESTAMP":
		return types.T_timestamp.ToType(), nil
	case "CHAR":
		return types.New(types.T_char, width(0), 0), nil
	case "VARCHAR":
		return types.New(types.T_varchar, width(0), 0), nil
	case "DECIMAL":
		if len(args) != 2 {
			return types.Type{}, rberr.NewInvalidInputf("DECIMAL needs (width,scale), got '%s'", s)
		}
		if args[0] <= types.MaxDecimal64Width {
			return types.New(types.T_decimal64, args[0], args[1]), nil
		}
		if args[0] <= types.MaxDecimal128Width {
			return types.New(types.T_decimal128, args[0], args[1]), nil
		}
		return types.Type{}, rberr.NewInvalidInputf("DECIMAL width %d exceeds %d", args[0], types.MaxDecimal128Width)
	}
	return types.Type{}, rberr.NewNotSupportedf("type name '%s'", s)
}
