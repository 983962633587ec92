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

// rb-scan reads one partitioned text data split and prints its rows with
// the table schema applied: partition key columns come from the directory
// name, regular columns from the file body.
//
// Usage:
//
//	rb-scan -file ds=2024-01-02/country=US/data.csv \
//	    -schema "id:BIGINT,name:VARCHAR(20),score:DOUBLE" \
//	    -partition-schema "ds:DATE,country:VARCHAR(2)" \
//	    -partition "ds=2024-01-02/country=US"
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/config"
	"github.com/rowbridge/rowbridge/pkg/connector"
	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/logutil"
	"github.com/rowbridge/rowbridge/pkg/textscan"
)

var (
	configFile      = flag.String("config", "", "toml configuration file")
	dataFile        = flag.String("file", "", "data file to scan; .gz, .bz2 and .lz4 are decompressed")
	schemaFlag      = flag.String("schema", "", "physical columns of the file, e.g. \"id:BIGINT,name:VARCHAR(20)\"")
	partSchemaFlag  = flag.String("partition-schema", "", "partition key columns, e.g. \"ds:DATE,country:VARCHAR(2)\"")
	partitionFlag   = flag.String("partition", "", "partition path the split belongs to, e.g. \"ds=2024-01-02/country=US\"")
	emptySchemaFlag = flag.String("empty-schema", "", "columns absent from the file that read as null")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rb-scan:", err)
		os.Exit(1)
	}
}

func run() error {
	if *dataFile == "" || *schemaFlag == "" {
		return rberr.NewInvalidInput("both -file and -schema are required")
	}

	var cfg config.Configuration
	if err := config.LoadConfigurationFromFile(*configFile, &cfg); err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	fileColumns, err := parseSchema(*schemaFlag)
	if err != nil {
		return err
	}

	scanner, err := textscan.Open(context.Background(), *dataFile, textscan.Options{
		Columns:   fileColumns,
		NullValue: cfg.Scan.NullPartitionValue,
		BatchRows: int(cfg.Scan.BatchReadRows),
	})
	if err != nil {
		return err
	}
	defer scanner.Close()

	mappings, err := buildMappings(fileColumns)
	if err != nil {
		return err
	}

	cursor, err := connector.NewCursor(mappings, scanner, connector.DecodeOptions{
		NullValue: cfg.Scan.NullPartitionValue,
	})
	if err != nil {
		return err
	}
	defer cursor.Close()

	if err := printRows(cursor, len(mappings), cfg.Scan.NullPartitionValue); err != nil {
		return err
	}
	return cursor.Error()
}

// buildMappings lays out the output row: partition keys first, then the
// file columns in file order, then columns the file predates.
func buildMappings(fileColumns []textscan.Column) ([]connector.ColumnMapping, error) {
	var mappings []connector.ColumnMapping

	if *partSchemaFlag != "" {
		partColumns, err := parseSchema(*partSchemaFlag)
		if err != nil {
			return nil, err
		}
		kvs, err := connector.ParsePartitionPath(*partitionFlag)
		if err != nil {
			return nil, err
		}
		values := make(map[string]string, len(kvs))
		for _, kv := range kvs {
			values[kv.Name] = kv.Value
		}
		for _, col := range partColumns {
			raw, ok := values[col.Name]
			if !ok {
				return nil, rberr.NewInvalidInputf("partition key %s is not in the partition path", col.Name)
			}
			mappings = append(mappings, connector.PrefilledMapping(col.Name, col.Type, raw))
		}
	}

	for i, col := range fileColumns {
		mappings = append(mappings, connector.RegularMapping(col.Name, col.Type, i))
	}

	if *emptySchemaFlag != "" {
		emptyColumns, err := parseSchema(*emptySchemaFlag)
		if err != nil {
			return nil, err
		}
		for _, col := range emptyColumns {
			mappings = append(mappings, connector.EmptyMapping(col.Name, col.Type))
		}
	}
	return mappings, nil
}

func printRows(c *connector.Cursor, width int, nullValue string) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var rows int64
	for c.Next() {
		for f := 0; f < width; f++ {
			if f > 0 {
				out.WriteByte('\t')
			}
			out.WriteString(formatField(c, f, nullValue))
		}
		out.WriteByte('\n')
		rows++
	}
	logutil.Infof("scanned %d rows", rows)
	return nil
}

func formatField(c *connector.Cursor, f int, nullValue string) string {
	if c.IsNull(f) {
		return nullValue
	}
	typ := c.TypeOf(f)
	switch typ.Oid {
	case types.T_bool:
		return strconv.FormatBool(c.GetBool(f))
	case types.T_int8, types.T_int16, types.T_int32, types.T_int64:
		return strconv.FormatInt(c.GetInt64(f), 10)
	case types.T_float32, types.T_float64:
		return strconv.FormatFloat(c.GetFloat64(f), 'g', -1, 64)
	case types.T_char, types.T_varchar:
		return string(c.GetBytes(f))
	case types.T_date:
		return types.Date(c.GetInt64(f)).String()
	case types.T_datetime:
		return types.Datetime(c.GetInt64(f)).String()
	case types.T_timestamp:
		return types.Timestamp(c.GetInt64(f)).String()
	case types.T_decimal64:
		return types.Decimal64(c.GetInt64(f)).Format(typ.Scale)
	case types.T_decimal128:
		d, err := types.Decimal128FromBigEndianBytes(c.GetBytes(f))
		if err != nil {
			return fmt.Sprintf("bad decimal: %v", err)
		}
		return d.Format(typ.Scale)
	}
	return fmt.Sprintf("%v", c.GetObject(f))
}
