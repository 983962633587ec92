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
	"sync"

	"go.uber.org/zap"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/logutil"
)

// Cursor adapts a physical row source plus a column mapping table into one
// typed, random-access row view.  Regular fields forward to the source at
// their physical index; Prefilled and Empty fields read from the constant
// store populated at construction.  The cursor holds no per-row state of
// its own, so constant-column access stays O(1) and allocation-free.
//
// Field indexes outside [0, len(mappings)) are a programming error and
// panic; everything data-dependent fails at construction instead.
type Cursor struct {
	source   RowSource
	mappings []ColumnMapping
	consts   []Scalar

	closeOnce sync.Once
	closeErr  error
}

// NewCursor builds a cursor over source for the given mapping table.  All
// prefilled values are decoded here; a decode failure aborts construction
// and no partially-initialized cursor is ever returned.
func NewCursor(mappings []ColumnMapping, source RowSource, opts DecodeOptions) (*Cursor, error) {
	c := &Cursor{
		source:   source,
		mappings: mappings,
		consts:   make([]Scalar, len(mappings)),
	}
	var prefilled, empty int
	for i, m := range mappings {
		switch m.Kind() {
		case Regular:
			if m.SourceIndex() < 0 || m.SourceIndex() >= source.ColumnCount() {
				return nil, rberr.NewInvalidInputf(
					"source index %d for column %s exceeds the %d physical columns",
					m.SourceIndex(), m.Name(), source.ColumnCount())
			}
		case Prefilled:
			s, err := DecodePartitionValue(m.RawValue(), m.Type(), m.Name(), opts)
			if err != nil {
				return nil, err
			}
			c.consts[i] = s
			prefilled++
		case Empty:
			c.consts[i] = NullScalar()
			empty++
		default:
			return nil, rberr.NewInternalErrorf("column %s has mapping kind %s", m.Name(), m.Kind())
		}
	}
	logutil.Debug("row cursor built",
		zap.Int("columns", len(mappings)),
		zap.Int("prefilled", prefilled),
		zap.Int("empty", empty))
	return c, nil
}

// Next advances to the next row.  Row positioning belongs entirely to the
// physical source.
func (c *Cursor) Next() bool {
	return c.source.Next()
}

// Error reports the physical source's failure, unmodified.
func (c *Cursor) Error() error {
	return c.source.Error()
}

// Close releases the underlying source exactly once; later calls return
// the first result.
func (c *Cursor) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.source.Close()
	})
	return c.closeErr
}

// TypeOf returns the declared logical type of output field f.
func (c *Cursor) TypeOf(f int) types.Type {
	return c.mappings[f].Type()
}

func (c *Cursor) GetBool(f int) bool {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.GetBool(m.sourceIndex)
	}
	return c.consts[f].B
}

func (c *Cursor) GetInt64(f int) int64 {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.GetInt64(m.sourceIndex)
	}
	return c.consts[f].I64
}

func (c *Cursor) GetFloat64(f int) float64 {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.GetFloat64(m.sourceIndex)
	}
	return c.consts[f].F64
}

func (c *Cursor) GetBytes(f int) []byte {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.GetBytes(m.sourceIndex)
	}
	return c.consts[f].Bytes
}

func (c *Cursor) GetObject(f int) any {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.GetObject(m.sourceIndex)
	}
	return c.consts[f].Obj
}

func (c *Cursor) IsNull(f int) bool {
	if m := c.mappings[f]; m.kind == Regular {
		return c.source.IsNull(m.sourceIndex)
	}
	return c.consts[f].Null
}
