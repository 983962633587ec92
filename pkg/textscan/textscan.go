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

// Package textscan reads delimited text files as a physical row source.
// Each line is one row; fields are decoded to typed scalars with the same
// rules used for partition-key values, so a value prints and parses the
// same whether it lives in the file body or in the directory name.
package textscan

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	"github.com/matrixorigin/simdcsv"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"

	"github.com/rowbridge/rowbridge/pkg/common/rberr"
	"github.com/rowbridge/rowbridge/pkg/connector"
	"github.com/rowbridge/rowbridge/pkg/container/types"
	"github.com/rowbridge/rowbridge/pkg/logutil"
)

// BatchReadRows is how many parsed lines one underlying read pulls in.
const BatchReadRows = 4000

// Column declares one physical column of the file, in file order.
type Column struct {
	Name string
	Type types.Type
}

// Options configures a Scanner.  Columns is required; everything else has a
// usable zero value.
type Options struct {
	Columns []Column

	// FieldTerminator separates fields on a line; ',' when zero.
	FieldTerminator rune
	// NullValue is the raw string read as null; connector.DefaultNullValue
	// when empty.
	NullValue string
	// Zone is packed into timestamp values; ZoneUnset selects the process
	// default.
	Zone types.ZoneKey
	// BatchRows overrides BatchReadRows; useful in tests.
	BatchRows int
}

func (o Options) fieldTerminator() rune {
	if o.FieldTerminator == 0 {
		return ','
	}
	return o.FieldTerminator
}

func (o Options) batchRows() int {
	if o.BatchRows <= 0 {
		return BatchReadRows
	}
	return o.BatchRows
}

// Scanner is a connector.RowSource over one delimited text stream.  It is
// single threaded, pull based, and decodes one batch of lines at a time.
type Scanner struct {
	ctx     context.Context
	columns []Column
	opts    connector.DecodeOptions

	reader  *simdcsv.Reader
	raw     io.ReadCloser
	batch   int
	content [][]string
	idx     int
	length  int

	row []connector.Scalar
	err error
}

var _ connector.RowSource = (*Scanner)(nil)

// Open opens path and scans it with the given options.  The compression is
// chosen by file suffix: .gz, .bz2 and .lz4 are understood, anything else
// is read as plain text.
func Open(ctx context.Context, path string, opts Options) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rberr.NewInvalidInputf("cannot open %s: %s", path, err)
	}
	r, err := uncompressedReader(path, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	logutil.Debug("text scan opened",
		zap.String("path", path),
		zap.Int("columns", len(opts.Columns)))
	return NewScanner(ctx, r, opts), nil
}

// NewScanner scans delimited text from rc.  Close closes rc.
func NewScanner(ctx context.Context, rc io.ReadCloser, opts Options) *Scanner {
	return &Scanner{
		ctx:     ctx,
		columns: opts.Columns,
		opts: connector.DecodeOptions{
			NullValue: opts.NullValue,
			Zone:      opts.Zone,
		},
		reader:  simdcsv.NewReaderWithOptions(rc, opts.fieldTerminator(), '#', true, true),
		raw:     rc,
		batch:   opts.batchRows(),
		content: make([][]string, opts.batchRows()),
		row:     make([]connector.Scalar, len(opts.Columns)),
	}
}

func uncompressedReader(path string, f *os.File) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".gzip"):
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, rberr.NewInvalidInputf("cannot read gzip file %s: %s", path, err)
		}
		return &wrappedReader{Reader: r, raw: f}, nil
	case strings.HasSuffix(path, ".bz2") || strings.HasSuffix(path, ".bzip2"):
		return &wrappedReader{Reader: bzip2.NewReader(f), raw: f}, nil
	case strings.HasSuffix(path, ".lz4"):
		return &wrappedReader{Reader: lz4.NewReader(f), raw: f}, nil
	}
	return f, nil
}

// wrappedReader closes the underlying file, not the decompressor.
type wrappedReader struct {
	io.Reader
	raw io.Closer
}

func (w *wrappedReader) Close() error {
	return w.raw.Close()
}

// Next decodes the next line into the current row.  It returns false at end
// of input or on the first error; Error tells the two apart.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if s.idx == s.length {
		if s.reader == nil {
			return false
		}
		var cnt int
		var err error
		s.content, cnt, err = s.reader.Read(s.batch, s.ctx, s.content)
		if err != nil {
			s.err = err
			return false
		}
		if cnt < s.batch {
			s.reader = nil
		}
		s.idx = 0
		s.length = cnt
		if cnt == 0 {
			return false
		}
	}
	fields := s.content[s.idx]
	s.idx++
	return s.decodeRow(fields)
}

func (s *Scanner) decodeRow(fields []string) bool {
	if len(fields) != len(s.columns) {
		s.err = rberr.NewInvalidInputf("line has %d fields, schema has %d columns",
			len(fields), len(s.columns))
		return false
	}
	for i, col := range s.columns {
		v, err := connector.DecodePartitionValue(fields[i], col.Type, col.Name, s.opts)
		if err != nil {
			s.err = err
			return false
		}
		s.row[i] = v
	}
	return true
}

func (s *Scanner) Error() error {
	return s.err
}

func (s *Scanner) Close() error {
	if s.raw == nil {
		return nil
	}
	raw := s.raw
	s.raw = nil
	s.reader = nil
	return raw.Close()
}

func (s *Scanner) ColumnCount() int {
	return len(s.columns)
}

func (s *Scanner) GetBool(i int) bool       { return s.row[i].B }
func (s *Scanner) GetInt64(i int) int64     { return s.row[i].I64 }
func (s *Scanner) GetFloat64(i int) float64 { return s.row[i].F64 }
func (s *Scanner) GetBytes(i int) []byte    { return s.row[i].Bytes }
func (s *Scanner) GetObject(i int) any      { return s.row[i].Obj }
func (s *Scanner) IsNull(i int) bool        { return s.row[i].Null }
