package data

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	arrowcsv "github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Option configures ReadColumns.
type Option func(*readConfig)

type readConfig struct {
	header bool
	comma  rune
	mem    memory.Allocator
}

// WithHeader treats the first record as column names.
func WithHeader() Option { return func(c *readConfig) { c.header = true } }

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option { return func(c *readConfig) { c.comma = r } }

// WithAllocator sets the Arrow allocator used while decoding records.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *readConfig) { c.mem = mem }
}

// ReadFile opens path and reads it with ReadColumns.
func ReadFile(path string, targetIndex, rowLimit int, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadColumns(f, targetIndex, rowLimit, opts...)
}

// ReadColumns parses delimited, optionally quoted records from r into
// string columns, then splits off the column at targetIndex as the target.
// A rowLimit below 1 reads every record.
func ReadColumns(r io.Reader, targetIndex, rowLimit int, opts ...Option) (*Dataset, error) {
	cfg := readConfig{comma: ',', mem: memory.DefaultAllocator}
	for _, o := range opts {
		o(&cfg)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("data: could not read input: %w", err)
	}
	first, err := sniff(raw, cfg.comma)
	if err != nil {
		return nil, err
	}

	fields := make([]arrow.Field, len(first))
	for i, name := range positionalNames(len(first)) {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String}
	}
	var names []string
	if cfg.header {
		names = append(names, first...)
	}
	if targetIndex < 0 || targetIndex >= len(fields) {
		return nil, fmt.Errorf("%w: index %d, %d columns", ErrTargetIndex, targetIndex, len(fields))
	}

	chunk := -1
	if rowLimit > 0 {
		chunk = rowLimit
	}
	rdr := arrowcsv.NewReader(bytes.NewReader(raw), arrow.NewSchema(fields, nil),
		arrowcsv.WithComma(cfg.comma),
		arrowcsv.WithHeader(cfg.header),
		arrowcsv.WithChunk(chunk),
		arrowcsv.WithAllocator(cfg.mem),
	)
	defer rdr.Release()

	columns := make([][]string, len(fields))
	for rdr.Next() {
		appendRecord(columns, rdr.Record())
		if rowLimit > 0 && len(columns[0]) >= rowLimit {
			break
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, xerrors.Errorf("data: could not decode csv: %w", err)
	}

	log.Debug().
		Int("rows", len(columns[0])).
		Int("columns", len(columns)).
		Int("target", targetIndex).
		Msg("read dataset")

	return NewDataset(columns, names, targetIndex)
}

// sniff returns the first record of raw, which fixes the column count.
func sniff(raw []byte, comma rune) ([]string, error) {
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = comma
	rec, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, xerrors.Errorf("data: could not read first record: %w", err)
	}
	return rec, nil
}

func appendRecord(columns [][]string, rec arrow.Record) {
	for i := range columns {
		col := rec.Column(i).(*array.String)
		for j := 0; j < col.Len(); j++ {
			columns[i] = append(columns[i], strings.Clone(col.Value(j)))
		}
	}
}
