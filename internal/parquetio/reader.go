// Package parquetio streams H3 cell indexes and their sidecar
// properties out of Parquet files, generalizing the fixed
// PMTiles-tiling pipeline the reader was originally written for into a
// column-agnostic reader over this repository's own h3geo engine.
package parquetio

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/schema"
	"github.com/xitongsys/parquet-go/source"

	"github.com/samfargo/h3geo/h3geo"
)

// ReaderOptions controls how Parquet rows are streamed.
type ReaderOptions struct {
	// BatchSize controls how many rows are fetched per request.
	BatchSize int
}

// Row is a fully decoded Parquet row carrying an h3geo cell index and
// its remaining columns.
type Row struct {
	RowNumber  int64
	Cell       h3geo.Index
	CellString string
	Resolution int
	Properties map[string]any
	Err        error
}

// ErrNoCellColumn is returned when a row has none of the recognized
// cell-index column names.
var ErrNoCellColumn = errors.New("parquetio: row missing a recognizable cell column")

// Reader streams decoded rows from a Parquet file, one batch at a
// time, via ReaderOptions.BatchSize.
type Reader struct {
	opts      ReaderOptions
	pf        source.ParquetFile
	pr        *reader.ParquetReader
	totalRows int64

	mu     sync.Mutex
	buffer []*Row
	cursor int
	read   int64
}

// NewReader opens a Parquet file for streaming.
func NewReader(path string, opts ReaderOptions) (*Reader, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 4096
	}

	pf, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("parquetio: open %s: %w", path, err)
	}

	pr, err := reader.NewParquetReader(pf, nil, 4)
	if err != nil {
		pf.Close()
		return nil, fmt.Errorf("parquetio: read footer of %s: %w", path, err)
	}
	pr.SchemaHandler = schema.NewSchemaHandlerFromSchemaList(pr.Footer.Schema)
	pr.RenameSchema()

	return &Reader{
		opts:      opts,
		pf:        pf,
		pr:        pr,
		totalRows: pr.GetNumRows(),
	}, nil
}

// Close releases the underlying Parquet file.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pr != nil {
		r.pr.ReadStop()
		r.pr = nil
	}
	if r.pf != nil {
		err := r.pf.Close()
		r.pf = nil
		return err
	}
	return nil
}

// TotalRows returns the row count reported by the Parquet footer.
func (r *Reader) TotalRows() int64 { return r.totalRows }

// Next returns the next decoded row, or io.EOF once every row has been
// consumed.
func (r *Reader) Next() (*Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pr == nil {
		return nil, fmt.Errorf("parquetio: reader closed")
	}
	if r.cursor >= len(r.buffer) {
		if err := r.fillBuffer(); err != nil {
			return nil, err
		}
	}
	if r.cursor >= len(r.buffer) {
		return nil, io.EOF
	}
	row := r.buffer[r.cursor]
	r.cursor++
	return row, nil
}

func (r *Reader) fillBuffer() error {
	if r.read >= r.totalRows {
		return io.EOF
	}
	remaining := int(r.totalRows - r.read)
	toRead := r.opts.BatchSize
	if toRead > remaining {
		toRead = remaining
	}

	rawRows, err := r.pr.ReadByNumber(toRead)
	if err != nil {
		return fmt.Errorf("parquetio: read rows: %w", err)
	}
	if len(rawRows) == 0 {
		return io.EOF
	}

	r.buffer = r.buffer[:0]
	r.cursor = 0
	for _, raw := range rawRows {
		rowNumber := r.read + 1
		r.read++

		fields, ok := raw.(map[string]interface{})
		if !ok {
			r.buffer = append(r.buffer, &Row{
				RowNumber: rowNumber,
				Err:       fmt.Errorf("row %d: unexpected decoded type %T", rowNumber, raw),
			})
			continue
		}

		cell, cellString, err := extractCell(fields)
		if err != nil {
			r.buffer = append(r.buffer, &Row{
				RowNumber:  rowNumber,
				CellString: cellString,
				Resolution: -1,
				Properties: extractProperties(fields),
				Err:        fmt.Errorf("row %d: %w", rowNumber, err),
			})
			continue
		}

		r.buffer = append(r.buffer, &Row{
			RowNumber:  rowNumber,
			Cell:       cell,
			CellString: cellString,
			Resolution: h3geo.Resolution(cell),
			Properties: extractProperties(fields),
		})
	}
	return nil
}

var possibleCellNames = []string{"h3", "h3_id", "h3index", "h3_index", "h3id", "cell", "cell_id"}

func isCellColumn(name string) bool {
	lname := strings.ToLower(name)
	for _, candidate := range possibleCellNames {
		if lname == candidate {
			return true
		}
	}
	return false
}

func extractCell(fields map[string]interface{}) (h3geo.Index, string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !isCellColumn(k) {
			continue
		}
		idx, cellString, err := parseCell(fields[k])
		if err != nil {
			return 0, cellString, err
		}
		if idx == 0 {
			continue
		}
		if !h3geo.IsValidCell(idx) {
			return 0, cellString, fmt.Errorf("column %s: invalid cell", k)
		}
		return idx, cellString, nil
	}
	return 0, "", ErrNoCellColumn
}

func parseCell(value interface{}) (h3geo.Index, string, error) {
	switch v := value.(type) {
	case nil:
		return 0, "", nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "", nil
		}
		idx, err := parseCellString(s)
		if err != nil {
			return 0, s, err
		}
		return idx, h3geo.ToString(idx), nil
	case int32:
		return h3geo.Index(uint64(v)), h3geo.ToString(h3geo.Index(uint64(v))), nil
	case int64:
		return h3geo.Index(uint64(v)), h3geo.ToString(h3geo.Index(uint64(v))), nil
	case uint64:
		return h3geo.Index(v), h3geo.ToString(h3geo.Index(v)), nil
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return 0, "", nil
		}
		idx, err := parseCellString(s)
		if err != nil {
			return 0, s, err
		}
		return idx, h3geo.ToString(idx), nil
	}
}

func parseCellString(s string) (h3geo.Index, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if idx, err := h3geo.FromString(s); err == nil {
		return idx, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cell string %q: %w", s, err)
	}
	return h3geo.Index(v), nil
}

func extractProperties(fields map[string]interface{}) map[string]any {
	props := make(map[string]any, len(fields))
	for k, v := range fields {
		if isCellColumn(k) {
			continue
		}
		if b, ok := v.([]byte); ok {
			props[k] = string(b)
			continue
		}
		props[k] = v
	}
	return props
}
