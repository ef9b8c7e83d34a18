package parquetio

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/samfargo/h3geo/h3geo"
)

// cellRecord is the flat row written for every cell: the parquet struct
// tags drive xitongsys/parquet-go's schema derivation.
type cellRecord struct {
	Cell       string `parquet:"name=cell, type=BYTE_ARRAY, convertedtype=UTF8"`
	Resolution int32  `parquet:"name=resolution, type=INT32"`
	Lat        float64 `parquet:"name=lat, type=DOUBLE"`
	Lng        float64 `parquet:"name=lng, type=DOUBLE"`
}

// WriteCells writes cells and their decoded centers to a new Parquet
// file at path, overwriting any existing file.
func WriteCells(path string, cells []h3geo.Index) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("parquetio: create %s: %w", path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(cellRecord), 4)
	if err != nil {
		return fmt.Errorf("parquetio: init writer: %w", err)
	}

	for _, cell := range cells {
		center, err := h3geo.CellToLatLng(cell)
		if err != nil {
			return fmt.Errorf("parquetio: decode %s: %w", h3geo.ToString(cell), err)
		}
		rec := cellRecord{
			Cell:       h3geo.ToString(cell),
			Resolution: int32(h3geo.Resolution(cell)),
			Lat:        center.Lat,
			Lng:        center.Lng,
		}
		if err := pw.Write(rec); err != nil {
			return fmt.Errorf("parquetio: write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("parquetio: finalize: %w", err)
	}
	return nil
}
