//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink writes generated tables as comma-separated flat files.
package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/skuforge/skuforge/internal/dataset"
)

// Output file names within the destination directory.
const (
	DimSKUsFile   = "dim_skus.csv"
	FactSalesFile = "fact_sales.csv"
)

// ErrSinkUnavailable reports that the destination directory or a file
// in it cannot be created or written. There is no retry; the run is a
// one-shot job with no transient-failure model.
var ErrSinkUnavailable = errors.New("sink unavailable")

// CSVSink writes tables into a destination directory. Files are
// written with a header row and no index column.
type CSVSink struct {
	dir string
}

// New creates the destination directory (including parents) and
// returns a sink bound to it.
func New(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %v: %w", dir, err, ErrSinkUnavailable)
	}
	return &CSVSink{dir: dir}, nil
}

// WriteCatalog writes the SKU dimension table and returns the path of
// the written file. Money columns carry exactly two decimals.
func (s *CSVSink) WriteCatalog(skus []dataset.SKU) (string, error) {
	rows := make([][]string, 0, len(skus)+1)
	rows = append(rows, []string{"sku_id", "unit_cost", "unit_price", "avg_lead_time", "safety_stock_target"})
	for _, sku := range skus {
		rows = append(rows, []string{
			sku.ID,
			strconv.FormatFloat(sku.UnitCost, 'f', 2, 64),
			strconv.FormatFloat(sku.UnitPrice, 'f', 2, 64),
			strconv.Itoa(sku.AvgLeadTime),
			strconv.Itoa(sku.SafetyStockTarget),
		})
	}
	return s.writeFile(DimSKUsFile, rows)
}

// WriteSales writes the sales fact table and returns the path of the
// written file. Dates are formatted as RFC 3339 in UTC.
func (s *CSVSink) WriteSales(sales []dataset.Sale) (string, error) {
	rows := make([][]string, 0, len(sales)+1)
	rows = append(rows, []string{"date", "sku_id", "qty_sold"})
	for _, sale := range sales {
		rows = append(rows, []string{
			sale.Date.Format(time.RFC3339),
			sale.SKUID,
			strconv.Itoa(sale.QtySold),
		})
	}
	return s.writeFile(FactSalesFile, rows)
}

// writeFile writes rows to a temp file in the destination directory
// and renames it into place. A failed run never leaves a partially
// written table at the final path.
func (s *CSVSink) writeFile(name string, rows [][]string) (string, error) {
	tmp, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return "", fmt.Errorf("create %s: %v: %w", name, err, ErrSinkUnavailable)
	}

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %v: %w", name, err, ErrSinkUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close %s: %v: %w", name, err, ErrSinkUnavailable)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename %s: %v: %w", name, err, ErrSinkUnavailable)
	}
	return path, nil
}
