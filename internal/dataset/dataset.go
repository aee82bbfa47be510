//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dataset generates the two tables of the synthetic retail
// dataset: the product catalog (dimension) and the daily sales history
// (fact). Records are plain values and are never mutated after a
// generation pass.
package dataset

import (
	"errors"
	"time"
)

// ErrInvalidParameter reports an out-of-domain generation parameter.
// It always surfaces before any row is produced.
var ErrInvalidParameter = errors.New("invalid parameter")

// SKU is one row of the product catalog dimension table.
type SKU struct {
	// ID is the unique product identifier, formatted SKU-NNN.
	ID string

	// UnitCost is the purchase cost in currency units, 2 decimals.
	UnitCost float64

	// UnitPrice is the sale price, always above UnitCost since the
	// margin is drawn from [1.2, 1.6).
	UnitPrice float64

	// AvgLeadTime is the supplier lead time in days.
	AvgLeadTime int

	// SafetyStockTarget is a placeholder stocking target in units,
	// independent of the other fields.
	SafetyStockTarget int
}

// Sale is one day of non-zero sales for a single SKU. Days with zero
// quantity are not stored; absence means no sales that day.
type Sale struct {
	Date    time.Time
	SKUID   string
	QtySold int
}
