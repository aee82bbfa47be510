//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"fmt"
	"math"

	"github.com/skuforge/skuforge/internal/datagen"
	"github.com/skuforge/skuforge/internal/logging"
)

// Unit cost distribution on the log scale. Most items are cheap, a few
// are expensive.
const (
	costLogMean  = 3.0
	costLogSigma = 0.5
)

// Margin applied on top of cost, uniform in [1.2, 1.6).
const (
	marginMin = 1.2
	marginMax = 1.6
)

// Safety stock placeholder range [10, 100).
const (
	safetyStockMin = 10
	safetyStockMax = 99
)

// Supplier lead times in days and their draw weights (percent).
var (
	leadTimes       = []int{3, 7, 14, 30, 45}
	leadTimeWeights = []int{10, 30, 30, 20, 10}
)

// GenerateCatalog produces the product master table: exactly n SKUs
// with sequential zero-padded IDs, log-normal unit costs, a uniform
// margin on top, categorical supplier lead times, and a placeholder
// safety stock target. It depends on nothing but the sampler.
func GenerateCatalog(s *datagen.Sampler, n int) ([]SKU, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sku count must be positive, got %d", ErrInvalidParameter, n)
	}

	logging.Info().Int("count", n).Msg("Generating SKU catalog")

	skus := make([]SKU, 0, n)
	for i := 1; i <= n; i++ {
		cost := roundCents(s.LogNormal(costLogMean, costLogSigma))
		margin := s.Float64Range(marginMin, marginMax)

		skus = append(skus, SKU{
			ID:                fmt.Sprintf("SKU-%03d", i),
			UnitCost:          cost,
			UnitPrice:         roundCents(cost * margin),
			AvgLeadTime:       datagen.ChooseWeighted(s, leadTimes, leadTimeWeights),
			SafetyStockTarget: s.IntRange(safetyStockMin, safetyStockMax),
		})
	}

	logging.Info().Int("count", len(skus)).Msg("SKU catalog complete")
	return skus, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
