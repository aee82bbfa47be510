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
	"time"

	"github.com/skuforge/skuforge/internal/datagen"
	"github.com/skuforge/skuforge/internal/logging"
)

// Per-SKU latent daily sales velocity, gamma distributed.
const (
	velocityShape = 2.0
	velocityScale = 2.0
)

// Daily noise multipliers (stockout, normal day, viral spike) and
// their draw weights (percent).
var (
	noiseLevels  = []int{0, 1, 5}
	noiseWeights = []int{10, 85, 5}
)

// GenerateDemandHistory simulates daily sales for every catalog SKU
// over an inclusive window of days+1 calendar days ending at
// generation time. Each SKU gets a fresh velocity from a gamma draw;
// its daily quantity is a Poisson count around that velocity times a
// stockout/spike noise factor. Zero-quantity days are dropped so the
// fact table stays sparse.
//
// Draws are sequential from the shared sampler, so a SKU's series
// depends on the draws consumed by the SKUs before it. An empty
// catalog yields an empty table.
func GenerateDemandHistory(s *datagen.Sampler, catalog []SKU, days int) ([]Sale, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days of history must be non-negative, got %d", ErrInvalidParameter, days)
	}
	if len(catalog) == 0 {
		return []Sale{}, nil
	}

	logging.Info().
		Int("days", days).
		Int("skus", len(catalog)).
		Msg("Simulating demand history")

	// One window for all SKUs so every series aligns to the same
	// calendar dates.
	dates := dateWindow(time.Now().UTC(), days)

	sales := make([]Sale, 0, len(catalog)*len(dates)/2)
	for _, sku := range catalog {
		velocity := s.Gamma(velocityShape, velocityScale)
		for _, d := range dates {
			qty := s.Poisson(velocity) * datagen.ChooseWeighted(s, noiseLevels, noiseWeights)
			if qty == 0 {
				continue
			}
			sales = append(sales, Sale{Date: d, SKUID: sku.ID, QtySold: qty})
		}
	}

	logging.Info().Int("count", len(sales)).Msg("Demand history complete")
	return sales, nil
}

// dateWindow returns days+1 daily timestamps from end-days through end
// inclusive.
func dateWindow(end time.Time, days int) []time.Time {
	start := end.AddDate(0, 0, -days)
	dates := make([]time.Time, 0, days+1)
	for i := 0; i <= days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}
