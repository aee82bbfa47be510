//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides seeded statistical sampling for skuforge.
package datagen

import (
	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is the shared random source for a generation run. It is
// created once per run and passed into every generator. All draws,
// whether through gonum or gofakeit, consume the same underlying
// source, so output is a single sequential stream: for a fixed seed
// the whole dataset is reproduced exactly.
//
// A Sampler is not safe for concurrent use. The pipeline is
// single-threaded; sharing one across goroutines would break
// reproducibility before it broke anything else.
type Sampler struct {
	src   rand.Source
	faker *gofakeit.Faker
}

// New creates a Sampler seeded with the given value.
func New(seed uint64) *Sampler {
	src := rand.NewSource(seed)
	return &Sampler{
		src:   src,
		faker: gofakeit.NewFaker(src, false),
	}
}

// LogNormal draws from a log-normal distribution with the given
// location and scale on the log scale.
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Gamma draws from a gamma distribution parameterized by shape and
// scale. distuv's Beta is a rate, hence the inversion.
func (s *Sampler) Gamma(shape, scale float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}.Rand()
}

// Poisson draws a count from a Poisson distribution with the given
// expected rate.
func (s *Sampler) Poisson(rate float64) int {
	return int(distuv.Poisson{Lambda: rate, Src: s.src}.Rand())
}

// Float64Range returns a random float64 between min and max.
func (s *Sampler) Float64Range(min, max float64) float64 {
	return s.faker.Float64Range(min, max)
}

// IntRange returns a random integer between min and max (inclusive).
func (s *Sampler) IntRange(min, max int) int {
	return s.faker.IntRange(min, max)
}

// ChooseWeighted returns a random element based on weights.
func ChooseWeighted[T any](s *Sampler, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := s.IntRange(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}
