/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

import (
	"errors"
	"fmt"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds are the accepted input ranges for a calculation request.
type Bounds struct {
	Age        Range
	WeightKg   Range
	HeightCm   Range
	Creatinine Range
}

// DefaultBounds mirrors the limits enforced by the input form.
var DefaultBounds = Bounds{
	Age:        Range{Min: 1, Max: 120},
	WeightKg:   Range{Min: 1, Max: 300},
	HeightCm:   Range{Min: 50, Max: 250},
	Creatinine: Range{Min: 0.1, Max: 20},
}

// Validate checks the input against the bounds and reports every field that
// falls outside them.
func (p PatientInput) Validate(b Bounds) error {
	var errs []error

	if !b.Age.Contains(float64(p.Age)) {
		errs = append(errs, fmt.Errorf("%w: %d not in [%g, %g]", ErrAgeOutOfRange, p.Age, b.Age.Min, b.Age.Max))
	}

	if !b.WeightKg.Contains(p.WeightKg) {
		errs = append(errs, fmt.Errorf("%w: %g not in [%g, %g]", ErrWeightOutOfRange, p.WeightKg, b.WeightKg.Min, b.WeightKg.Max))
	}

	if p.HeightCm != nil && !b.HeightCm.Contains(*p.HeightCm) {
		errs = append(errs, fmt.Errorf("%w: %g not in [%g, %g]", ErrHeightOutOfRange, *p.HeightCm, b.HeightCm.Min, b.HeightCm.Max))
	}

	if !b.Creatinine.Contains(p.CreatinineMgDL) {
		errs = append(errs, fmt.Errorf("%w: %g not in [%g, %g]", ErrCreatinineOutOfRange, p.CreatinineMgDL, b.Creatinine.Min, b.Creatinine.Max))
	}

	if p.Sex != SexMale && p.Sex != SexFemale {
		errs = append(errs, ErrUnknownSex)
	}

	return errors.Join(errs...)
}
