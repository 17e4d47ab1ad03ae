/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

import "math"

const (
	femaleFactor      = 0.85
	standardBSA       = 1.73 // m²
	mostellerDivisor  = 3600.0
	cockcroftAgeBase  = 140.0
	cockcroftConstant = 72.0
)

// ComputeAbsolute estimates creatinine clearance in mL/min using the
// Cockcroft-Gault formula. A creatinine of exactly zero yields 0 instead of
// dividing by zero. Ages above 140 are not guarded and produce a negative
// clearance.
func ComputeAbsolute(age int, weightKg, creatinineMgDL float64, sex Sex) float64 {
	if creatinineMgDL == 0 {
		return 0.0
	}

	factor := 1.0
	if sex == SexFemale {
		factor = femaleFactor
	}

	numerator := (cockcroftAgeBase - float64(age)) * weightKg
	denominator := cockcroftConstant * creatinineMgDL

	return (numerator / denominator) * factor
}

// ComputeBodySurfaceArea returns the Mosteller body surface area in m².
func ComputeBodySurfaceArea(weightKg, heightCm float64) float64 {
	return math.Sqrt((weightKg * heightCm) / mostellerDivisor)
}

// ComputeCorrected normalises an absolute clearance to 1.73 m² of body
// surface area.
func ComputeCorrected(absolute, bsa float64) float64 {
	return (absolute * standardBSA) / bsa
}

// Calculate runs the full calculation for a patient. The body surface area
// and corrected clearance are only filled in when a height was supplied.
func Calculate(in PatientInput) Result {
	result := Result{
		Absolute: ComputeAbsolute(in.Age, in.WeightKg, in.CreatinineMgDL, in.Sex),
	}

	if !in.HasHeight() {
		return result
	}

	bsa := ComputeBodySurfaceArea(in.WeightKg, *in.HeightCm)
	corrected := ComputeCorrected(result.Absolute, bsa)
	result.BodySurfaceArea = &bsa
	result.Corrected = &corrected

	return result
}
