/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

import "strings"

// Sex represents biological sex as used by the Cockcroft-Gault formula.
// The zero value is unspecified and only affects advisory phrasing.
type Sex string

// Sex values accepted by the calculator.
const (
	SexUnspecified Sex = ""
	SexMale        Sex = "Male"
	SexFemale      Sex = "Female"
)

// ParseSex converts free-form input into a Sex value.
func ParseSex(value string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "m", "hombre":
		return SexMale, nil
	case "female", "f", "mujer":
		return SexFemale, nil
	default:
		return SexUnspecified, ErrUnknownSex
	}
}

// PatientInput holds the values of a single calculation request.
type PatientInput struct {
	Age            int
	WeightKg       float64
	HeightCm       *float64 // nil unless the body-surface-area correction is wanted
	CreatinineMgDL float64
	Sex            Sex
}

// HasHeight reports whether the body-surface-area correction applies.
func (p PatientInput) HasHeight() bool {
	return p.HeightCm != nil
}

// Result is the outcome of a clearance calculation in mL/min.
type Result struct {
	Absolute        float64
	BodySurfaceArea *float64 // m²
	Corrected       *float64 // mL/min per 1.73 m²
}

// Stage is a clinical severity bucket derived from clearance.
type Stage int

// Stages ordered from best to worst renal function.
const (
	StageNormal Stage = iota
	StageMild
	StageModerate
	StageSevere
	StageTerminal
)

var stageNames = [...]string{
	StageNormal:   "Normal",
	StageMild:     "Mild",
	StageModerate: "Moderate",
	StageSevere:   "Severe",
	StageTerminal: "Terminal",
}

func (s Stage) String() string {
	if s < StageNormal || s > StageTerminal {
		return "Unknown"
	}

	return stageNames[s]
}

// Classification pairs a stage with its advisory message.
type Classification struct {
	Stage  Stage
	Advice string
}
