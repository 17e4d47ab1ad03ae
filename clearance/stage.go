/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

import "fmt"

// Stage thresholds in mL/min.
const (
	normalAbove  = 90.0
	mildFrom     = 60.0
	moderateFrom = 30.0
	severeFrom   = 15.0
)

const (
	vocativeMale   = "compadre"
	vocativeFemale = "comadre"
	vocativeBoth   = vocativeMale + "/" + vocativeFemale
)

var adviceTemplates = [...]string{
	StageNormal:   "All good, %s, kidneys at 100%%.",
	StageMild:     "Worth a look, %s, but stay calm.",
	StageModerate: "Watch it, %s, adjust the dosage.",
	StageSevere:   "Getting rough, %s, strict monitoring.",
	StageTerminal: "Critical situation, %s, straight to the emergency room.",
}

// StageFor maps a clearance value to its stage. Bands are evaluated in order
// and the first match wins: 90 and 60 are Mild, 30 is Moderate, 15 is
// Severe. Anything below 15, including negative values and NaN, is Terminal.
func StageFor(clearance float64) Stage {
	switch {
	case clearance > normalAbove:
		return StageNormal
	case clearance >= mildFrom:
		return StageMild
	case clearance >= moderateFrom:
		return StageModerate
	case clearance >= severeFrom:
		return StageSevere
	default:
		return StageTerminal
	}
}

// Vocative returns the form of address used in advisory messages.
func Vocative(sex Sex) string {
	switch sex {
	case SexMale:
		return vocativeMale
	case SexFemale:
		return vocativeFemale
	default:
		return vocativeBoth
	}
}

// Advice renders the advisory message for a stage.
func Advice(stage Stage, sex Sex) string {
	if stage < StageNormal || stage > StageTerminal {
		stage = StageTerminal
	}

	return fmt.Sprintf(adviceTemplates[stage], Vocative(sex))
}

// Classify returns the stage and advisory message for a clearance value.
func Classify(clearance float64, sex Sex) Classification {
	stage := StageFor(clearance)

	return Classification{
		Stage:  stage,
		Advice: Advice(stage, sex),
	}
}
