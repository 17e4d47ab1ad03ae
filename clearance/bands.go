/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

// GaugeMax is the upper end of the clearance gauge axis in mL/min.
const GaugeMax = 150.0

// Band is one coloured segment of the clearance scale.
type Band struct {
	Stage Stage
	From  float64
	To    float64
	Color string
}

// Bands returns the colour scale from lowest to highest clearance.
func Bands() []Band {
	return []Band{
		{Stage: StageTerminal, From: 0, To: severeFrom, Color: "red"},
		{Stage: StageSevere, From: severeFrom, To: moderateFrom, Color: "orange"},
		{Stage: StageModerate, From: moderateFrom, To: mildFrom, Color: "yellow"},
		{Stage: StageMild, From: mildFrom, To: normalAbove, Color: "lightgreen"},
		{Stage: StageNormal, From: normalAbove, To: GaugeMax, Color: "green"},
	}
}

// BandFor returns the band that colours a stage.
func BandFor(stage Stage) Band {
	for _, band := range Bands() {
		if band.Stage == stage {
			return band
		}
	}

	return Bands()[0]
}
