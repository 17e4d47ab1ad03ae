/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/renatora1026-bit/Calculadora-renal/clearance"
	"github.com/renatora1026-bit/Calculadora-renal/logging"
)

var calcLogger = logging.Logger(logging.SourceCalc)

// CalculationView is the template model of a finished calculation.
type CalculationView struct {
	ID              string
	Absolute        string
	BodySurfaceArea string
	Corrected       string
	HasCorrected    bool
	Stage           string
	StageColor      string
	Advice          string
	Gauge           htmltemplate.HTML
	GaugeBands      htmltemplate.JS
	ShareURL        string
	ShareQR         htmltemplate.URL
}

// Calculator renders the empty calculator form. Nothing is computed until the
// form is submitted.
func Calculator(s session.Session, t template.Template, data template.Data) {
	form := defaultCalculatorForm()
	if saved, ok := s.Get(formSessionKey).(CalculatorForm); ok {
		form = saved
		s.Delete(formSessionKey)
	}

	setCalculatorData(data, form)
	t.HTML(http.StatusOK, "calculator")
}

// Calculate handles the submitted form.
func Calculate(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	if err := c.Request().ParseForm(); err != nil {
		calcLogger.Warn("failed to parse form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	form := calculatorFormFromValues(c.Request().Form)

	input, err := form.PatientInput()
	if err != nil {
		calcLogger.Info("rejected calculation", "error", err)
		s.Set(formSessionKey, form)
		SetErrorFlash(s, validationMessage(err))
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	renderCalculation(c, t, data, form, input)
}

// SharedResult recomputes a calculation from a share link.
func SharedResult(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	form := calculatorFormFromValues(c.Request().URL.Query())

	input, err := form.PatientInput()
	if err != nil {
		SetErrorFlash(s, "The shared link is invalid. "+validationMessage(err))
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	renderCalculation(c, t, data, form, input)
}

func renderCalculation(c flamego.Context, t template.Template, data template.Data, form CalculatorForm, input clearance.PatientInput) {
	view, err := buildCalculationView(c, form, input)
	if err != nil {
		calcLogger.Error("failed to build calculation view", "error", err)
		data["Error"] = "Failed to render the result"
	} else {
		data["Result"] = view
	}

	setCalculatorData(data, form)
	t.HTML(http.StatusOK, "calculator")
}

func buildCalculationView(c flamego.Context, form CalculatorForm, input clearance.PatientInput) (*CalculationView, error) {
	result := clearance.Calculate(input)
	classification := clearance.Classify(result.Absolute, input.Sex)

	view := &CalculationView{
		ID:         uuid.NewString(),
		Absolute:   formatClearance(result.Absolute),
		Stage:      classification.Stage.String(),
		StageColor: clearance.BandFor(classification.Stage).Color,
		Advice:     classification.Advice,
		ShareURL:   shareURL(c, form),
	}

	if result.Corrected != nil && result.BodySurfaceArea != nil {
		view.HasCorrected = true
		view.Corrected = formatClearance(*result.Corrected)
		view.BodySurfaceArea = strconv.FormatFloat(*result.BodySurfaceArea, 'f', 2, 64)
	}

	gauge, err := renderGauge(result.Absolute)
	if err != nil {
		return nil, err
	}
	view.Gauge = htmltemplate.HTML(gauge)

	bands, err := gaugeBandOverrides()
	if err != nil {
		return nil, err
	}
	view.GaugeBands = htmltemplate.JS(bands)

	qr, err := shareQRCode(view.ShareURL)
	if err != nil {
		// The result is still useful without the QR code.
		calcLogger.Warn("failed to generate share qr code", "error", err)
	} else {
		view.ShareQR = qr
	}

	calcLogger.Info("calculation",
		"calculation_id", view.ID,
		"stage", view.Stage,
		"absolute", view.Absolute,
		"corrected", view.HasCorrected,
	)

	return view, nil
}

func setCalculatorData(data template.Data, form CalculatorForm) {
	data["IsCalculator"] = true
	data["Form"] = form
	data["Bounds"] = clearance.DefaultBounds
	data["Bands"] = clearance.Bands()
	sex, _ := clearance.ParseSex(form.Sex)
	data["IsFemale"] = sex == clearance.SexFemale
}

func formatClearance(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
