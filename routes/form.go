/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/renatora1026-bit/Calculadora-renal/clearance"
)

// CalculatorForm holds the raw form values so they can be shown again.
type CalculatorForm struct {
	Age        string
	Weight     string
	Height     string
	Creatinine string
	Sex        string
}

const formSessionKey = "calculator_form"

func init() {
	gob.Register(CalculatorForm{})
}

func defaultCalculatorForm() CalculatorForm {
	return CalculatorForm{
		Age:        "40",
		Weight:     "70.0",
		Creatinine: "1.0",
		Sex:        string(clearance.SexMale),
	}
}

func calculatorFormFromValues(values url.Values) CalculatorForm {
	return CalculatorForm{
		Age:        strings.TrimSpace(values.Get("age")),
		Weight:     strings.TrimSpace(values.Get("weight")),
		Height:     strings.TrimSpace(values.Get("height")),
		Creatinine: strings.TrimSpace(values.Get("creatinine")),
		Sex:        strings.TrimSpace(values.Get("sex")),
	}
}

// Values encodes the form as query parameters.
func (f CalculatorForm) Values() url.Values {
	values := url.Values{}
	values.Set("age", f.Age)
	values.Set("weight", f.Weight)
	values.Set("creatinine", f.Creatinine)
	values.Set("sex", f.Sex)
	if f.Height != "" {
		values.Set("height", f.Height)
	}

	return values
}

// PatientInput converts the raw form into a validated calculation request.
func (f CalculatorForm) PatientInput() (clearance.PatientInput, error) {
	var errs []error

	age, err := parseInteger("age", f.Age)
	if err != nil {
		errs = append(errs, err)
	}

	weight, err := parseDecimal("weight", f.Weight)
	if err != nil {
		errs = append(errs, err)
	}

	creatinine, err := parseDecimal("creatinine", f.Creatinine)
	if err != nil {
		errs = append(errs, err)
	}

	var height *float64
	if f.Height != "" {
		h, err := parseDecimal("height", f.Height)
		if err != nil {
			errs = append(errs, err)
		} else {
			height = &h
		}
	}

	sex, err := clearance.ParseSex(f.Sex)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return clearance.PatientInput{}, errors.Join(errs...)
	}

	input := clearance.PatientInput{
		Age:            age,
		WeightKg:       weight,
		HeightCm:       height,
		CreatinineMgDL: creatinine,
		Sex:            sex,
	}

	if err := input.Validate(clearance.DefaultBounds); err != nil {
		return clearance.PatientInput{}, err
	}

	return input, nil
}

func parseInteger(field, raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", field, errMissingField)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, errInvalidInteger)
	}

	return value, nil
}

// parseDecimal accepts both "1.5" and "1,5".
func parseDecimal(field, raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", field, errMissingField)
	}

	value, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, errInvalidNumber)
	}

	return value, nil
}

// validationMessage flattens a joined validation error into one line.
func validationMessage(err error) string {
	lines := strings.Split(err.Error(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return "Please check the form: " + strings.Join(lines, "; ")
}
