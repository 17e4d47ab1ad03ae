/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/renatora1026-bit/Calculadora-renal/clearance"
)

type clearanceRequest struct {
	Age        int      `json:"age"`
	Weight     float64  `json:"weight"`
	Height     *float64 `json:"height,omitempty"`
	Creatinine float64  `json:"creatinine"`
	Sex        string   `json:"sex"`
}

type clearanceResponse struct {
	Absolute        float64  `json:"absolute"`
	BodySurfaceArea *float64 `json:"bsa,omitempty"`
	Corrected       *float64 `json:"corrected,omitempty"`
	Stage           string   `json:"stage"`
	Advice          string   `json:"advice"`
}

type bodySurfaceAreaResponse struct {
	BodySurfaceArea float64 `json:"bsa"`
}

// APIClearance computes a clearance from a JSON request.
func APIClearance(c flamego.Context) {
	var request clearanceRequest
	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&request); err != nil {
		writeJSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sex, err := clearance.ParseSex(request.Sex)
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := clearance.PatientInput{
		Age:            request.Age,
		WeightKg:       request.Weight,
		HeightCm:       request.Height,
		CreatinineMgDL: request.Creatinine,
		Sex:            sex,
	}

	if err := input.Validate(clearance.DefaultBounds); err != nil {
		writeJSONError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := clearance.Calculate(input)
	classification := clearance.Classify(result.Absolute, input.Sex)

	writeJSON(c, http.StatusOK, clearanceResponse{
		Absolute:        result.Absolute,
		BodySurfaceArea: result.BodySurfaceArea,
		Corrected:       result.Corrected,
		Stage:           classification.Stage.String(),
		Advice:          classification.Advice,
	})
}

// APIBodySurfaceArea returns the body surface area for the weight and height
// currently entered in the form.
func APIBodySurfaceArea(c flamego.Context) {
	weight, errWeight := parseDecimal("weight", c.Query("weight"))
	height, errHeight := parseDecimal("height", c.Query("height"))
	if err := errors.Join(errWeight, errHeight); err != nil {
		writeJSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	bounds := clearance.DefaultBounds
	if !bounds.WeightKg.Contains(weight) || !bounds.HeightCm.Contains(height) {
		writeJSONError(c, http.StatusBadRequest, "weight or height out of range")
		return
	}

	writeJSON(c, http.StatusOK, bodySurfaceAreaResponse{
		BodySurfaceArea: clearance.ComputeBodySurfaceArea(weight, height),
	})
}

func writeJSON(c flamego.Context, status int, body interface{}) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)
	if err := json.NewEncoder(c.ResponseWriter()).Encode(body); err != nil {
		calcLogger.Warn("failed to encode json response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSON(c, status, map[string]string{"error": message})
}
