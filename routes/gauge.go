/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/renatora1026-bit/Calculadora-renal/clearance"
)

const (
	gaugeChartID = "clearance_gauge"
	gaugeTitle   = "Clearance (mL/min)"
)

// gaugeAxisStop is one [fraction, colour] pair of the gauge axis line.
type gaugeAxisStop [2]interface{}

// gaugeOverrides is merged into the rendered chart on the page. The
// go-echarts gauge options cannot express a banded axis line.
type gaugeOverrides struct {
	Series []gaugeSeriesOverride `json:"series"`
}

type gaugeSeriesOverride struct {
	Min      float64                `json:"min"`
	Max      float64                `json:"max"`
	AxisLine gaugeAxisLine          `json:"axisLine"`
	Pointer  map[string]interface{} `json:"pointer"`
}

type gaugeAxisLine struct {
	LineStyle struct {
		Width int             `json:"width"`
		Color []gaugeAxisStop `json:"color"`
	} `json:"lineStyle"`
}

// renderGauge builds the clearance gauge with the pointer at value.
func renderGauge(value float64) (string, error) {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "340px",
			ChartID: gaugeChartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: gaugeTitle,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(false),
		}),
	)

	gauge.AddSeries(gaugeTitle, []opts.GaugeData{
		{Name: "mL/min", Value: roundTo(value, 2)},
	})

	var buf bytes.Buffer
	if err := gauge.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// gaugeBandOverrides returns the JSON option that colours the gauge axis with
// the clearance bands.
func gaugeBandOverrides() (string, error) {
	bands := clearance.Bands()

	series := gaugeSeriesOverride{
		Min:     0,
		Max:     clearance.GaugeMax,
		Pointer: map[string]interface{}{"itemStyle": map[string]string{"color": "darkblue"}},
	}
	series.AxisLine.LineStyle.Width = 24
	for _, band := range bands {
		series.AxisLine.LineStyle.Color = append(series.AxisLine.LineStyle.Color,
			gaugeAxisStop{band.To / clearance.GaugeMax, band.Color})
	}

	encoded, err := json.Marshal(gaugeOverrides{Series: []gaugeSeriesOverride{series}})
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
