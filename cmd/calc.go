/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/renatora1026-bit/Calculadora-renal/clearance"
)

// CmdCalc computes a clearance without starting the web server.
var CmdCalc = newCalcCommand()

func newCalcCommand() *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "Compute creatinine clearance from the command line",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "age",
				Usage:    "age in years",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "weight",
				Usage:    "weight in kg",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  "height",
				Usage: "height in cm (enables body surface area correction)",
			},
			&cli.FloatFlag{
				Name:     "creatinine",
				Usage:    "serum creatinine in mg/dL",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "sex",
				Usage:    "male or female",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Value: "text",
				Usage: "output format: text or json",
			},
		},
		Action: calc,
	}
}

type calcOutput struct {
	Absolute        float64  `json:"absolute"`
	BodySurfaceArea *float64 `json:"bsa,omitempty"`
	Corrected       *float64 `json:"corrected,omitempty"`
	Stage           string   `json:"stage"`
	Advice          string   `json:"advice"`
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#101F38"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

var stageColors = map[clearance.Stage]lipgloss.Color{
	clearance.StageNormal:   lipgloss.Color("#2E7D32"),
	clearance.StageMild:     lipgloss.Color("#7CB342"),
	clearance.StageModerate: lipgloss.Color("#F9A825"),
	clearance.StageSevere:   lipgloss.Color("#EF6C00"),
	clearance.StageTerminal: lipgloss.Color("#C62828"),
}

func calc(ctx context.Context, cmd *cli.Command) error {
	sex, err := clearance.ParseSex(cmd.String("sex"))
	if err != nil {
		return err
	}

	input := clearance.PatientInput{
		Age:            int(cmd.Int("age")),
		WeightKg:       cmd.Float("weight"),
		CreatinineMgDL: cmd.Float("creatinine"),
		Sex:            sex,
	}
	if cmd.IsSet("height") {
		height := cmd.Float("height")
		input.HeightCm = &height
	}

	if err := input.Validate(clearance.DefaultBounds); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	return writeCalculation(cmd.Root().Writer, cmd.String("output"), input)
}

func writeCalculation(w io.Writer, format string, input clearance.PatientInput) error {
	result := clearance.Calculate(input)
	classification := clearance.Classify(result.Absolute, input.Sex)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(calcOutput{
			Absolute:        result.Absolute,
			BodySurfaceArea: result.BodySurfaceArea,
			Corrected:       result.Corrected,
			Stage:           classification.Stage.String(),
			Advice:          classification.Advice,
		})
	case "", "text":
		_, err := fmt.Fprintln(w, renderCalculationText(result, classification))
		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownOutputFormat, format)
	}
}

func renderCalculationText(result clearance.Result, classification clearance.Classification) string {
	rows := []string{
		row("Clearance", fmt.Sprintf("%.2f mL/min", result.Absolute)),
	}

	if result.Corrected != nil && result.BodySurfaceArea != nil {
		rows = append(rows,
			row("BSA", fmt.Sprintf("%.2f m²", *result.BodySurfaceArea)),
			row("Corrected", fmt.Sprintf("%.2f mL/min/1.73 m²", *result.Corrected)),
		)
	}

	stageStyle := lipgloss.NewStyle().Bold(true).Foreground(stageColors[classification.Stage])
	rows = append(rows,
		labelStyle.Render("Stage")+stageStyle.Render(classification.Stage.String()),
		row("Advice", classification.Advice),
	)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
