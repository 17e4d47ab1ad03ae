/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/renatora1026-bit/Calculadora-renal/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "calculadora-renal",
		Usage: "Creatinine clearance calculator (Cockcroft-Gault)",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdCalc,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
