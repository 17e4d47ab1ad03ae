/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/template"

	"github.com/renatora1026-bit/Calculadora-renal/notes"
	"github.com/renatora1026-bit/Calculadora-renal/utils"
)

// About renders the reference notes.
func About(t template.Template, data template.Data) {
	data["IsAbout"] = true
	data["NotesTitle"] = utils.ExtractTitle(notes.Reference)

	rendered, err := utils.ParseOrgToHTML(notes.Reference)
	if err != nil {
		calcLogger.Error("failed to render reference notes", "error", err)
		data["Error"] = "Failed to load the reference notes"
	} else {
		data["Notes"] = htmltemplate.HTML(rendered)
	}

	t.HTML(http.StatusOK, "about")
}
