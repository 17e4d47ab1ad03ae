/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

const logoMissingWarning = "Logo image could not be loaded."

// Logo is the optional page logo read once at startup.
type Logo struct {
	Data        []byte
	ContentType string
}

// LoadLogo reads an image file from disk.
func LoadLogo(path string) (*Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}

	if len(data) == 0 {
		return nil, errLogoEmpty
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s", errLogoNotImage, contentType)
	}

	return &Logo{Data: data, ContentType: contentType}, nil
}

// LogoInjector tells templates whether a logo is available. A nil logo shows
// a warning banner instead.
func LogoInjector(logo *Logo) flamego.Handler {
	return func(data template.Data) {
		if logo == nil {
			data["LogoWarning"] = logoMissingWarning
			return
		}

		data["HasLogo"] = true
	}
}

// ServeLogo writes the logo, or 404 when none was loaded.
func ServeLogo(logo *Logo) flamego.Handler {
	return func(c flamego.Context) {
		if logo == nil {
			c.ResponseWriter().WriteHeader(http.StatusNotFound)
			return
		}

		header := c.ResponseWriter().Header()
		header.Set("Content-Type", logo.ContentType)
		header.Set("Content-Length", strconv.Itoa(len(logo.Data)))
		header.Set("Cache-Control", "public, max-age=86400")
		c.ResponseWriter().WriteHeader(http.StatusOK)
		_, _ = c.ResponseWriter().Write(logo.Data)
	}
}
