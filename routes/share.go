/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"

	"github.com/flamego/flamego"
	"github.com/skip2/go-qrcode"
)

// BaseURLEnvVar overrides the origin used in share links.
const BaseURLEnvVar = "BASE_URL"

const resultPath = "/result"

// shareURL returns an absolute permalink that reproduces a calculation.
func shareURL(c flamego.Context, form CalculatorForm) string {
	return requestOrigin(c) + resultPath + "?" + form.Values().Encode()
}

func requestOrigin(c flamego.Context) string {
	if base := strings.TrimRight(strings.TrimSpace(os.Getenv(BaseURLEnvVar)), "/"); base != "" {
		return base
	}

	scheme := "http"
	if c.Request().TLS != nil || strings.EqualFold(c.Request().Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}

	return scheme + "://" + c.Request().Host
}

// shareQRCode renders value as a PNG QR code data URL.
func shareQRCode(value string) (htmltemplate.URL, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return htmltemplate.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}
