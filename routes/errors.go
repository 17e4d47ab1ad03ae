/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingField   = errors.New("missing field")
	errInvalidNumber  = errors.New("invalid number")
	errInvalidInteger = errors.New("invalid whole number")
	errLogoEmpty      = errors.New("logo file is empty")
	errLogoNotImage   = errors.New("logo file is not an image")
)
