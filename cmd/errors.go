/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errUnknownOutputFormat = errors.New("output must be text or json")
	errInvalidPort         = errors.New("port must be a number between 1 and 65535")
)
