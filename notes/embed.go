/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package notes

import _ "embed"

// Reference is the org-mode source of the reference notes page.
//
//go:embed reference.org
var Reference string
