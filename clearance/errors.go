/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package clearance

import "errors"

var (
	ErrUnknownSex           = errors.New("sex must be male or female")
	ErrAgeOutOfRange        = errors.New("age out of range")
	ErrWeightOutOfRange     = errors.New("weight out of range")
	ErrHeightOutOfRange     = errors.New("height out of range")
	ErrCreatinineOutOfRange = errors.New("creatinine out of range")
)
