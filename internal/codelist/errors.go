// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codelist

import "errors"

var (
	ErrLoad         = errors.New("error loading code lists")
	ErrUnknownList  = errors.New("unknown code list")
	ErrEmptyList    = errors.New("code list is empty")
	ErrMissingList  = errors.New("code list is missing")
	ErrNotDirectory = errors.New("code list path is not a directory")
)
