// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import "errors"

var (
	ErrUnknownConcept   = errors.New("unknown code concept")
	ErrUnknownScope     = errors.New("unknown code scope")
	ErrDuplicateConcept = errors.New("code concept defined twice")
	ErrDuplicateScope   = errors.New("code scope defined twice")
	ErrScopeNotSubset   = errors.New("scoped code set is not a subset of its domain")
)
