// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import "errors"

var (
	ErrDefinition       = errors.New("invalid record definition")
	ErrDuplicateVariant = errors.New("duplicate record variant")
)
