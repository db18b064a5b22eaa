// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import "errors"

var (
	ErrDuplicateDiscriminator = errors.New("discriminator claimed by more than one variant")
	ErrUnknownDiscriminator   = errors.New("unknown discriminator")
	ErrUnknownReportFamily    = errors.New("unknown report family")
)
