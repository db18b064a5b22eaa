// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedEnvelope is returned by [DecodeEnvelope] when the input is
	// not a single JSON object.
	ErrMalformedEnvelope = errors.New("malformed report envelope")
	// ErrItemsNotList is returned by [DecodeEnvelope] when the items member
	// is present but is not a JSON array.
	ErrItemsNotList = errors.New("report items must be a list")
)

// ItemsField is the envelope member that carries the raw item records.
const ItemsField = "items"

// RawRecord is one undecoded record: the header of a report file or a single
// item. Numbers are kept as [json.Number] so that decimal amounts are never
// rounded through float64.
type RawRecord map[string]any

// Has reports whether the record carries a non-null value for name.
// JSON null is treated as absent.
func (r RawRecord) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

// ReportEnvelope is one submitted report file split into its header and its
// raw items.
type ReportEnvelope struct {
	// Header holds every top-level member of the file except items.
	Header RawRecord

	// Items holds the raw item records in file order. Elements that are not
	// JSON objects are kept as-is and rejected per item during validation.
	Items []any
}

// DecodeEnvelope reads a single report file from r. Anything but whitespace
// after the report object is rejected.
//
// The decoder keeps numbers as [json.Number]. A missing items member yields
// an envelope with nil Items; rejection of empty files is left to the
// validation engine.
func DecodeEnvelope(r io.Reader) (*ReportEnvelope, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if raw == nil {
		return nil, ErrMalformedEnvelope
	}
	if err := decoder.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the report object", ErrMalformedEnvelope)
	}

	envelope := &ReportEnvelope{Header: make(RawRecord, len(raw))}
	for name, value := range raw {
		if name != ItemsField {
			envelope.Header[name] = value
			continue
		}

		if value == nil {
			continue
		}
		items, ok := value.([]any)
		if !ok {
			return nil, ErrItemsNotList
		}
		envelope.Items = items
	}

	return envelope, nil
}
