package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeEnvelope splits a report file into header and items.
func TestDecodeEnvelope(t *testing.T) {
	envelope, err := DecodeEnvelope(strings.NewReader(`{
		"reporter_id": "200000-0000",
		"reported_payment_type": "CT0",
		"items": [{"transaction_value": 10.50}, 7]
	}`))
	require.NoError(t, err)

	assert.Equal(t, RawRecord{"reporter_id": "200000-0000", "reported_payment_type": "CT0"}, envelope.Header)
	require.Len(t, envelope.Items, 2)

	item, ok := envelope.Items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("10.50"), item["transaction_value"], "decimals keep their text")
	assert.Equal(t, json.Number("7"), envelope.Items[1])
}

func TestDecodeEnvelope_Items(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantNil bool
	}{
		{name: "missing items", body: `{"reporter_id": "x"}`, wantNil: true},
		{name: "null items", body: `{"items": null}`, wantNil: true},
		{name: "empty items", body: `{"items": []}`},
		{name: "items not a list", body: `{"items": {"id": 1}}`, wantErr: ErrItemsNotList},
		{name: "not an object", body: `[1, 2]`, wantErr: ErrMalformedEnvelope},
		{name: "null document", body: `null`, wantErr: ErrMalformedEnvelope},
		{name: "truncated", body: `{"items": [`, wantErr: ErrMalformedEnvelope},
		{name: "second object", body: `{"items": []} {"evil": 1}`, wantErr: ErrMalformedEnvelope},
		{name: "trailing garbage", body: `{"items": []} garbage`, wantErr: ErrMalformedEnvelope},
		{name: "trailing brace", body: `{"items": []}}`, wantErr: ErrMalformedEnvelope},
		{name: "trailing whitespace", body: "{\"items\": []}\n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := DecodeEnvelope(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, envelope)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNil, envelope.Items == nil)
			assert.Empty(t, envelope.Items)
		})
	}
}

func TestRawRecord_Has(t *testing.T) {
	raw := RawRecord{"a": "x", "b": nil}

	assert.True(t, raw.Has("a"))
	assert.False(t, raw.Has("b"), "null is absent")
	assert.False(t, raw.Has("c"))
}
