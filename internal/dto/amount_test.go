package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "number", body: `{"v": 12.5}`, want: "12.5"},
		{name: "string", body: `{"v": "1,250.75"}`, want: "1250.75"},
		{name: "null", body: `{"v": null}`, want: "0"},
		{name: "garbage string", body: `{"v": "abc"}`, want: "0"},
		{name: "missing", body: `{}`, want: "0"},
		{name: "negative kept", body: `{"v": -3}`, want: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				V dto.Amount `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.V.Decimal), "got %s", got.V)
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]dto.Amount{"v": dto.NewAmount(decimal.RequireFromString("236.50"))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"v": 236.5}`, string(out))
}
