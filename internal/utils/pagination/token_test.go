package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		InvoiceDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		InvoiceID:   "3f1c2b7e-0000-4000-8000-000000000001",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	// Current time round-trips with nanosecond precision.
	now := time.Now().UTC()
	decodedNow, err := DecodeToken(EncodeToken(Cursor{InvoiceDate: now, CreatedAt: now, InvoiceID: "x"}))
	require.NoError(t, err)
	assert.True(t, now.Equal(decodedNow.CreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing fields", encode("2024-05-15T00:00:00Z"), "split"},
		{"missing id", encode("2024-05-15T00:00:00Z|2024-05-15T00:00:00Z|"), "split"},
		{"bad date", encode("notadate|2024-05-15T14:30:45Z|id"), "invoice date parse"},
		{"bad created_at", encode("2024-05-15T00:00:00Z|nope|id"), "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
