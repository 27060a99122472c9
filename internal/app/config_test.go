package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "defaults are valid",
			cfg:  Config{Rows: 7, SeatsPerRow: 10, BasePrice: "10"},
		},
		{
			name: "decimal base price",
			cfg:  Config{Rows: 3, SeatsPerRow: 5, BasePrice: "12.50"},
		},
		{
			name:    "zero rows",
			cfg:     Config{Rows: 0, SeatsPerRow: 10, BasePrice: "10"},
			wantErr: "rows must be a positive integer",
		},
		{
			name:    "negative seats per row",
			cfg:     Config{Rows: 7, SeatsPerRow: -1, BasePrice: "10"},
			wantErr: "seats per row must be a positive integer",
		},
		{
			name:    "malformed base price",
			cfg:     Config{Rows: 7, SeatsPerRow: 10, BasePrice: "ten"},
			wantErr: `parse base price "ten"`,
		},
		{
			name:    "negative base price",
			cfg:     Config{Rows: 7, SeatsPerRow: 10, BasePrice: "-4"},
			wantErr: "base price must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfigBasePrice(t *testing.T) {
	cfg := Config{Rows: 1, SeatsPerRow: 1, BasePrice: "12.50"}

	base, err := cfg.basePrice()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.50").Equal(base))
}
