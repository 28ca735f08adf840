package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestNewOwnership(t *testing.T) {
	tests := []struct {
		name    string
		mode    OwnershipMode
		rent    *float64
		rate    *float64
		wantErr bool
	}{
		{name: "owned", mode: OwnershipOwned},
		{name: "rented with rent", mode: OwnershipRented, rent: floatPtr(280)},
		{name: "rented without rent", mode: OwnershipRented, wantErr: true},
		{name: "rented with zero rent", mode: OwnershipRented, rent: floatPtr(0), wantErr: true},
		{name: "commission with rate", mode: OwnershipCommission, rate: floatPtr(30)},
		{name: "commission without rate", mode: OwnershipCommission, wantErr: true},
		{name: "commission rate over 100", mode: OwnershipCommission, rate: floatPtr(120), wantErr: true},
		{name: "unknown mode", mode: OwnershipMode("LEASED"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOwnership(tt.mode, tt.rent, tt.rate)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, o.Mode())
		})
	}
}

func TestOwnership_WeeklyCost(t *testing.T) {
	assert.Equal(t, 0.0, Owned{}.WeeklyCost(1000))
	assert.Equal(t, 280.0, Rented{WeeklyRent: 280}.WeeklyCost(1000))
	assert.Equal(t, 300.0, Commission{Rate: 30}.WeeklyCost(1000))
}

func TestOwnershipTerms_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		terms OwnershipTerms
		json  string
	}{
		{
			name:  "owned",
			terms: OwnershipTerms{Owned{}},
			json:  `{"mode":"OWNED"}`,
		},
		{
			name:  "rented",
			terms: OwnershipTerms{Rented{WeeklyRent: 280}},
			json:  `{"mode":"RENTED","weeklyRent":280}`,
		},
		{
			name:  "commission",
			terms: OwnershipTerms{Commission{Rate: 30}},
			json:  `{"mode":"COMMISSION","commissionRate":30}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.terms)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var decoded OwnershipTerms
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.terms.Ownership, decoded.Ownership)
		})
	}
}

func TestOwnershipTerms_UnmarshalRejectsInvalid(t *testing.T) {
	var terms OwnershipTerms
	err := json.Unmarshal([]byte(`{"mode":"RENTED"}`), &terms)
	assert.Error(t, err)
}
