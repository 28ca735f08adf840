package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type FuelType string

const (
	FuelTypeGasoline FuelType = "GASOLINE"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeLPG      FuelType = "LPG"
)

func (f FuelType) IsValid() bool {
	switch f {
	case FuelTypeGasoline, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid, FuelTypeLPG:
		return true
	default:
		return false
	}
}

type OwnershipMode string

const (
	OwnershipOwned      OwnershipMode = "OWNED"
	OwnershipRented     OwnershipMode = "RENTED"
	OwnershipCommission OwnershipMode = "COMMISSION"
)

// Ownership is the vehicle's ownership arrangement. Each mode carries exactly
// the fields it needs, so a rented vehicle without a weekly rent cannot be
// represented.
type Ownership interface {
	Mode() OwnershipMode
	// WeeklyCost returns what the arrangement costs the driver for one week,
	// given the gross earnings of that week.
	WeeklyCost(grossEarnings float64) float64
}

// Owned is a vehicle the driver owns outright.
type Owned struct{}

func (Owned) Mode() OwnershipMode        { return OwnershipOwned }
func (Owned) WeeklyCost(float64) float64 { return 0 }

// Rented is a vehicle on a fixed weekly rent.
type Rented struct {
	WeeklyRent float64 `json:"weeklyRent"`
}

func (r Rented) Mode() OwnershipMode        { return OwnershipRented }
func (r Rented) WeeklyCost(float64) float64 { return r.WeeklyRent }

// Commission is a vehicle provided against a percentage of gross earnings.
type Commission struct {
	Rate float64 `json:"commissionRate"` // percent of gross
}

func (c Commission) Mode() OwnershipMode { return OwnershipCommission }
func (c Commission) WeeklyCost(gross float64) float64 {
	return gross * c.Rate / 100
}

type ownershipJSON struct {
	Mode           OwnershipMode `json:"mode"`
	WeeklyRent     *float64      `json:"weeklyRent,omitempty"`
	CommissionRate *float64      `json:"commissionRate,omitempty"`
}

// NewOwnership builds an Ownership from its flat representation, rejecting
// combinations such as a rented vehicle without a rent amount.
func NewOwnership(mode OwnershipMode, weeklyRent, commissionRate *float64) (Ownership, error) {
	switch mode {
	case OwnershipOwned:
		return Owned{}, nil
	case OwnershipRented:
		if weeklyRent == nil || *weeklyRent <= 0 {
			return nil, fmt.Errorf("rented vehicle requires a positive weekly rent")
		}
		return Rented{WeeklyRent: *weeklyRent}, nil
	case OwnershipCommission:
		if commissionRate == nil || *commissionRate <= 0 || *commissionRate > 100 {
			return nil, fmt.Errorf("commission vehicle requires a rate between 0 and 100")
		}
		return Commission{Rate: *commissionRate}, nil
	default:
		return nil, fmt.Errorf("unknown ownership mode %q", mode)
	}
}

// OwnershipTerms wraps Ownership so it can live in JSON payloads with a
// {"mode": ...} envelope.
type OwnershipTerms struct {
	Ownership
}

func (t OwnershipTerms) MarshalJSON() ([]byte, error) {
	out := ownershipJSON{Mode: t.Mode()}
	switch o := t.Ownership.(type) {
	case Rented:
		out.WeeklyRent = &o.WeeklyRent
	case Commission:
		out.CommissionRate = &o.Rate
	}
	return json.Marshal(out)
}

func (t *OwnershipTerms) UnmarshalJSON(data []byte) error {
	var raw ownershipJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o, err := NewOwnership(raw.Mode, raw.WeeklyRent, raw.CommissionRate)
	if err != nil {
		return err
	}
	t.Ownership = o
	return nil
}

// Vehicle is a car the driver works with. At most one vehicle per user is the
// default.
type Vehicle struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Make      string         `json:"make"`
	Model     string         `json:"model"`
	Year      int            `json:"year"`
	FuelType  FuelType       `json:"fuelType"`
	Ownership OwnershipTerms `json:"ownership"`
	IsDefault bool           `json:"isDefault"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type VehicleCreate struct {
	Make      string         `json:"make" binding:"required"`
	Model     string         `json:"model" binding:"required"`
	Year      int            `json:"year" binding:"required"`
	FuelType  FuelType       `json:"fuelType" binding:"required"`
	Ownership OwnershipTerms `json:"ownership"`
	IsDefault bool           `json:"isDefault"`
}

type VehicleUpdate struct {
	Make      *string         `json:"make,omitempty"`
	Model     *string         `json:"model,omitempty"`
	Year      *int            `json:"year,omitempty"`
	FuelType  *FuelType       `json:"fuelType,omitempty"`
	Ownership *OwnershipTerms `json:"ownership,omitempty"`
}
