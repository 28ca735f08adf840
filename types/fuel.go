package types

import "time"

// FuelRecord is one refueling or charging stop.
type FuelRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	VehicleID    string    `json:"vehicleId"`
	ShiftID      *string   `json:"shiftId,omitempty"`
	PeriodID     *string   `json:"periodId,omitempty"`
	Date         time.Time `json:"date"`
	Odometer     float64   `json:"odometer"`
	Amount       float64   `json:"amount"` // liters or kWh
	PricePerUnit float64   `json:"pricePerUnit"`
	TotalPrice   *float64  `json:"totalPrice,omitempty"`
	FullTank     bool      `json:"fullTank"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Cost returns the total paid, falling back to amount times unit price when
// the receipt total was not entered.
func (f *FuelRecord) Cost() float64 {
	if f.TotalPrice != nil {
		return *f.TotalPrice
	}
	return f.Amount * f.PricePerUnit
}

type FuelRecordCreate struct {
	VehicleID    string    `json:"vehicleId" binding:"required"`
	ShiftID      *string   `json:"shiftId,omitempty"`
	PeriodID     *string   `json:"periodId,omitempty"`
	Date         time.Time `json:"date" binding:"required"`
	Odometer     float64   `json:"odometer"`
	Amount       float64   `json:"amount" binding:"required"`
	PricePerUnit float64   `json:"pricePerUnit"`
	TotalPrice   *float64  `json:"totalPrice,omitempty"`
	FullTank     bool      `json:"fullTank"`
}

type FuelRecordUpdate struct {
	Date         *time.Time `json:"date,omitempty"`
	Odometer     *float64   `json:"odometer,omitempty"`
	Amount       *float64   `json:"amount,omitempty"`
	PricePerUnit *float64   `json:"pricePerUnit,omitempty"`
	TotalPrice   *float64   `json:"totalPrice,omitempty"`
	FullTank     *bool      `json:"fullTank,omitempty"`
}
