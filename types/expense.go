package types

import "time"

// ExpenseCategory is the closed set of expense kinds. Labels and chart colors
// are attached here once instead of being re-declared per page.
type ExpenseCategory string

const (
	CategoryFuel        ExpenseCategory = "FUEL"
	CategoryMaintenance ExpenseCategory = "MAINTENANCE"
	CategoryInsurance   ExpenseCategory = "INSURANCE"
	CategoryRental      ExpenseCategory = "RENTAL"
	CategoryTolls       ExpenseCategory = "TOLLS"
	CategoryParking     ExpenseCategory = "PARKING"
	CategoryCleaning    ExpenseCategory = "CLEANING"
	CategoryFood        ExpenseCategory = "FOOD"
	CategoryFines       ExpenseCategory = "FINES"
	CategoryOther       ExpenseCategory = "OTHER"
)

var categoryMeta = map[ExpenseCategory]struct {
	label string
	color string
}{
	CategoryFuel:        {label: "Combustível", color: "#EF4444"},
	CategoryMaintenance: {label: "Manutenção", color: "#F97316"},
	CategoryInsurance:   {label: "Seguro", color: "#3B82F6"},
	CategoryRental:      {label: "Aluguer", color: "#8B5CF6"},
	CategoryTolls:       {label: "Portagens", color: "#14B8A6"},
	CategoryParking:     {label: "Estacionamento", color: "#64748B"},
	CategoryCleaning:    {label: "Limpeza", color: "#06B6D4"},
	CategoryFood:        {label: "Alimentação", color: "#84CC16"},
	CategoryFines:       {label: "Multas", color: "#DC2626"},
	CategoryOther:       {label: "Outros", color: "#9CA3AF"},
}

// AllCategories lists every expense category in display order.
func AllCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryFuel, CategoryMaintenance, CategoryInsurance, CategoryRental,
		CategoryTolls, CategoryParking, CategoryCleaning, CategoryFood,
		CategoryFines, CategoryOther,
	}
}

func (c ExpenseCategory) IsValid() bool {
	_, ok := categoryMeta[c]
	return ok
}

// Label returns the human-readable category name.
func (c ExpenseCategory) Label() string {
	return categoryMeta[c].label
}

// Color returns the hex color used for this category in charts.
func (c ExpenseCategory) Color() string {
	return categoryMeta[c].color
}

func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense is a cost booked against a weekly period. Its date must fall inside
// the period's date range.
type Expense struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	PeriodID  string          `json:"periodId"`
	Date      time.Time       `json:"date"`
	Amount    float64         `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ExpenseCreate struct {
	PeriodID string          `json:"periodId" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Amount   float64         `json:"amount" binding:"required"`
	Category ExpenseCategory `json:"category" binding:"required"`
	Notes    string          `json:"notes,omitempty"`
}

type ExpenseUpdate struct {
	Date     *time.Time       `json:"date,omitempty"`
	Amount   *float64         `json:"amount,omitempty"`
	Category *ExpenseCategory `json:"category,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}
