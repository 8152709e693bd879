package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending target for a category within a date range.
//
// The spent sum and the progress are not stored, they are derived from the
// expense transactions matching the budget, see Snapshot.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId"`
	User       User            `json:"-"`
	CategoryID string          `json:"categoryId"`
	Target     decimal.Decimal `json:"target" gorm:"type:DECIMAL(20,8)"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Notes      string          `json:"notes"`
}

// BeforeSave validates the target and sets the timezone for the dates to UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Target.IsNegative() {
		return ErrBudgetTargetNegative
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)

	return nil
}

// AfterFind updates the dates to use UTC as timezone, not +0000.
func (b *Budget) AfterFind(_ *gorm.DB) error {
	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}
