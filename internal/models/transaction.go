package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is part of the closed type set.
func (t TransactionType) Valid() bool {
	return slices.Contains([]TransactionType{TypeIncome, TypeExpense}, t)
}

// Transaction represents a single income or expense record owned by a user.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId"`
	User       User            `json:"-"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Currency   string          `json:"currency"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"categoryId"`
	Account    string          `json:"account"`
	Tags       []string        `json:"tags" gorm:"serializer:json"`
	Vendor     string          `json:"vendor"`
	Client     string          `json:"client"`
	ProjectID  string          `json:"projectId"`
	InvoiceID  string          `json:"invoiceId"`
	ReceiptURL string          `json:"receiptUrl"`
	Reconciled bool            `json:"reconciled"`
	Notes      string          `json:"notes"`
	Splits     json.RawMessage `json:"splits" gorm:"serializer:json"` // Uninterpreted structured data
}

// BeforeSave validates the type and amount, applies defaults and sets
// the timezone for the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Currency == "" {
		t.Currency = "INR"
	}

	if t.Account == "" {
		t.Account = "Cash"
	}

	// The category falls back to the catch-all category for the type
	if t.CategoryID == "" {
		t.CategoryID = string(t.Type)
		if t.Type == TypeExpense {
			t.CategoryID = "expense"
		}
	}

	t.Notes = strings.TrimSpace(t.Notes)

	return nil
}

// BeforeUpdate verifies the values a transaction is updated with.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Type") && !toSave.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if tx.Statement.Changed("Amount") && !toSave.Amount.IsPositive() {
		return ErrTransactionAmountInvalid
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
