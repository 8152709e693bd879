package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// InvoiceStatus is the lifecycle state of an invoice.
//
// There is no enforced transition order, any status of the closed set can
// be set at any time.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether the status is part of the closed status set.
func (s InvoiceStatus) Valid() bool {
	return slices.Contains([]InvoiceStatus{StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled}, s)
}

// InvoiceItem is a single line item on an invoice.
//
// Amount is computed from Quantity and Rate, values sent by callers
// are overwritten.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// InvoiceItems is the list of line items on an invoice.
type InvoiceItems []InvoiceItem

// Totals computes the subtotal, tax amount and total over all items.
//
// Per item: amount = quantity * rate, tax = amount * taxRate / 100.
// No rounding happens mid-computation.
func (items InvoiceItems) Totals() (subtotal, taxAmount, total decimal.Decimal) {
	oneHundred := decimal.NewFromInt(100)

	for _, item := range items {
		amount := item.Quantity.Mul(item.Rate)
		subtotal = subtotal.Add(amount)
		taxAmount = taxAmount.Add(amount.Mul(item.TaxRate).Div(oneHundred))
	}

	return subtotal, taxAmount, subtotal.Add(taxAmount)
}

// Invoice is a bill issued to a client.
type Invoice struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId"`
	User          User            `json:"-"`
	ClientID      uuid.UUID       `json:"clientId"`
	Client        Client          `json:"-"`
	InvoiceNumber string          `json:"invoiceNumber" gorm:"uniqueIndex"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Items         InvoiceItems    `json:"items" gorm:"serializer:json"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:DECIMAL(20,8)"`
	TaxAmount     decimal.Decimal `json:"taxAmount" gorm:"type:DECIMAL(20,8)"`
	Total         decimal.Decimal `json:"total" gorm:"type:DECIMAL(20,8)"`
	Currency      string          `json:"currency"`
	Notes         string          `json:"notes"`
}

// BeforeSave validates the status and recomputes all totals from the items.
//
// The totals are never taken from the caller, they are overwritten on every
// create and every update that goes through a full save.
func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	if i.Status == "" {
		i.Status = StatusDraft
	}

	if !i.Status.Valid() {
		return ErrInvoiceStatusInvalid
	}

	if i.Currency == "" {
		i.Currency = "INR"
	}

	i.InvoiceNumber = strings.TrimSpace(i.InvoiceNumber)

	for idx, item := range i.Items {
		i.Items[idx].Amount = item.Quantity.Mul(item.Rate)
	}

	i.Subtotal, i.TaxAmount, i.Total = i.Items.Totals()

	i.IssueDate = i.IssueDate.In(time.UTC)
	i.DueDate = i.DueDate.In(time.UTC)

	return nil
}

// AfterFind updates the dates to use UTC as timezone, not +0000.
func (i *Invoice) AfterFind(_ *gorm.DB) error {
	i.IssueDate = i.IssueDate.In(time.UTC)
	i.DueDate = i.DueDate.In(time.UTC)
	return nil
}
