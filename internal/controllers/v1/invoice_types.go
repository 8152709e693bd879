package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// InvoiceEditable represents all values for an invoice that can be set
// by the API consumer. The subtotal, tax amount and total cannot be set,
// they are always computed from the items.
type InvoiceEditable struct {
	ClientID      uuid.UUID            `json:"clientId" example:"d3c3ffe8-c2ac-4538-9a11-9b6f821e3b34"`
	InvoiceNumber string               `json:"invoiceNumber" example:"INV-2026-0042"`
	Status        models.InvoiceStatus `json:"status" example:"draft"`
	IssueDate     time.Time            `json:"issueDate" example:"2026-02-14T00:00:00Z"`
	DueDate       time.Time            `json:"dueDate" example:"2026-03-14T00:00:00Z"`
	Items         models.InvoiceItems  `json:"items"`
	Currency      string               `json:"currency" example:"INR"`
	Notes         string               `json:"notes" example:"Payable within 30 days"`
}

func (editable InvoiceEditable) model(userID uuid.UUID) models.Invoice {
	return models.Invoice{
		UserID:        userID,
		ClientID:      editable.ClientID,
		InvoiceNumber: editable.InvoiceNumber,
		Status:        editable.Status,
		IssueDate:     editable.IssueDate,
		DueDate:       editable.DueDate,
		Items:         editable.Items,
		Currency:      editable.Currency,
		Notes:         editable.Notes,
	}
}

// merge copies the set fields onto the invoice so that a full save
// recomputes the totals over the merged state.
func (editable InvoiceEditable) merge(invoice *models.Invoice, fields []any) {
	for _, field := range fields {
		switch field {
		case "ClientID":
			invoice.ClientID = editable.ClientID
		case "InvoiceNumber":
			invoice.InvoiceNumber = editable.InvoiceNumber
		case "Status":
			invoice.Status = editable.Status
		case "IssueDate":
			invoice.IssueDate = editable.IssueDate
		case "DueDate":
			invoice.DueDate = editable.DueDate
		case "Items":
			invoice.Items = editable.Items
		case "Currency":
			invoice.Currency = editable.Currency
		case "Notes":
			invoice.Notes = editable.Notes
		}
	}
}

type InvoiceLinks struct {
	Self string `json:"self" example:"https://example.com/v1/invoices/27f4d0b4-e8cd-4e39-be0b-8a286b6e5e21"`
}

// Invoice is the API representation of an invoice. The client contact
// data is joined in for list and detail views.
type Invoice struct {
	models.Invoice
	ClientName  string       `json:"clientName" example:"Acme Corp"`
	ClientEmail string       `json:"clientEmail" example:"billing@acme.example"`
	Links       InvoiceLinks `json:"links"`
}

func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	url := httputil.RequestHost(c)

	return Invoice{
		Invoice:     model,
		ClientName:  model.Client.Name,
		ClientEmail: model.Client.Email,
		Links: InvoiceLinks{
			Self: fmt.Sprintf("%s/v1/invoices/%s", url, model.ID),
		},
	}
}

type InvoiceResponse struct {
	Data Invoice `json:"data"`
}

type InvoiceListResponse struct {
	Data []Invoice `json:"data"`
}
