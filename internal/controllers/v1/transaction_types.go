package v1

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// TransactionEditable represents all values for a transaction that can be
// set by the API consumer.
type TransactionEditable struct {
	Date       time.Time              `json:"date" form:"date" time_format:"2006-01-02" time_utc:"1" example:"2026-02-14"`
	Amount     decimal.Decimal        `json:"amount" form:"amount" example:"2150.50"`
	Currency   string                 `json:"currency" form:"currency" example:"INR"`
	Type       models.TransactionType `json:"type" form:"type" example:"expense"`
	CategoryID string                 `json:"categoryId" form:"categoryId" example:"groceries"`
	Account    string                 `json:"account" form:"account" example:"Cash"`
	Tags       []string               `json:"tags" form:"tags" example:"food,weekly"`
	Vendor     string                 `json:"vendor" form:"vendor" example:"Big Bazaar"`
	Client     string                 `json:"client" form:"client" example:""`
	ProjectID  string                 `json:"projectId" form:"projectId" example:""`
	InvoiceID  string                 `json:"invoiceId" form:"invoiceId" example:""`
	ReceiptURL string                 `json:"receiptUrl" form:"receiptUrl" example:"/uploads/9e519baa.png"`
	Reconciled bool                   `json:"reconciled" form:"reconciled" example:"false"`
	Notes      string                 `json:"notes" form:"notes" example:"Weekly groceries"`
	Splits     json.RawMessage        `json:"splits" form:"splits" swaggertype:"object"`
}

// model returns the database resource for this editable.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:     userID,
		Date:       editable.Date,
		Amount:     editable.Amount,
		Currency:   editable.Currency,
		Type:       editable.Type,
		CategoryID: editable.CategoryID,
		Account:    editable.Account,
		Tags:       editable.Tags,
		Vendor:     editable.Vendor,
		Client:     editable.Client,
		ProjectID:  editable.ProjectID,
		InvoiceID:  editable.InvoiceID,
		ReceiptURL: editable.ReceiptURL,
		Reconciled: editable.Reconciled,
		Notes:      editable.Notes,
		Splits:     editable.Splits,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestHost(c)

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionResponse struct {
	Data Transaction `json:"data"`
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"`
}

type ImportResponse struct {
	Imported int `json:"imported" example:"42"`
}
