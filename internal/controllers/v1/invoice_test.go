package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/ledgerline/backend/internal/controllers/v1"
	"github.com/ledgerline/backend/internal/models"
	"github.com/ledgerline/backend/test"
)

func (suite *TestSuiteStandard) createTestInvoice(headers map[string]string, editable v1.InvoiceEditable) v1.InvoiceResponse {
	if editable.ClientID == uuid.Nil {
		editable.ClientID = suite.createTestClient(headers, v1.ClientEditable{Name: "Invoice Test Client"}).Data.ID
	}
	if editable.InvoiceNumber == "" {
		editable.InvoiceNumber = fmt.Sprintf("INV-%d", suite.invoiceCounter())
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", editable, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) invoiceCounter() int64 {
	var count int64
	_ = models.DB.Model(&models.Invoice{}).Count(&count).Error
	return count + 1
}

// TestInvoiceCreateTotals verifies that the totals in the response come
// from the items, not from the caller.
func (suite *TestSuiteStandard) TestInvoiceCreateTotals() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	response := suite.createTestInvoice(headers, v1.InvoiceEditable{
		Items: models.InvoiceItems{
			{Description: "Design", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(500), TaxRate: decimal.NewFromInt(18)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(299)},
		},
	})

	assert.True(suite.T(), response.Data.Subtotal.Equal(decimal.NewFromInt(5299)), "subtotal is %s", response.Data.Subtotal)
	assert.True(suite.T(), response.Data.TaxAmount.Equal(decimal.NewFromInt(900)), "tax is %s", response.Data.TaxAmount)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(6199)), "total is %s", response.Data.Total)
	assert.Equal(suite.T(), models.StatusDraft, response.Data.Status)
	assert.Equal(suite.T(), "Invoice Test Client", response.Data.ClientName)
}

func (suite *TestSuiteStandard) TestInvoiceCreateInvalid() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)
	client := suite.createTestClient(headers, v1.ClientEditable{Name: "Acme Corp"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"missing client", v1.InvoiceEditable{InvoiceNumber: "INV-X"}, http.StatusBadRequest},
		{"missing number", v1.InvoiceEditable{ClientID: client.Data.ID}, http.StatusBadRequest},
		{"invalid status", v1.InvoiceEditable{ClientID: client.Data.ID, InvoiceNumber: "INV-X", Status: "archived"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoiceClientMustExist() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", map[string]string{
		"clientId":      "a1a8dd50-4f2f-4d95-9d73-e4b7f2d4a1a5",
		"invoiceNumber": "INV-GHOST",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvoiceNumberConflict() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)
	client := suite.createTestClient(headers, v1.ClientEditable{Name: "Acme Corp"})

	body := v1.InvoiceEditable{ClientID: client.Data.ID, InvoiceNumber: "INV-SAME"}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

// TestInvoiceUpdateRecomputesTotals verifies that updating the items
// recomputes all totals over the merged invoice.
func (suite *TestSuiteStandard) TestInvoiceUpdateRecomputesTotals() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	invoice := suite.createTestInvoice(headers, v1.InvoiceEditable{
		Items: models.InvoiceItems{
			{Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)},
		},
	})
	url := fmt.Sprintf("http://example.com/v1/invoices/%s", invoice.Data.ID)

	r := test.Request(suite.T(), http.MethodPut, url, map[string]any{
		"items": models.InvoiceItems{
			{Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(200), TaxRate: decimal.NewFromInt(10)},
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Subtotal.Equal(decimal.NewFromInt(600)), "subtotal is %s", response.Data.Subtotal)
	assert.True(suite.T(), response.Data.TaxAmount.Equal(decimal.NewFromInt(60)), "tax is %s", response.Data.TaxAmount)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(660)), "total is %s", response.Data.Total)
}

func (suite *TestSuiteStandard) TestInvoiceStatusUpdate() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	invoice := suite.createTestInvoice(headers, v1.InvoiceEditable{})
	url := fmt.Sprintf("http://example.com/v1/invoices/%s", invoice.Data.ID)

	// Any status of the closed set can be set at any time
	for _, status := range []models.InvoiceStatus{models.StatusSent, models.StatusPaid, models.StatusCancelled, models.StatusDraft} {
		r := test.Request(suite.T(), http.MethodPut, url, map[string]models.InvoiceStatus{"status": status}, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.InvoiceResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Equal(suite.T(), status, response.Data.Status)
	}
}

// TestInvoiceManagerScope verifies that client managers see and manage
// invoices across users.
func (suite *TestSuiteStandard) TestInvoiceManagerScope() {
	_, selfHeaders := suite.createTestUser(models.RoleSelfEmployed)
	_, cmHeaders := suite.createTestUser(models.RoleClientMgmt)

	invoice := suite.createTestInvoice(selfHeaders, v1.InvoiceEditable{})
	url := fmt.Sprintf("http://example.com/v1/invoices/%s", invoice.Data.ID)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "", cmHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "Invoice Test Client", list.Data[0].ClientName)

	r = test.Request(suite.T(), http.MethodGet, url, "", cmHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestInvoiceDelete() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)
	_, adminHeaders := suite.createTestUser(models.RoleAdmin)

	invoice := suite.createTestInvoice(headers, v1.InvoiceEditable{})
	url := fmt.Sprintf("http://example.com/v1/invoices/%s", invoice.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, url, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, url, "", adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
