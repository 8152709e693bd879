package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/models"
)

func (suite *TestSuiteStandard) createTestClient(userID uuid.UUID, name string) models.Client {
	client := models.Client{UserID: userID, Name: name}

	err := models.DB.Create(&client).Error
	if err != nil {
		suite.Assert().FailNow("client could not be saved", "Error: %s", err.Error())
	}

	return client
}

func (suite *TestSuiteStandard) TestInvoiceTotals() {
	items := models.InvoiceItems{
		{Description: "Design", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(500), TaxRate: decimal.NewFromInt(18)},
		{Description: "Hosting", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromFloat(149.50)},
	}

	subtotal, taxAmount, total := items.Totals()

	// 10*500 + 2*149.50 = 5299, tax: 5000*0.18 = 900
	suite.Assert().True(subtotal.Equal(decimal.NewFromInt(5299)), "subtotal is %s", subtotal)
	suite.Assert().True(taxAmount.Equal(decimal.NewFromInt(900)), "tax is %s", taxAmount)
	suite.Assert().True(total.Equal(decimal.NewFromInt(6199)), "total is %s", total)
}

// TestInvoiceTotalsComputed verifies that the totals sent by callers are
// overwritten on create.
func (suite *TestSuiteStandard) TestInvoiceTotalsComputed() {
	user := suite.createTestUser(models.RoleSelfEmployed, "invoice@example.com")
	client := suite.createTestClient(user.ID, "Acme Corp")

	invoice := models.Invoice{
		UserID:        user.ID,
		ClientID:      client.ID,
		InvoiceNumber: "INV-1",
		Items: models.InvoiceItems{
			{Quantity: decimal.NewFromInt(4), Rate: decimal.NewFromInt(250), Amount: decimal.NewFromInt(99999), TaxRate: decimal.NewFromInt(10)},
		},
		// Bogus totals, they must be recomputed
		Subtotal:  decimal.NewFromInt(1),
		TaxAmount: decimal.NewFromInt(2),
		Total:     decimal.NewFromInt(3),
	}

	err := models.DB.Create(&invoice).Error
	suite.Assert().NoError(err)

	suite.Assert().True(invoice.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal is %s", invoice.Subtotal)
	suite.Assert().True(invoice.TaxAmount.Equal(decimal.NewFromInt(100)), "tax is %s", invoice.TaxAmount)
	suite.Assert().True(invoice.Total.Equal(decimal.NewFromInt(1100)), "total is %s", invoice.Total)
	suite.Assert().True(invoice.Items[0].Amount.Equal(decimal.NewFromInt(1000)), "item amount is %s", invoice.Items[0].Amount)

	suite.Assert().Equal(models.StatusDraft, invoice.Status)
	suite.Assert().Equal("INR", invoice.Currency)
}

// TestInvoiceTotalsRecomputedOnSave verifies that changing the items and
// saving recomputes the totals.
func (suite *TestSuiteStandard) TestInvoiceTotalsRecomputedOnSave() {
	user := suite.createTestUser(models.RoleSelfEmployed, "invoice-update@example.com")
	client := suite.createTestClient(user.ID, "Acme Corp")

	invoice := models.Invoice{
		UserID:        user.ID,
		ClientID:      client.ID,
		InvoiceNumber: "INV-2",
		Items: models.InvoiceItems{
			{Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)},
		},
	}
	suite.Assert().NoError(models.DB.Create(&invoice).Error)

	invoice.Items = models.InvoiceItems{
		{Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(5)},
	}
	suite.Assert().NoError(models.DB.Save(&invoice).Error)

	suite.Assert().True(invoice.Subtotal.Equal(decimal.NewFromInt(300)), "subtotal is %s", invoice.Subtotal)
	suite.Assert().True(invoice.TaxAmount.Equal(decimal.NewFromInt(15)), "tax is %s", invoice.TaxAmount)
	suite.Assert().True(invoice.Total.Equal(decimal.NewFromInt(315)), "total is %s", invoice.Total)
}

func (suite *TestSuiteStandard) TestInvoiceStatusInvalid() {
	user := suite.createTestUser(models.RoleSelfEmployed, "status@example.com")
	client := suite.createTestClient(user.ID, "Acme Corp")

	err := models.DB.Create(&models.Invoice{
		UserID:        user.ID,
		ClientID:      client.ID,
		InvoiceNumber: "INV-3",
		Status:        "archived",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrInvoiceStatusInvalid)
}

func (suite *TestSuiteStandard) TestInvoiceNumberUnique() {
	user := suite.createTestUser(models.RoleSelfEmployed, "unique@example.com")
	client := suite.createTestClient(user.ID, "Acme Corp")

	suite.Assert().NoError(models.DB.Create(&models.Invoice{
		UserID: user.ID, ClientID: client.ID, InvoiceNumber: "INV-4",
	}).Error)

	err := models.DB.Create(&models.Invoice{
		UserID: user.ID, ClientID: client.ID, InvoiceNumber: "INV-4",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrInvoiceNumberNotUnique)
}

func (suite *TestSuiteStandard) TestClientNameRequired() {
	user := suite.createTestUser(models.RoleSelfEmployed, "clientname@example.com")

	err := models.DB.Create(&models.Client{UserID: user.ID, Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrClientNameRequired)
}
