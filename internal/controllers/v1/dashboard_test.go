package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/ledgerline/backend/internal/controllers/v1"
	"github.com/ledgerline/backend/internal/models"
	"github.com/ledgerline/backend/test"
)

func (suite *TestSuiteStandard) TestDashboard() {
	_, headers := suite.createTestUser(models.RoleSalary)

	suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(5000),
		Type:   models.TypeIncome,
	})
	suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount:     decimal.NewFromInt(1200),
		Type:       models.TypeExpense,
		CategoryID: "food",
	})
	suite.createTestBudget(headers, v1.BudgetEditable{
		CategoryID: "food",
		Target:     decimal.NewFromInt(2000),
		StartDate:  time.Now().AddDate(0, 0, -7),
		EndDate:    time.Now().AddDate(0, 0, 7),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(3800)), "balance is %s", response.Data.Balance)
	assert.True(suite.T(), response.Data.Cashflow30d.Equal(decimal.NewFromInt(3800)), "cashflow is %s", response.Data.Cashflow30d)

	require.Len(suite.T(), response.Data.Budgets, 1)
	budget := response.Data.Budgets[0]
	assert.True(suite.T(), budget.Used.Equal(decimal.NewFromInt(1200)), "used is %s", budget.Used)
	assert.Equal(suite.T(), int64(60), budget.Progress)
}

// TestDashboardScope verifies that non-admin callers only see their own
// records aggregated.
func (suite *TestSuiteStandard) TestDashboardScope() {
	_, aliceHeaders := suite.createTestUser(models.RoleSalary)
	_, bobHeaders := suite.createTestUser(models.RoleSelfEmployed)

	suite.createTestTransaction(aliceHeaders, v1.TransactionEditable{
		Amount: decimal.NewFromInt(100),
		Type:   models.TypeIncome,
	})
	suite.createTestTransaction(bobHeaders, v1.TransactionEditable{
		Amount: decimal.NewFromInt(40),
		Type:   models.TypeExpense,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "", aliceHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(100)), "balance is %s", response.Data.Balance)

	_, adminHeaders := suite.createTestUser(models.RoleAdmin)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "", adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(60)), "balance is %s", response.Data.Balance)
}

// TestDashboardViewer verifies that the read-only viewer role can see
// the dashboard.
func (suite *TestSuiteStandard) TestDashboardViewer() {
	_, headers := suite.createTestUser(models.RoleViewer)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
