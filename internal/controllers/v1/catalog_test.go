package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	v1 "github.com/ledgerline/backend/internal/controllers/v1"
	"github.com/ledgerline/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 20)

	ids := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		ids = append(ids, category.ID)
	}
	assert.Contains(suite.T(), ids, "food")
	assert.Contains(suite.T(), ids, "salary")
}

// The catalogs are static and served without authentication.
func (suite *TestSuiteStandard) TestAccounts() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Cash", "Bank", "Credit Card", "PayPal", "UPI", "Net Banking"}, response.Data)
}
