package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/ledgerline/backend/internal/controllers/v1"
	"github.com/ledgerline/backend/internal/models"
	"github.com/ledgerline/backend/test"
)

func (suite *TestSuiteStandard) createTestClient(headers map[string]string, editable v1.ClientEditable) v1.ClientResponse {
	if editable.Name == "" {
		editable.Name = "Acme Corp"
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/clients", editable, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ClientResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestClientCreate() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	response := suite.createTestClient(headers, v1.ClientEditable{
		Name:  "  Globex  ",
		Email: "billing@globex.example",
		GSTIN: "29ABCDE1234F1Z5",
	})

	assert.Equal(suite.T(), "Globex", response.Data.Name)
	assert.Equal(suite.T(), "billing@globex.example", response.Data.Email)
	assert.Contains(suite.T(), response.Data.Links.Self, "/v1/clients/")
}

func (suite *TestSuiteStandard) TestClientNameRequired() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/clients", v1.ClientEditable{Name: "   "}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestClientMatrix verifies the role gates on the clients collection.
func (suite *TestSuiteStandard) TestClientMatrix() {
	tests := []struct {
		role   models.Role
		status int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleClientMgmt, http.StatusOK},
		{models.RoleSelfEmployed, http.StatusOK},
		{models.RoleAccountant, http.StatusOK},
		{models.RoleSalary, http.StatusForbidden},
		{models.RoleViewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.role), func(t *testing.T) {
			_, headers := suite.createTestUser(tt.role)

			r := test.Request(t, http.MethodGet, "http://example.com/v1/clients", "", headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestClientManagerScope verifies that client managers work across all
// users' clients.
func (suite *TestSuiteStandard) TestClientManagerScope() {
	_, selfHeaders := suite.createTestUser(models.RoleSelfEmployed)
	_, otherHeaders := suite.createTestUser(models.RoleSelfEmployed)
	_, cmHeaders := suite.createTestUser(models.RoleClientMgmt)

	client := suite.createTestClient(selfHeaders, v1.ClientEditable{Name: "Acme Corp"})
	suite.createTestClient(otherHeaders, v1.ClientEditable{Name: "Globex"})

	// The list spans all users
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/clients", "", cmHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ClientListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)

	// Detail and update work on other users' records
	url := fmt.Sprintf("http://example.com/v1/clients/%s", client.Data.ID)

	r = test.Request(suite.T(), http.MethodGet, url, "", cmHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPut, url, map[string]string{"phone": "+91 98765 43210"}, cmHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The owner list stays scoped to their own records
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/clients", "", selfHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

// TestClientOwnership verifies that self employed users cannot touch
// other users' clients.
func (suite *TestSuiteStandard) TestClientOwnership() {
	_, selfHeaders := suite.createTestUser(models.RoleSelfEmployed)
	_, otherHeaders := suite.createTestUser(models.RoleSelfEmployed)

	client := suite.createTestClient(selfHeaders, v1.ClientEditable{})
	url := fmt.Sprintf("http://example.com/v1/clients/%s", client.Data.ID)

	r := test.Request(suite.T(), http.MethodGet, url, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	var body struct {
		Reason string `json:"reason"`
	}
	test.DecodeResponse(suite.T(), &r, &body)
	assert.Equal(suite.T(), "not_owner", body.Reason)
}

func (suite *TestSuiteStandard) TestClientDelete() {
	_, headers := suite.createTestUser(models.RoleSelfEmployed)
	_, adminHeaders := suite.createTestUser(models.RoleAdmin)

	client := suite.createTestClient(headers, v1.ClientEditable{})
	url := fmt.Sprintf("http://example.com/v1/clients/%s", client.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, url, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, url, "", adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
