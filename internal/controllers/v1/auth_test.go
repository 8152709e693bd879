package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/ledgerline/backend/internal/controllers/v1"
	"github.com/ledgerline/backend/internal/models"
	"github.com/ledgerline/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"success", v1.RegisterRequest{Email: "jane@example.com", Password: "hunter2", Role: models.RoleSalary}, http.StatusCreated},
		{"missing password", v1.RegisterRequest{Email: "jane2@example.com", Role: models.RoleSalary}, http.StatusBadRequest},
		{"missing email", v1.RegisterRequest{Password: "hunter2", Role: models.RoleSalary}, http.StatusBadRequest},
		{"missing role", v1.RegisterRequest{Email: "jane3@example.com", Password: "hunter2"}, http.StatusBadRequest},
		{"admin is not self-assignable", v1.RegisterRequest{Email: "mallory@example.com", Password: "hunter2", Role: models.RoleAdmin}, http.StatusBadRequest},
		{"unknown role", v1.RegisterRequest{Email: "jane4@example.com", Password: "hunter2", Role: "superuser"}, http.StatusBadRequest},
		{"broken body", `{ "email": "`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterResponse() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterRequest{
		Email: "Jane@Example.com", Password: "hunter2", Role: models.RoleSelfEmployed,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RegisterResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "jane@example.com", response.Email)
	assert.Equal(suite.T(), models.RoleSelfEmployed, response.Role)
	assert.NotEmpty(suite.T(), response.ID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := v1.RegisterRequest{Email: "taken@example.com", Password: "hunter2", Role: models.RoleSalary}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestLogin() {
	register := v1.RegisterRequest{Email: "login@example.com", Password: "hunter2", Role: models.RoleSalary}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", register)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name   string
		body   v1.LoginRequest
		status int
	}{
		{"success", v1.LoginRequest{Email: "login@example.com", Password: "hunter2"}, http.StatusOK},
		{"wrong password", v1.LoginRequest{Email: "login@example.com", Password: "wrong"}, http.StatusUnauthorized},
		{"unknown email", v1.LoginRequest{Email: "nobody@example.com", Password: "hunter2"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestLoginMixedCaseEmail verifies that login succeeds with the email
// exactly as it was typed at registration, before normalization.
func (suite *TestSuiteStandard) TestLoginMixedCaseEmail() {
	register := v1.RegisterRequest{Email: "Jane@Example.com", Password: "hunter2", Role: models.RoleSalary}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", register)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	for _, email := range []string{"Jane@Example.com", "jane@example.com", " JANE@EXAMPLE.COM "} {
		r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{Email: email, Password: "hunter2"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}

// TestLoginTokenWorks verifies that a token from the login response
// authenticates follow-up requests.
func (suite *TestSuiteStandard) TestLoginTokenWorks() {
	register := v1.RegisterRequest{Email: "token@example.com", Password: "hunter2", Role: models.RoleSalary}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", register)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{Email: "token@example.com", Password: "hunter2"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var login v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &login)
	assert.Equal(suite.T(), models.RoleSalary, login.Role)
	assert.NotEmpty(suite.T(), login.Token)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", "", test.BearerHeaders(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestMeUnauthorized() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"no bearer prefix", map[string]string{"Authorization": "sometoken"}},
		{"empty token", map[string]string{"Authorization": "Bearer "}},
		{"garbage token", map[string]string{"Authorization": "Bearer garbage"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/auth/me", "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	for _, path := range []string{"register", "login"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/auth/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
	}
}
