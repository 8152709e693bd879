package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/authz"
)

// RegisterRoutes registers all v1 API routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, deps Deps) {
	r.Use(deps.middleware())

	// Registration, login and the static catalogs are the only routes
	// without a bearer credential
	authGroup := r.Group("/auth")
	{
		authGroup.OPTIONS("/register", OptionsRegister)
		authGroup.POST("/register", Register)
		authGroup.OPTIONS("/login", OptionsLogin)
		authGroup.POST("/login", Login)
		authGroup.GET("/me", deps.authenticate(), Me)
	}

	r.GET("/categories", GetCategories)
	r.GET("/accounts", GetAccounts)

	dashboard := r.Group("/dashboard", deps.authenticate())
	{
		dashboard.GET("", deps.authorize(authz.ResourceDashboard, authz.ActionView), GetDashboard)
	}

	transactions := r.Group("/transactions", deps.authenticate())
	{
		transactions.OPTIONS("", OptionsTransactions)
		transactions.GET("", deps.authorize(authz.ResourceTransactions, authz.ActionView), GetTransactions)
		transactions.POST("", deps.authorize(authz.ResourceTransactions, authz.ActionCreate), CreateTransaction)
		transactions.GET("/export.csv", deps.authorize(authz.ResourceTransactions, authz.ActionExport), ExportTransactions)
		transactions.POST("/import.csv", deps.authorize(authz.ResourceTransactions, authz.ActionImport), ImportTransactions)

		transactions.OPTIONS("/:id", OptionsTransactionDetail)
		transactions.GET("/:id", deps.authorize(authz.ResourceTransactions, authz.ActionView), GetTransaction)
		transactions.PUT("/:id", deps.authorize(authz.ResourceTransactions, authz.ActionUpdate), UpdateTransaction)
		transactions.DELETE("/:id", deps.authorize(authz.ResourceTransactions, authz.ActionDelete), DeleteTransaction)
	}

	budgets := r.Group("/budgets", deps.authenticate())
	{
		budgets.OPTIONS("", OptionsBudgets)
		budgets.GET("", deps.authorize(authz.ResourceBudgets, authz.ActionView), GetBudgets)
		budgets.POST("", deps.authorize(authz.ResourceBudgets, authz.ActionCreate), CreateBudget)

		budgets.OPTIONS("/:id", OptionsBudgetDetail)
		budgets.GET("/:id", deps.authorize(authz.ResourceBudgets, authz.ActionView), GetBudget)
		budgets.PUT("/:id", deps.authorize(authz.ResourceBudgets, authz.ActionUpdate), UpdateBudget)
		budgets.DELETE("/:id", deps.authorize(authz.ResourceBudgets, authz.ActionDelete), DeleteBudget)
	}

	clients := r.Group("/clients", deps.authenticate())
	{
		clients.OPTIONS("", OptionsClients)
		clients.GET("", deps.authorize(authz.ResourceClients, authz.ActionView), GetClients)
		clients.POST("", deps.authorize(authz.ResourceClients, authz.ActionCreate), CreateClient)

		clients.OPTIONS("/:id", OptionsClientDetail)
		clients.GET("/:id", deps.authorize(authz.ResourceClients, authz.ActionDetail), GetClient)
		clients.PUT("/:id", deps.authorize(authz.ResourceClients, authz.ActionUpdate), UpdateClient)
		clients.DELETE("/:id", deps.authorize(authz.ResourceClients, authz.ActionDelete), DeleteClient)
	}

	// Invoices are gated by the client permissions, they are part of the
	// client management surface
	invoices := r.Group("/invoices", deps.authenticate())
	{
		invoices.OPTIONS("", OptionsInvoices)
		invoices.GET("", deps.authorize(authz.ResourceClients, authz.ActionView), GetInvoices)
		invoices.POST("", deps.authorize(authz.ResourceClients, authz.ActionCreate), CreateInvoice)

		invoices.OPTIONS("/:id", OptionsInvoiceDetail)
		invoices.GET("/:id", deps.authorize(authz.ResourceClients, authz.ActionDetail), GetInvoice)
		invoices.PUT("/:id", deps.authorize(authz.ResourceClients, authz.ActionUpdate), UpdateInvoice)
		invoices.DELETE("/:id", deps.authorize(authz.ResourceClients, authz.ActionDelete), DeleteInvoice)
	}

	audit := r.Group("/audit", deps.authenticate())
	{
		audit.GET("", deps.authorize(authz.ResourceAudit, authz.ActionView), GetAudit)
	}
}
