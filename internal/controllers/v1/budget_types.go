package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// BudgetEditable represents all values for a budget that can be set by
// the API consumer.
type BudgetEditable struct {
	CategoryID string          `json:"categoryId" example:"groceries"`
	Target     decimal.Decimal `json:"target" example:"10000"`
	StartDate  time.Time       `json:"startDate" example:"2026-02-01T00:00:00Z"`
	EndDate    time.Time       `json:"endDate" example:"2026-02-28T00:00:00Z"`
	Notes      string          `json:"notes" example:"February food budget"`
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Target:     editable.Target,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
		Notes:      editable.Notes,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.RequestHost(c)

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetResponse struct {
	Data Budget `json:"data"`
}

type BudgetListResponse struct {
	Data []Budget `json:"data"`
}
