package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/models"
)

type DashboardResponse struct {
	Data models.DashboardSnapshot `json:"data"`
}

// @Summary		Dashboard
// @Description	Returns the financial snapshot for the caller: balance, cashflow over the last 30 and 90 days, upcoming bills and budget progress. Admins get the snapshot over all users' data.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	httpError
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	identity := identityFrom(c)

	snapshot, err := models.Snapshot(models.DB, identity.UserID, identity.Role, time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: snapshot})
}
