package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/models"
)

type AuditListResponse struct {
	Data []models.AuditEvent `json:"data"`
}

// @Summary		List audit events
// @Description	Returns the recorded authorization decisions, newest first
// @Tags			Audit
// @Produce		json
// @Success		200	{object}	AuditListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/audit [get]
func GetAudit(c *gin.Context) {
	var events []models.AuditEvent
	err := models.DB.Order("datetime(timestamp) DESC, datetime(created_at) DESC").Find(&events).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuditListResponse{Data: events})
}
