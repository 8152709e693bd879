package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/catalog"
)

type CategoryListResponse struct {
	Data []catalog.Category `json:"data"`
}

type AccountListResponse struct {
	Data []string `json:"data"`
}

// @Summary		List categories
// @Description	Returns the static category catalog
// @Tags			Catalog
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: catalog.Categories()})
}

// @Summary		List accounts
// @Description	Returns the static account label catalog
// @Tags			Catalog
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, AccountListResponse{Data: catalog.Accounts()})
}
