package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/authz"
	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoices(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List invoices
// @Description	Returns the caller's invoices with client contact data joined in. Admins and client managers see all users' invoices.
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/invoices [get]
func GetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	err := scopedInvoices(c).Preload("Client").Order("datetime(issue_date) DESC").Find(&invoices).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Data: data})
}

// @Summary		Create invoice
// @Description	Creates a new invoice. The totals are computed from the items, values sent by the caller are ignored.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		201		{object}	InvoiceResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices [post]
func CreateInvoice(c *gin.Context) {
	var editable InvoiceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.ClientID == uuid.Nil || editable.InvoiceNumber == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errInvoiceFieldsMissing.Error()})
		return
	}

	// The client must exist, invoices never point into the void
	var client models.Client
	err = models.DB.First(&client, "id = ?", editable.ClientID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	invoice := editable.model(identityFrom(c).UserID)
	err = models.DB.Create(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	invoice.Client = client
	c.JSON(http.StatusCreated, InvoiceResponse{Data: newInvoice(c, invoice)})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	invoice, ok := invoiceResource(c, authz.ActionDetail)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Data: newInvoice(c, invoice)})
}

// @Summary		Update invoice
// @Description	Updates an invoice. Only the fields in the request body are changed, the totals are recomputed from the merged items.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	forbiddenError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices/{id} [put]
func UpdateInvoice(c *gin.Context) {
	invoice, ok := invoiceResource(c, authz.ActionUpdate)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvoiceEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data InvoiceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// A full save runs the totals computation over the merged invoice,
	// a partial update could leave stale totals behind
	data.merge(&invoice, updateFields)
	err = models.DB.Save(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Data: newInvoice(c, invoice)})
}

// @Summary		Delete invoice
// @Description	Deletes an invoice
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	invoice, ok := invoiceResource(c, authz.ActionDelete)
	if !ok {
		return
	}

	err := models.DB.Delete(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// scopedInvoices returns a query over the invoices the caller may see.
// Like clients, invoices are visible across users for client managers.
func scopedInvoices(c *gin.Context) *gorm.DB {
	identity := identityFrom(c)

	db := models.DB.Model(&models.Invoice{})
	if identity.Role != models.RoleAdmin && identity.Role != models.RoleClientMgmt {
		db = db.Where("user_id = ?", identity.UserID)
	}

	return db
}

func invoiceResource(c *gin.Context, action authz.Action) (models.Invoice, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return models.Invoice{}, false
	}

	var invoice models.Invoice
	err := models.DB.Preload("Client").First(&invoice, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Invoice{}, false
	}

	if !ownerAllowed(identityFrom(c), invoice.UserID, models.RoleClientMgmt) {
		denyNotOwner(c, authz.ResourceClients, action)
		return models.Invoice{}, false
	}

	return invoice, true
}
