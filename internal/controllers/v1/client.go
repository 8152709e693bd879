package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/authz"
	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Router			/v1/clients [options]
func OptionsClients(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/clients/{id} [options]
func OptionsClientDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List clients
// @Description	Returns the caller's clients. Admins and client managers see all users' clients.
// @Tags			Clients
// @Produce		json
// @Success		200	{object}	ClientListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/clients [get]
func GetClients(c *gin.Context) {
	var clients []models.Client
	err := scopedClients(c).Order("name ASC").Find(&clients).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Client, 0, len(clients))
	for _, client := range clients {
		data = append(data, newClient(c, client))
	}

	c.JSON(http.StatusOK, ClientListResponse{Data: data})
}

// @Summary		Create client
// @Description	Creates a new client
// @Tags			Clients
// @Accept			json
// @Produce		json
// @Success		201		{object}	ClientResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			client	body		ClientEditable	true	"Client"
// @Router			/v1/clients [post]
func CreateClient(c *gin.Context) {
	var editable ClientEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	client := editable.model(identityFrom(c).UserID)
	err = models.DB.Create(&client).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ClientResponse{Data: newClient(c, client)})
}

// @Summary		Get client
// @Description	Returns a specific client
// @Tags			Clients
// @Produce		json
// @Success		200	{object}	ClientResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/clients/{id} [get]
func GetClient(c *gin.Context) {
	client, ok := clientResource(c, authz.ActionDetail)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ClientResponse{Data: newClient(c, client)})
}

// @Summary		Update client
// @Description	Updates a client. Only the fields in the request body are changed.
// @Tags			Clients
// @Accept			json
// @Produce		json
// @Success		200		{object}	ClientResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	forbiddenError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			client	body		ClientEditable	true	"Client"
// @Router			/v1/clients/{id} [put]
func UpdateClient(c *gin.Context) {
	client, ok := clientResource(c, authz.ActionUpdate)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ClientEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data ClientEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&client).Select("", updateFields...).Updates(data.model(client.UserID)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ClientResponse{Data: newClient(c, client)})
}

// @Summary		Delete client
// @Description	Deletes a client
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	client, ok := clientResource(c, authz.ActionDelete)
	if !ok {
		return
	}

	err := models.DB.Delete(&client).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// scopedClients returns a query over the clients the caller may see.
// Client managers work across all users, like admins.
func scopedClients(c *gin.Context) *gorm.DB {
	identity := identityFrom(c)

	db := models.DB.Model(&models.Client{})
	if identity.Role != models.RoleAdmin && identity.Role != models.RoleClientMgmt {
		db = db.Where("user_id = ?", identity.UserID)
	}

	return db
}

func clientResource(c *gin.Context, action authz.Action) (models.Client, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return models.Client{}, false
	}

	var client models.Client
	err := models.DB.First(&client, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Client{}, false
	}

	if !ownerAllowed(identityFrom(c), client.UserID, models.RoleClientMgmt) {
		denyNotOwner(c, authz.ResourceClients, action)
		return models.Client{}, false
	}

	return client, true
}
