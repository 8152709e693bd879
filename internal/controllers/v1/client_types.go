package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// ClientEditable represents all values for a client that can be set by
// the API consumer.
type ClientEditable struct {
	Name    string `json:"name" example:"Acme Corp"`
	Email   string `json:"email" example:"billing@acme.example"`
	Phone   string `json:"phone" example:"+91 98765 43210"`
	Address string `json:"address" example:"12 MG Road, Bengaluru"`
	GSTIN   string `json:"gstin" example:"29ABCDE1234F1Z5"`
}

func (editable ClientEditable) model(userID uuid.UUID) models.Client {
	return models.Client{
		UserID:  userID,
		Name:    editable.Name,
		Email:   editable.Email,
		Phone:   editable.Phone,
		Address: editable.Address,
		GSTIN:   editable.GSTIN,
	}
}

type ClientLinks struct {
	Self string `json:"self" example:"https://example.com/v1/clients/d3c3ffe8-c2ac-4538-9a11-9b6f821e3b34"`
}

type Client struct {
	models.Client
	Links ClientLinks `json:"links"`
}

func newClient(c *gin.Context, model models.Client) Client {
	url := httputil.RequestHost(c)

	return Client{
		Client: model,
		Links: ClientLinks{
			Self: fmt.Sprintf("%s/v1/clients/%s", url, model.ID),
		},
	}
}

type ClientResponse struct {
	Data Client `json:"data"`
}

type ClientListResponse struct {
	Data []Client `json:"data"`
}
