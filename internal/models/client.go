package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a business contact invoices are issued to.
type Client struct {
	DefaultModel
	UserID  uuid.UUID `json:"userId"`
	User    User      `json:"-"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	GSTIN   string    `json:"gstin"`
}

// BeforeSave ensures the name is set and trimmed.
func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrClientNameRequired
	}

	return nil
}
