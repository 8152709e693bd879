package models

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Role determines which resources and actions a user is permitted to use.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleClientMgmt   Role = "client_mgmt"
	RoleSelfEmployed Role = "self_employed"
	RoleSalary       Role = "salary"
	RoleAccountant   Role = "accountant"
	RoleViewer       Role = "viewer"
)

// Roles returns all valid roles.
func Roles() []Role {
	return []Role{RoleAdmin, RoleClientMgmt, RoleSelfEmployed, RoleSalary, RoleAccountant, RoleViewer}
}

// Valid reports whether the role is part of the closed role set.
func (r Role) Valid() bool {
	return slices.Contains(Roles(), r)
}

// User is an authenticated caller of the API.
//
// Users are created at registration and are never deleted through
// the application.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// NormalizeEmail returns the canonical form an email address is stored
// and looked up in: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// BeforeSave validates the role and normalizes the email.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)

	if u.Role == "" {
		u.Role = RoleSalary
	}

	if !u.Role.Valid() {
		return ErrRoleInvalid
	}

	return nil
}
