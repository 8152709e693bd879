// Package authz decides whether a role is permitted to perform an action
// on a resource.
package authz

import (
	"golang.org/x/exp/slices"

	"github.com/ledgerline/backend/internal/models"
)

// Resource is the noun an authorization decision is made for.
type Resource string

const (
	ResourceDashboard    Resource = "dashboard"
	ResourceTransactions Resource = "transactions"
	ResourceBudgets      Resource = "budgets"
	ResourceClients      Resource = "clients"
	ResourceAudit        Resource = "audit"
)

// Action is the verb an authorization decision is made for.
type Action string

const (
	ActionView   Action = "view"
	ActionDetail Action = "detail"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
	ActionImport Action = "import"
)

// ReasonRoleRestricted is the reason reported for matrix denials.
const ReasonRoleRestricted = "role_restricted"

// ReasonNotOwner is the reason reported when a caller is permitted to use
// the resource, but does not own the specific record.
const ReasonNotOwner = "not_owner"

// Matrix is the static permission table.
//
// It is constructed once at process start with NewMatrix and never
// mutated afterwards.
type Matrix struct {
	permissions map[Resource]map[Action][]models.Role
}

// NewMatrix returns the permission table.
func NewMatrix() Matrix {
	return Matrix{
		permissions: map[Resource]map[Action][]models.Role{
			ResourceDashboard: {
				ActionView: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary, models.RoleAccountant, models.RoleViewer},
			},
			ResourceTransactions: {
				ActionView:   {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary, models.RoleAccountant},
				ActionExport: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary, models.RoleAccountant},
				ActionCreate: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary},
				ActionUpdate: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary},
				ActionImport: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary},
				ActionDelete: {models.RoleAdmin},
			},
			ResourceBudgets: {
				ActionView:   {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleSalary, models.RoleAccountant, models.RoleViewer},
				ActionCreate: {models.RoleAdmin, models.RoleSelfEmployed, models.RoleClientMgmt, models.RoleSalary},
				ActionUpdate: {models.RoleAdmin, models.RoleSelfEmployed, models.RoleClientMgmt, models.RoleSalary},
				ActionDelete: {models.RoleAdmin},
			},
			ResourceClients: {
				ActionView:   {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleAccountant},
				ActionDetail: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed, models.RoleAccountant},
				ActionCreate: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed},
				ActionUpdate: {models.RoleAdmin, models.RoleClientMgmt, models.RoleSelfEmployed},
				ActionDelete: {models.RoleAdmin},
			},
			ResourceAudit: {
				ActionView: {models.RoleAdmin},
			},
		},
	}
}

// Allowed reports whether the role may perform the action on the resource.
//
// Unknown resource/action pairs are always denied.
func (m Matrix) Allowed(resource Resource, action Action, role models.Role) bool {
	actions, ok := m.permissions[resource]
	if !ok {
		return false
	}

	roles, ok := actions[action]
	if !ok {
		return false
	}

	return slices.Contains(roles, role)
}
