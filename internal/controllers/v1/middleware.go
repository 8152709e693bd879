package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/ledgerline/backend/internal/auth"
	"github.com/ledgerline/backend/internal/authz"
	"github.com/ledgerline/backend/internal/models"
)

// Deps are the collaborators handlers need beyond the database.
//
// The permission matrix is constructed once at startup and injected here,
// it is never global state.
type Deps struct {
	Matrix    authz.Matrix
	Tokens    *auth.Tokens
	UploadDir string
}

const (
	contextIdentity = "identity"
	contextDeps     = "deps"
)

// middleware makes the request-scoped dependencies available to handlers.
func (deps Deps) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextDeps, deps)
		c.Next()
	}
}

// depsFrom returns the dependencies injected by middleware.
func depsFrom(c *gin.Context) Deps {
	return c.MustGet(contextDeps).(Deps)
}

// authenticate resolves the bearer credential to a caller identity.
//
// A missing credential and a failed verification yield the same response
// so that no information about token validity leaks to callers.
func (deps Deps) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: auth.ErrUnauthorized.Error()})
			return
		}

		identity, err := deps.Tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: auth.ErrUnauthorized.Error()})
			return
		}

		c.Set(contextIdentity, identity)
		c.Next()
	}
}

// authorize checks the caller's role against the permission matrix.
//
// Every decision writes exactly one audit event. A failed audit write
// aborts the request: a decision that cannot be recorded is a server
// error, not a silent allow.
func (deps Deps) authorize(resource authz.Resource, action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFrom(c)

		decision := models.AuditAllowed
		reason := ""
		if !deps.Matrix.Allowed(resource, action, identity.Role) {
			decision = models.AuditDenied
			reason = authz.ReasonRoleRestricted
		}

		if err := writeAudit(c, identity, resource, action, decision, reason); err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		if decision == models.AuditDenied {
			c.AbortWithStatusJSON(http.StatusForbidden, forbiddenError{
				Error:  "forbidden",
				Reason: authz.ReasonRoleRestricted,
			})
			return
		}

		c.Next()
	}
}

// identityFrom returns the caller identity resolved by authenticate.
func identityFrom(c *gin.Context) auth.Identity {
	return c.MustGet(contextIdentity).(auth.Identity)
}

func writeAudit(c *gin.Context, identity auth.Identity, resource authz.Resource, action authz.Action, decision models.AuditStatus, reason string) error {
	return models.DB.Create(&models.AuditEvent{
		UserID:   identity.UserID,
		Role:     identity.Role,
		IP:       c.ClientIP(),
		Path:     c.Request.URL.Path,
		Resource: string(resource),
		Action:   string(action),
		Status:   decision,
		Reason:   reason,
	}).Error
}

// ownerAllowed reports whether the caller may touch a record owned by
// ownerID. Admins always may, the listed broader roles may, everyone
// else only for their own records.
func ownerAllowed(identity auth.Identity, ownerID uuid.UUID, broaderRoles ...models.Role) bool {
	if identity.Role == models.RoleAdmin {
		return true
	}

	if slices.Contains(broaderRoles, identity.Role) {
		return true
	}

	return identity.UserID == ownerID
}

// denyNotOwner audits and rejects an ownership violation.
//
// Ownership denials are audited like matrix denials, with their own reason.
func denyNotOwner(c *gin.Context, resource authz.Resource, action authz.Action) {
	identity := identityFrom(c)

	if err := writeAudit(c, identity, resource, action, models.AuditDenied, authz.ReasonNotOwner); err != nil {
		c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.AbortWithStatusJSON(http.StatusForbidden, forbiddenError{
		Error:  "forbidden",
		Reason: authz.ReasonNotOwner,
	})
}
