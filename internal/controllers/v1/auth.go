package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/auth"
	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

type RegisterRequest struct {
	Email    string      `json:"email" example:"jane@example.com"`
	Password string      `json:"password" example:"correct horse battery staple"`
	Role     models.Role `json:"role" example:"salary"`
}

type RegisterResponse struct {
	ID    uuid.UUID   `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Email string      `json:"email" example:"jane@example.com"`
	Role  models.Role `json:"role" example:"salary"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"salary@example.com"`
	Password string `json:"password" example:"salary123"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role" example:"salary"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user. The admin role cannot be chosen at registration.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Email == "" || request.Password == "" || request.Role == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errRegisterFieldsMissing.Error()})
		return
	}

	// Admin accounts are created by seeding or by other admins,
	// never by self-registration
	if request.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, httpError{Error: errRoleNotSelfAssignable.Error()})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	user := models.User{
		Email:        request.Email,
		PasswordHash: hash,
		Role:         request.Role,
	}
	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

// @Summary		Login
// @Description	Verifies the credentials and issues a bearer token valid for two hours
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		401		{object}	httpError
// @Param			login	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	deps := depsFrom(c)

	// An unknown email and a wrong password return the same error to
	// prevent account enumeration. The lookup uses the same normalized
	// form the email was stored in.
	var user models.User
	err = models.DB.Where("email = ?", models.NormalizeEmail(request.Email)).First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpError{Error: auth.ErrUnauthorized.Error()})
		return
	}

	if auth.VerifyPassword(user.PasswordHash, request.Password) != nil {
		c.JSON(http.StatusUnauthorized, httpError{Error: auth.ErrUnauthorized.Error()})
		return
	}

	token, err := deps.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Role:  user.Role,
	})
}

// @Summary		Caller identity
// @Description	Returns the identity bound to the presented bearer token
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	auth.Identity
// @Failure		401	{object}	httpError
// @Router			/v1/auth/me [get]
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, identityFrom(c))
}
