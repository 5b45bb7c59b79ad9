package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/auth"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/httputil"
	"github.com/snackpool/backend/internal/models"
	"gorm.io/gorm"
)

// tokens signs and validates the bearer tokens for all requests.
var tokens = auth.NewServiceFromEnv()

// Tokens returns the token service used by the login endpoint so the
// router can wire the same service into the middleware.
func Tokens() *auth.Service {
	return tokens
}

type LoginRequest struct {
	Name       string `json:"name" example:"RAW"`         // Name of the family
	AccessCode string `json:"accessCode" example:"apples"` // The family’s access code
}

type LoginResponse struct {
	models.Family
	Token string `json:"token"` // Bearer token for all subsequent requests
}

// RegisterSessionRoutes registers the login route with the RouterGroup
// that is passed.
func RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/api/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Log in
// @Description	Verifies the family name and access code and returns the family together with a bearer token
// @Tags			Session
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			login	body		LoginRequest	true	"Credentials"
// @Router			/api/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	family, err := models.FamilyByName(models.DB, request.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperrors.Handler(c, err)
		return
	}

	// The response does not distinguish an unknown name from a wrong
	// code so that valid names cannot be probed
	if err != nil || family.AccessCode != request.AccessCode {
		httperrors.New(c, http.StatusUnauthorized, "invalid family name or access code")
		return
	}

	token, err := tokens.GenerateToken(family)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Family: family,
		Token:  token,
	})
}
