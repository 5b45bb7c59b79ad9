package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/httputil"
	"github.com/snackpool/backend/internal/models"
)

// RegisterHealthzRoutes registers the liveness route with the
// RouterGroup that is passed.
func RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHealthz)
	r.GET("", GetHealthz)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Liveness check
// @Description	Returns an empty response when the backend and its database connection are healthy
// @Tags			General
// @Success		204
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/healthz [get]
func GetHealthz(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		httperrors.New(c, http.StatusInternalServerError, "the database connection is not healthy")
		return
	}

	c.Status(http.StatusNoContent)
}
