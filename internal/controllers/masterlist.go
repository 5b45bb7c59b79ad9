package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/httputil"
	"github.com/snackpool/backend/internal/models"
)

// RegisterMasterListRoutes registers the route for the master list
// with the RouterGroup that is passed.
func RegisterMasterListRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMasterList)
	r.GET("", GetMasterList)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MasterList
// @Success		204
// @Router			/api/master-list [options]
func OptionsMasterList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Master shopping list
// @Description	Returns the aggregation of all selections into one procurement list, one row per snack with a positive quantity
// @Tags			MasterList
// @Produce		json
// @Success		200	{array}		models.MasterListItem
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/api/master-list [get]
func GetMasterList(c *gin.Context) {
	items, err := models.MasterList(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
