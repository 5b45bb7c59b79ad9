package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/auth"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/httputil"
	"github.com/snackpool/backend/internal/models"
)

// SelectionEditable represents the payload for setting a selection
// quantity.
type SelectionEditable struct {
	FamilyID *uint64 `json:"familyId" example:"3"` // ID of the family
	SnackID  *uint64 `json:"snackId" example:"7"`  // ID of the snack
	Quantity *int    `json:"quantity" example:"2"` // Number of units, 0 or more
}

// SelectionWithSnack is a selection row together with its snack.
type SelectionWithSnack struct {
	models.Selection
	Snack models.Snack `json:"snack"` // The snack the selection refers to
}

// RegisterSelectionRoutes registers the routes for selections with
// the RouterGroup that is passed.
func RegisterSelectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSelectionList)
	r.POST("", UpsertSelection)

	r.OPTIONS("/:familyId", OptionsSelectionDetail)
	r.GET("/:familyId", GetSelections)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Selections
// @Success		204
// @Router			/api/selections [options]
func OptionsSelectionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Selections
// @Success		204
// @Param			familyId	path	uint64	true	"ID of the family"
// @Router			/api/selections/{familyId} [options]
func OptionsSelectionDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Set selection quantity
// @Description	Sets the quantity a family requests of a snack. Creates the selection row on first use and overwrites the quantity on every further call, including to 0.
// @Tags			Selections
// @Produce		json
// @Success		200			{object}	models.Selection
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			selection	body		SelectionEditable	true	"Selection"
// @Router			/api/selections [post]
func UpsertSelection(c *gin.Context) {
	var editable SelectionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.FamilyID == nil {
		httperrors.NewField(c, http.StatusBadRequest, "familyId", "the family of a selection must be set")
		return
	}

	if editable.SnackID == nil {
		httperrors.NewField(c, http.StatusBadRequest, "snackId", "the snack of a selection must be set")
		return
	}

	if editable.Quantity == nil {
		httperrors.NewField(c, http.StatusBadRequest, "quantity", "the quantity of a selection must be set")
		return
	}

	if *editable.Quantity < 0 {
		httperrors.NewField(c, http.StatusBadRequest, "quantity", "the quantity of a selection must not be negative")
		return
	}

	// Families can only write their own selections
	claims := auth.ClaimsFromContext(c)
	if claims == nil || (!claims.Admin() && claims.FamilyID != *editable.FamilyID) {
		httperrors.New(c, http.StatusForbidden, "you can only change the selections of your own family")
		return
	}

	selection, err := models.UpsertSelection(models.DB, *editable.FamilyID, *editable.SnackID, *editable.Quantity)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, selection)
}

// @Summary		List selections of a family
// @Description	Returns all selection rows of a family with their snacks, including rows with quantity 0
// @Tags			Selections
// @Produce		json
// @Success		200			{array}		SelectionWithSnack
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			familyId	path		uint64	true	"ID of the family"
// @Router			/api/selections/{familyId} [get]
func GetSelections(c *gin.Context) {
	familyID, err := httputil.ParseID(c, "familyId")
	if err != nil {
		return
	}

	// Families can only read their own selections
	claims := auth.ClaimsFromContext(c)
	if claims == nil || (!claims.Admin() && claims.FamilyID != familyID) {
		httperrors.New(c, http.StatusForbidden, "you can only read the selections of your own family")
		return
	}

	selections, err := models.SelectionsForFamily(models.DB, familyID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	response := make([]SelectionWithSnack, 0, len(selections))
	for _, selection := range selections {
		response = append(response, SelectionWithSnack{
			Selection: selection,
			Snack:     selection.Snack,
		})
	}

	c.JSON(http.StatusOK, response)
}
