package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/auth"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/httputil"
	"github.com/snackpool/backend/internal/models"
)

// SnackEditable represents all user configurable parameters of a
// snack. All fields except the name are optional, a field set to null
// clears the value.
type SnackEditable struct {
	Name       *string `json:"name" example:"Pecans"`   // Name of the snack
	Store      *string `json:"store" example:"Costco"`  // Store the snack is bought at
	Link       *string `json:"link"`                    // Link to the product page
	Points     *int    `json:"points" example:"25"`     // Cost in points per unit
	ImageURL   *string `json:"imageUrl"`                // Image of the snack
	CategoryID *uint64 `json:"categoryId" example:"2"`  // ID of the category the snack belongs to
}

func (editable SnackEditable) model() models.Snack {
	snack := models.Snack{
		Store:      editable.Store,
		Link:       editable.Link,
		ImageURL:   editable.ImageURL,
		CategoryID: editable.CategoryID,
	}

	if editable.Name != nil {
		snack.Name = *editable.Name
	}
	if editable.Points != nil {
		snack.Points = *editable.Points
	}

	return snack
}

// RegisterSnackRoutes registers the routes for snacks with
// the RouterGroup that is passed.
func RegisterSnackRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSnackList)
		r.GET("", GetSnacks)
		r.POST("", auth.RequireAdmin(), CreateSnack)
	}

	// Snack with ID
	{
		r.OPTIONS("/:id", OptionsSnackDetail)
		r.PUT("/:id", auth.RequireAdmin(), UpdateSnack)
		r.DELETE("/:id", auth.RequireAdmin(), DeleteSnack)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Snacks
// @Success		204
// @Router			/api/snacks [options]
func OptionsSnackList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Snacks
// @Success		204
// @Param			id	path	uint64	true	"ID of the snack"
// @Router			/api/snacks/{id} [options]
func OptionsSnackDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// @Summary		List snacks
// @Description	Returns the full snack catalog with each snack’s category, ordered by name
// @Tags			Snacks
// @Produce		json
// @Success		200	{array}		models.Snack
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/api/snacks [get]
func GetSnacks(c *gin.Context) {
	snacks, err := models.Snacks(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, snacks)
}

// @Summary		Create snack
// @Description	Creates a new snack in the catalog
// @Tags			Snacks
// @Produce		json
// @Success		201		{object}	models.Snack
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			snack	body		SnackEditable	true	"Snack"
// @Router			/api/snacks [post]
func CreateSnack(c *gin.Context) {
	var editable SnackEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Name == nil || strings.TrimSpace(*editable.Name) == "" {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a snack must be set")
		return
	}

	if editable.Points != nil && *editable.Points < 0 {
		httperrors.NewField(c, http.StatusBadRequest, "points", "the points of a snack must not be negative")
		return
	}

	snack := editable.model()
	err := models.DB.Create(&snack).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, snack)
}

// @Summary		Update snack
// @Description	Updates an existing snack. Only values to be updated need to be specified.
// @Tags			Snacks
// @Produce		json
// @Success		200		{object}	models.Snack
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		uint64			true	"ID of the snack"
// @Param			snack	body		SnackEditable	true	"Snack"
// @Router			/api/snacks/{id} [put]
func UpdateSnack(c *gin.Context) {
	snack, err := getSnackResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SnackEditable{})
	if err != nil {
		return
	}

	var editable SnackEditable
	if err = httputil.BindData(c, &editable); err != nil {
		return
	}

	// A name key that is null or empty would blank the name on update
	if httputil.HasField(updateFields, "Name") && (editable.Name == nil || strings.TrimSpace(*editable.Name) == "") {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a snack must be set")
		return
	}

	if editable.Points != nil && *editable.Points < 0 {
		httperrors.NewField(c, http.StatusBadRequest, "points", "the points of a snack must not be negative")
		return
	}

	err = models.DB.Model(&snack).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, snack)
}

// @Summary		Delete snack
// @Description	Deletes a snack together with all selections referencing it
// @Tags			Snacks
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path	uint64	true	"ID of the snack"
// @Router			/api/snacks/{id} [delete]
func DeleteSnack(c *gin.Context) {
	snack, err := getSnackResource(c)
	if err != nil {
		return
	}

	err = models.DeleteSnack(models.DB, snack)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// getSnackResource verifies that the snack from the URL parameters
// exists and returns it.
func getSnackResource(c *gin.Context) (models.Snack, error) {
	var snack models.Snack

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Snack{}, err
	}

	err = models.DB.First(&snack, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Snack{}, err
	}

	return snack, nil
}
