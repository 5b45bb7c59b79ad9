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

// FamilyEditable represents all user configurable parameters of a
// family account.
type FamilyEditable struct {
	Name          *string `json:"name" example:"RAW"`           // Name of the family, doubles as login identifier
	PointsAllowed *int    `json:"pointsAllowed" example:"800"`  // Points budget for the selection round
	AccessCode    *string `json:"accessCode" example:"apples"`  // Access code the family logs in with
	Role          *string `json:"role" example:"family"`        // Role of the account, "admin" or "family"
}

func (editable FamilyEditable) model() models.Family {
	var family models.Family

	if editable.Name != nil {
		family.Name = *editable.Name
	}
	if editable.PointsAllowed != nil {
		family.PointsAllowed = *editable.PointsAllowed
	}
	if editable.AccessCode != nil {
		family.AccessCode = *editable.AccessCode
	}
	if editable.Role != nil {
		family.Role = *editable.Role
	}

	return family
}

// validate checks the field values that are set.
func (editable FamilyEditable) validate(c *gin.Context) bool {
	if editable.PointsAllowed != nil && *editable.PointsAllowed < 0 {
		httperrors.NewField(c, http.StatusBadRequest, "pointsAllowed", "the points budget of a family must not be negative")
		return false
	}

	if editable.Role != nil && *editable.Role != models.RoleAdmin && *editable.Role != models.RoleFamily {
		httperrors.NewField(c, http.StatusBadRequest, "role", "the role of a family must be %q or %q", models.RoleAdmin, models.RoleFamily)
		return false
	}

	return true
}

// RegisterFamilyRoutes registers the routes for families with
// the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFamilyList)
		r.GET("", auth.RequireAdmin(), GetFamilies)
		r.POST("", auth.RequireAdmin(), CreateFamily)
	}

	// Family with ID
	{
		r.OPTIONS("/:id", OptionsFamilyDetail)
		r.GET("/:id", GetFamily)
		r.PUT("/:id", auth.RequireAdmin(), UpdateFamily)
		r.DELETE("/:id", auth.RequireAdmin(), DeleteFamily)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/api/families [options]
func OptionsFamilyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Param			id	path	uint64	true	"ID of the family"
// @Router			/api/families/{id} [options]
func OptionsFamilyDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List families
// @Description	Returns all families with their points usage, recomputed from the live selections
// @Tags			Families
// @Produce		json
// @Success		200	{array}		models.FamilyWithTotal
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/api/families [get]
func GetFamilies(c *gin.Context) {
	families, err := models.FamiliesWithTotals(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, families)
}

// @Summary		Get family
// @Description	Returns a family by its ID. Family accounts can only read themselves.
// @Tags			Families
// @Produce		json
// @Success		200	{object}	models.Family
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		uint64	true	"ID of the family"
// @Router			/api/families/{id} [get]
func GetFamily(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	claims := auth.ClaimsFromContext(c)
	if claims == nil || (!claims.Admin() && claims.FamilyID != id) {
		httperrors.New(c, http.StatusForbidden, "you can only read your own family")
		return
	}

	var family models.Family
	err = models.DB.First(&family, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, family)
}

// @Summary		Create family
// @Description	Creates a new family account
// @Tags			Families
// @Produce		json
// @Success		201		{object}	models.Family
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/api/families [post]
func CreateFamily(c *gin.Context) {
	var editable FamilyEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Name == nil || strings.TrimSpace(*editable.Name) == "" {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a family must be set")
		return
	}

	if !editable.validate(c) {
		return
	}

	family := editable.model()
	err := models.DB.Create(&family).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, family)
}

// @Summary		Update family
// @Description	Updates an existing family account. Only values to be updated need to be specified.
// @Tags			Families
// @Produce		json
// @Success		200		{object}	models.Family
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		uint64			true	"ID of the family"
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/api/families/{id} [put]
func UpdateFamily(c *gin.Context) {
	family, err := getFamilyResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FamilyEditable{})
	if err != nil {
		return
	}

	var editable FamilyEditable
	if err = httputil.BindData(c, &editable); err != nil {
		return
	}

	// A name key that is null or empty would blank the name on update
	if httputil.HasField(updateFields, "Name") && (editable.Name == nil || strings.TrimSpace(*editable.Name) == "") {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a family must be set")
		return
	}

	if !editable.validate(c) {
		return
	}

	err = models.DB.Model(&family).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, family)
}

// @Summary		Delete family
// @Description	Deletes a family account together with its selections
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path	uint64	true	"ID of the family"
// @Router			/api/families/{id} [delete]
func DeleteFamily(c *gin.Context) {
	family, err := getFamilyResource(c)
	if err != nil {
		return
	}

	err = models.DeleteFamily(models.DB, family)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// getFamilyResource verifies that the family from the URL parameters
// exists and returns it.
func getFamilyResource(c *gin.Context) (models.Family, error) {
	var family models.Family

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Family{}, err
	}

	err = models.DB.First(&family, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Family{}, err
	}

	return family, nil
}
