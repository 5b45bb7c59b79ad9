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

// CategoryEditable represents all user configurable parameters of a
// category.
type CategoryEditable struct {
	Name *string `json:"name" example:"Dried Fruit"` // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	var category models.Category

	if editable.Name != nil {
		category.Name = *editable.Name
	}

	return category
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", auth.RequireAdmin(), CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.PUT("/:id", auth.RequireAdmin(), UpdateCategory)
		r.DELETE("/:id", auth.RequireAdmin(), DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/api/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	uint64	true	"ID of the category"
// @Router			/api/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// @Summary		List categories
// @Description	Returns the full list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/api/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category

	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Name == nil || strings.TrimSpace(*editable.Name) == "" {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a category must be set")
		return
	}

	category := editable.model()
	err := models.DB.Create(&category).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		404			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			id			path		uint64				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	category, err := getCategoryResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		return
	}

	var editable CategoryEditable
	if err = httputil.BindData(c, &editable); err != nil {
		return
	}

	// A name key that is null or empty would blank the name on update
	if httputil.HasField(updateFields, "Name") && (editable.Name == nil || strings.TrimSpace(*editable.Name) == "") {
		httperrors.NewField(c, http.StatusBadRequest, "name", "the name of a category must be set")
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category. Snacks in the category are kept and detached.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path	uint64	true	"ID of the category"
// @Router			/api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, err := getCategoryResource(c)
	if err != nil {
		return
	}

	err = models.DeleteCategory(models.DB, category)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// getCategoryResource verifies that the category from the URL
// parameters exists and returns it.
func getCategoryResource(c *gin.Context) (models.Category, error) {
	var category models.Category

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Category{}, err
	}

	err = models.DB.First(&category, id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Category{}, err
	}

	return category, nil
}
