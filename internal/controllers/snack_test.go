package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/snackpool/backend/internal/controllers"
	"github.com/snackpool/backend/internal/httperrors"
	"github.com/snackpool/backend/internal/models"
	"github.com/snackpool/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsSnack() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/api/snacks", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "/api/snacks/1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, PUT, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetSnacks() {
	_, header := suite.familyHeader("RAW")
	category := suite.createTestCategory(models.Category{Name: "Nuts"})
	suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25, CategoryID: &category.ID})
	suite.createTestSnack(models.Snack{Name: "Medjool Dates", Points: 12})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/snacks", nil, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var snacks []models.Snack
	test.DecodeResponse(suite.T(), &recorder, &snacks)
	if assert.Len(suite.T(), snacks, 2) {
		assert.Equal(suite.T(), "Medjool Dates", snacks[0].Name)
		assert.Nil(suite.T(), snacks[0].Category)

		assert.Equal(suite.T(), "Pecans", snacks[1].Name)
		if assert.NotNil(suite.T(), snacks[1].Category) {
			assert.Equal(suite.T(), "Nuts", snacks[1].Category.Name)
		}
	}
}

func (suite *TestSuiteStandard) TestCreateSnack() {
	header := suite.adminHeader()
	category := suite.createTestCategory(models.Category{Name: "Nuts"})

	recorder := test.Request(suite.T(), http.MethodPost, "/api/snacks", controllers.SnackEditable{
		Name:       ptr("Pecans"),
		Points:     intPtr(25),
		Store:      ptr("Costco"),
		CategoryID: &category.ID,
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var snack models.Snack
	test.DecodeResponse(suite.T(), &recorder, &snack)
	assert.NotZero(suite.T(), snack.ID)
	assert.Equal(suite.T(), "Pecans", snack.Name)
	assert.Equal(suite.T(), 25, snack.Points)
	assert.Equal(suite.T(), "Costco", *snack.Store)
}

func (suite *TestSuiteStandard) TestCreateSnackAsFamily() {
	_, header := suite.familyHeader("RAW")

	recorder := test.Request(suite.T(), http.MethodPost, "/api/snacks", controllers.SnackEditable{Name: ptr("Pecans")}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestCreateSnackWithoutName() {
	header := suite.adminHeader()

	recorder := test.Request(suite.T(), http.MethodPost, "/api/snacks", controllers.SnackEditable{Points: intPtr(25)}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "name", response.Field)
}

func (suite *TestSuiteStandard) TestCreateSnackNegativePoints() {
	header := suite.adminHeader()

	recorder := test.Request(suite.T(), http.MethodPost, "/api/snacks", controllers.SnackEditable{
		Name:   ptr("Pecans"),
		Points: intPtr(-1),
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "points", response.Field)
}

func (suite *TestSuiteStandard) TestCreateSnackUnknownCategory() {
	header := suite.adminHeader()

	recorder := test.Request(suite.T(), http.MethodPost, "/api/snacks", controllers.SnackEditable{
		Name:       ptr("Pecans"),
		CategoryID: uintPtr(4711),
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateSnackPartial() {
	header := suite.adminHeader()
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25, Store: ptr("Costco")})

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/snacks/%d", snack.ID), map[string]any{
		"points": 30,
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Snack
	assert.Nil(suite.T(), models.DB.First(&updated, snack.ID).Error)
	assert.Equal(suite.T(), 30, updated.Points)
	assert.Equal(suite.T(), "Pecans", updated.Name)
	assert.Equal(suite.T(), "Costco", *updated.Store)
}

func (suite *TestSuiteStandard) TestUpdateSnackClearStore() {
	header := suite.adminHeader()
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25, Store: ptr("Costco")})

	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/snacks/%d", snack.ID), map[string]any{
		"store": nil,
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Snack
	assert.Nil(suite.T(), models.DB.First(&updated, snack.ID).Error)
	assert.Nil(suite.T(), updated.Store, "a field set to null in the body is cleared")
}

func (suite *TestSuiteStandard) TestUpdateSnackNullName() {
	header := suite.adminHeader()
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	// Unlike the store, the name is required and cannot be nulled
	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/snacks/%d", snack.ID), map[string]any{
		"name": nil,
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "name", response.Field)

	var unchanged models.Snack
	assert.Nil(suite.T(), models.DB.First(&unchanged, snack.ID).Error)
	assert.Equal(suite.T(), "Pecans", unchanged.Name)
}

func (suite *TestSuiteStandard) TestUpdateSnackNotFound() {
	header := suite.adminHeader()

	recorder := test.Request(suite.T(), http.MethodPut, "/api/snacks/4711", controllers.SnackEditable{Name: ptr("Pecans")}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteSnack() {
	header := suite.adminHeader()
	family := suite.createTestFamily(models.Family{Name: "RAW"})
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	_, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 2)
	assert.Nil(suite.T(), err)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/snacks/%d", snack.ID), nil, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var count int64
	models.DB.Model(&models.Selection{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "deleting a snack removes the selections referencing it")
}

func (suite *TestSuiteStandard) TestDeleteSnackNotFound() {
	header := suite.adminHeader()

	recorder := test.Request(suite.T(), http.MethodDelete, "/api/snacks/4711", nil, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
