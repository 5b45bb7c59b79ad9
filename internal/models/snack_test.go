package models_test

import (
	"github.com/snackpool/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSnackTrimWhitespace() {
	snack := suite.createTestSnack(models.Snack{Name: " Pecans "})
	assert.Equal(suite.T(), "Pecans", snack.Name)
}

func (suite *TestSuiteStandard) TestSnacksOrderedWithCategory() {
	category := suite.createTestCategory(models.Category{Name: "Nuts"})
	suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25, CategoryID: &category.ID})
	suite.createTestSnack(models.Snack{Name: "Medjool Dates", Points: 12})

	snacks, err := models.Snacks(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), snacks, 2)

	assert.Equal(suite.T(), "Medjool Dates", snacks[0].Name)
	assert.Nil(suite.T(), snacks[0].Category)

	assert.Equal(suite.T(), "Pecans", snacks[1].Name)
	if assert.NotNil(suite.T(), snacks[1].Category) {
		assert.Equal(suite.T(), "Nuts", snacks[1].Category.Name)
	}
}

func (suite *TestSuiteStandard) TestDeleteSnackRemovesSelections() {
	family := suite.createTestFamily(models.Family{Name: "RAW"})
	pecans := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})
	dates := suite.createTestSnack(models.Snack{Name: "Medjool Dates", Points: 12})

	_, err := models.UpsertSelection(models.DB, family.ID, pecans.ID, 2)
	assert.Nil(suite.T(), err)
	_, err = models.UpsertSelection(models.DB, family.ID, dates.ID, 1)
	assert.Nil(suite.T(), err)

	err = models.DeleteSnack(models.DB, pecans)
	assert.Nil(suite.T(), err)

	selections, err := models.SelectionsForFamily(models.DB, family.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), selections, 1, "only the selections of the deleted snack are removed")
	assert.Equal(suite.T(), dates.ID, selections[0].SnackID)
}
