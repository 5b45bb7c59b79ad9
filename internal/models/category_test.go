package models_test

import (
	"github.com/snackpool/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	suite.createTestCategory(models.Category{Name: "Dried Fruit"})

	err := models.DB.Create(&models.Category{Name: "Dried Fruit"}).Error
	assert.NotNil(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "UNIQUE constraint failed: categories.name")
}

func (suite *TestSuiteStandard) TestCategorySnacks() {
	category := suite.createTestCategory(models.Category{Name: "Dried Fruit"})
	suite.createTestSnack(models.Snack{Name: "Raisins", Points: 10, CategoryID: &category.ID})
	suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	snacks, err := category.Snacks(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), snacks, 1)
	assert.Equal(suite.T(), "Raisins", snacks[0].Name)
}

func (suite *TestSuiteStandard) TestDeleteCategoryDetachesSnacks() {
	category := suite.createTestCategory(models.Category{Name: "Dried Fruit"})
	snack := suite.createTestSnack(models.Snack{Name: "Raisins", Points: 10, CategoryID: &category.ID})

	err := models.DeleteCategory(models.DB, category)
	assert.Nil(suite.T(), err)

	// The snack survives without a category
	err = models.DB.First(&snack, snack.ID).Error
	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), snack.CategoryID)

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}
