package models_test

import (
	"github.com/snackpool/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUpsertSelectionCreates() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	selection, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 2)
	assert.Nil(suite.T(), err)
	assert.NotZero(suite.T(), selection.ID)
	assert.Equal(suite.T(), family.ID, selection.FamilyID)
	assert.Equal(suite.T(), snack.ID, selection.SnackID)
	assert.Equal(suite.T(), 2, selection.Quantity)
}

func (suite *TestSuiteStandard) TestUpsertSelectionOverwrites() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	first, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 2)
	assert.Nil(suite.T(), err)

	second, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 5)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), first.ID, second.ID, "overwriting a selection must not create a new row")
	assert.Equal(suite.T(), 5, second.Quantity)

	var count int64
	models.DB.Model(&models.Selection{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestUpsertSelectionZeroKeepsRow() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	_, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 3)
	assert.Nil(suite.T(), err)

	selection, err := models.UpsertSelection(models.DB, family.ID, snack.ID, 0)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), 0, selection.Quantity)

	selections, err := models.SelectionsForFamily(models.DB, family.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), selections, 1, "a selection set to 0 stays readable")
}

func (suite *TestSuiteStandard) TestUpsertSelectionNegativeQuantity() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	snack := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	_, err := models.UpsertSelection(models.DB, family.ID, snack.ID, -1)
	assert.ErrorIs(suite.T(), err, models.ErrSelectionQuantityNegative)
}

func (suite *TestSuiteStandard) TestUpsertSelectionUnknownSnack() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})

	_, err := models.UpsertSelection(models.DB, family.ID, 4711, 2)
	assert.NotNil(suite.T(), err, "a selection for a snack that does not exist must be rejected")
	assert.Contains(suite.T(), err.Error(), "constraint failed")
}

func (suite *TestSuiteStandard) TestSelectionsForFamily() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	other := suite.createTestFamily(models.Family{Name: "HJS", PointsAllowed: 800})
	mangos := suite.createTestSnack(models.Snack{Name: "KS Sweet Mangos", Points: 16})
	pecans := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	_, err := models.UpsertSelection(models.DB, family.ID, mangos.ID, 3)
	assert.Nil(suite.T(), err)
	_, err = models.UpsertSelection(models.DB, family.ID, pecans.ID, 0)
	assert.Nil(suite.T(), err)
	_, err = models.UpsertSelection(models.DB, other.ID, pecans.ID, 1)
	assert.Nil(suite.T(), err)

	selections, err := models.SelectionsForFamily(models.DB, family.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), selections, 2, "only the family’s own rows are returned, zero rows included")

	for _, selection := range selections {
		assert.NotZero(suite.T(), selection.Snack.ID, "the snack must be preloaded")
	}
}

func (suite *TestSuiteStandard) TestSelectionsForUnknownFamily() {
	family := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	pecans := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25})

	_, err := models.UpsertSelection(models.DB, family.ID, pecans.ID, 2)
	assert.Nil(suite.T(), err)

	// An ID of 0 matches no family and must not match all of them either
	selections, err := models.SelectionsForFamily(models.DB, 0)
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), selections)
}

func (suite *TestSuiteStandard) TestMasterList() {
	raw := suite.createTestFamily(models.Family{Name: "RAW", PointsAllowed: 800})
	hjs := suite.createTestFamily(models.Family{Name: "HJS", PointsAllowed: 800})
	pecans := suite.createTestSnack(models.Snack{Name: "Pecans", Points: 25, Store: ptr("Costco")})
	dates := suite.createTestSnack(models.Snack{Name: "Medjool Dates", Points: 12, Store: ptr("Superstore")})
	raisins := suite.createTestSnack(models.Snack{Name: "Raisins", Points: 10})

	_, err := models.UpsertSelection(models.DB, raw.ID, pecans.ID, 1)
	assert.Nil(suite.T(), err)
	_, err = models.UpsertSelection(models.DB, hjs.ID, pecans.ID, 3)
	assert.Nil(suite.T(), err)
	_, err = models.UpsertSelection(models.DB, raw.ID, dates.ID, 2)
	assert.Nil(suite.T(), err)

	// Only selected with quantity 0, must not appear in the list
	_, err = models.UpsertSelection(models.DB, hjs.ID, raisins.ID, 0)
	assert.Nil(suite.T(), err)

	items, err := models.MasterList(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), items, 2)

	// Ordered by snack name
	assert.Equal(suite.T(), "Medjool Dates", items[0].SnackName)
	assert.Equal(suite.T(), 2, items[0].TotalQuantity)
	assert.Equal(suite.T(), 24, items[0].TotalPoints)

	assert.Equal(suite.T(), "Pecans", items[1].SnackName)
	assert.Equal(suite.T(), 4, items[1].TotalQuantity)
	assert.Equal(suite.T(), 100, items[1].TotalPoints)
	assert.Equal(suite.T(), "Costco", *items[1].Store)
}

func (suite *TestSuiteStandard) TestMasterListEmpty() {
	items, err := models.MasterList(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), items, 0)
}

func ptr(s string) *string {
	return &s
}
