package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Selection records how many units of a snack a family has requested.
//
// There is at most one row per (family, snack) pair, enforced by the
// composite unique index. A row may have quantity 0: setting the
// quantity is an idempotent overwrite for any value including 0, and
// a zero row is excluded from aggregates instead of being deleted.
type Selection struct {
	DefaultModel
	FamilyID uint64 `json:"familyId" gorm:"uniqueIndex:selection_family_snack" example:"3"`
	Family   Family `json:"-"`
	SnackID  uint64 `json:"snackId" gorm:"uniqueIndex:selection_family_snack" example:"7"`
	Snack    Snack  `json:"-"`
	Quantity int    `json:"quantity" gorm:"default:0" example:"2"`
}

var ErrSelectionQuantityNegative = errors.New("the quantity of a selection must not be negative")

// BeforeSave validates the quantity.
func (s *Selection) BeforeSave(_ *gorm.DB) error {
	if s.Quantity < 0 {
		return ErrSelectionQuantityNegative
	}

	return nil
}

// MasterListItem is one row of the cross-family shopping list.
type MasterListItem struct {
	SnackID       uint64  `json:"snackId" example:"7"`
	SnackName     string  `json:"snackName" example:"Pecans"`
	Store         *string `json:"store" example:"Costco"`
	TotalQuantity int     `json:"totalQuantity" example:"4"`
	TotalPoints   int     `json:"totalPoints" example:"100"`
}

// UpsertSelection sets the quantity for a (family, snack) pair.
//
// The write is a single statement on the composite unique key: it
// inserts the row if the pair is new and overwrites the quantity
// unconditionally if it exists. Concurrent writers therefore cannot
// interleave, the last write wins.
func UpsertSelection(db *gorm.DB, familyID, snackID uint64, quantity int) (Selection, error) {
	selection := Selection{
		FamilyID: familyID,
		SnackID:  snackID,
		Quantity: quantity,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "family_id"}, {Name: "snack_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&selection).Error
	if err != nil {
		return Selection{}, err
	}

	// On a conflict the insert does not report the existing row, so
	// read the result back to return the correct ID and timestamps.
	// A fresh struct is needed here, the primary key the insert filled
	// in is not reliable on the update path
	var result Selection
	err = db.Where("family_id = ? AND snack_id = ?", familyID, snackID).First(&result).Error
	if err != nil {
		return Selection{}, err
	}

	return result, nil
}

// SelectionsForFamily returns all selection rows of one family with
// their snacks preloaded. Zero-quantity rows are included, the client
// uses them to show a quantity of 0 for a previously selected snack.
func SelectionsForFamily(db *gorm.DB, familyID uint64) ([]Selection, error) {
	var selections []Selection

	// An explicit condition, a struct condition would drop a zero ID
	// and return every family's rows
	err := db.Preload("Snack").Where("family_id = ?", familyID).Find(&selections).Error
	if err != nil {
		return []Selection{}, err
	}

	return selections, nil
}

// MasterList aggregates all selections into one procurement list.
//
// Every snack with at least one positive selection appears exactly
// once with the quantity and points summed over all families. Snacks
// whose selections are all zero are excluded entirely. The list is
// computed from the live selection rows on every call.
func MasterList(db *gorm.DB) ([]MasterListItem, error) {
	var items []MasterListItem

	err := db.Table("selections").
		Select("snacks.id AS snack_id, snacks.name AS snack_name, snacks.store AS store, SUM(selections.quantity) AS total_quantity, SUM(selections.quantity * snacks.points) AS total_points").
		Joins("JOIN snacks ON snacks.id = selections.snack_id").
		Where("selections.quantity > 0").
		Group("snacks.id").
		Order("snacks.name ASC").
		Find(&items).Error
	if err != nil {
		return []MasterListItem{}, err
	}

	return items, nil
}
