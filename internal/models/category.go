package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups snacks in the catalog, e.g. "Dried Fruit".
type Category struct {
	DefaultModel
	Name string `json:"name" gorm:"uniqueIndex" example:"Dried Fruit"`
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Snacks returns all snacks in this category.
func (c Category) Snacks(db *gorm.DB) ([]Snack, error) {
	var snacks []Snack

	err := db.Where(&Snack{CategoryID: &c.ID}).Find(&snacks).Error
	if err != nil {
		return []Snack{}, err
	}

	return snacks, nil
}

// DeleteCategory removes a category, detaching its snacks first.
//
// The snacks themselves are kept, they only lose their category
// reference. Detach and delete run in one transaction so that an
// interrupted delete cannot leave a dangling reference.
func DeleteCategory(db *gorm.DB, category Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Snack{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
