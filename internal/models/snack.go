package models

import (
	"strings"

	"gorm.io/gorm"
)

// Snack is a catalog item that families can select within their
// points budget.
type Snack struct {
	DefaultModel
	Name       string    `json:"name" example:"Pecans"`
	Store      *string   `json:"store" example:"Costco"`
	Link       *string   `json:"link" example:"https://example.com/products/pecans"`
	Points     int       `json:"points" gorm:"default:0" example:"25"`
	ImageURL   *string   `json:"imageUrl"`
	CategoryID *uint64   `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}

// BeforeSave trims whitespace from the name.
func (s *Snack) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

// Snacks returns the full catalog with each snack’s category
// preloaded, ordered by snack name.
func Snacks(db *gorm.DB) ([]Snack, error) {
	var snacks []Snack

	err := db.Preload("Category").Order("snacks.name ASC").Find(&snacks).Error
	if err != nil {
		return []Snack{}, err
	}

	return snacks, nil
}

// DeleteSnack removes a snack and all selections referencing it.
//
// The selections have to go first since they reference the snack. Both
// deletes run in one transaction so that an interrupted delete cannot
// leave selections pointing at a missing snack.
func DeleteSnack(db *gorm.DB, snack Snack) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Selection{SnackID: snack.ID}).Delete(&Selection{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&snack).Error
	})
}
