package models

import (
	"strings"

	"gorm.io/gorm"
)

// Roles a family account can have. A single account with RoleAdmin
// manages the catalog and the family accounts, all other accounts
// represent a household.
const (
	RoleAdmin  = "admin"
	RoleFamily = "family"
)

// Family is a household account with a points budget and a private
// access code. The name doubles as the login identifier.
type Family struct {
	DefaultModel
	Name          string `json:"name" gorm:"uniqueIndex" example:"RAW"`
	PointsAllowed int    `json:"pointsAllowed" gorm:"default:0" example:"800"`
	AccessCode    string `json:"accessCode" example:"apples"`
	Role          string `json:"role" gorm:"default:family" example:"family"`
}

// FamilyWithTotal is a family with its points usage, recomputed from
// the selection rows on every read.
type FamilyWithTotal struct {
	Family
	TotalPointsUsed int `json:"totalPointsUsed" example:"98"`
}

// BeforeSave trims whitespace and defaults the role.
func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.AccessCode = strings.TrimSpace(f.AccessCode)

	if f.Role == "" {
		f.Role = RoleFamily
	}

	return nil
}

// FamiliesWithTotals returns all families together with the points
// they have used, ordered by name.
//
// The total is the sum of quantity × snack points over the family’s
// selections. Families without selections appear with a total of 0.
// Zero-quantity selection rows contribute nothing, so they need no
// special handling here.
func FamiliesWithTotals(db *gorm.DB) ([]FamilyWithTotal, error) {
	var families []FamilyWithTotal

	err := db.Model(&Family{}).
		Select("families.*, COALESCE(SUM(selections.quantity * snacks.points), 0) AS total_points_used").
		Joins("LEFT JOIN selections ON selections.family_id = families.id").
		Joins("LEFT JOIN snacks ON snacks.id = selections.snack_id").
		Group("families.id").
		Order("families.name ASC").
		Find(&families).Error
	if err != nil {
		return []FamilyWithTotal{}, err
	}

	return families, nil
}

// FamilyByName returns the family with exactly this name.
func FamilyByName(db *gorm.DB, name string) (Family, error) {
	var family Family

	err := db.Where("name = ?", name).First(&family).Error
	if err != nil {
		return Family{}, err
	}

	return family, nil
}

// DeleteFamily removes a family and all of its selections.
func DeleteFamily(db *gorm.DB, family Family) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Selection{FamilyID: family.ID}).Delete(&Selection{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&family).Error
	})
}
