package models

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var seedFamilies = []string{
	"AEH", "ASH", "CCH", "CKH", "CTH", "DBH", "EBW", "ERH", "HAH", "HJS",
	"HLW", "HSM", "JAH", "JDH", "JDK", "JGK", "JTH", "JNH", "JSH", "JuDH",
	"KLK", "LEH", "MJH", "MMH", "PAUL", "RAW", "RDH", "RKH", "SMH", "TEH",
	"TSK", "VWW", "WLH", "ZKK",
}

var seedSnacks = []Snack{
	{Name: "KS Sweet Mangos", Points: 16, Store: ptr("Costco")},
	{Name: "Organic Mangoes", Points: 26, Store: ptr("Costco")},
	{Name: "Medjool Dates", Points: 12, Store: ptr("Superstore")},
	{Name: "Dried Pineapple", Points: 18, Store: ptr("Costco")},
	{Name: "Raisins", Points: 10, Store: ptr("Costco")},
	{Name: "Frozen Mangoes", Points: 13, Store: ptr("Costco")},
	{Name: "Ocean Spray Craisins", Points: 15, Store: ptr("Costco")},
	{Name: "Mott's Fruitsations", Points: 14, Store: ptr("Costco")},
	{Name: "That's it Fruit Bars", Points: 22, Store: ptr("Costco")},
	{Name: "Pecans", Points: 25, Store: ptr("Costco")},
}

func ptr(s string) *string {
	return &s
}

// Seed creates the initial family accounts and the starter snack
// catalog. It is idempotent: families are only created when no family
// exists yet, snacks only when the catalog is empty.
//
// Seeded family accounts get their own name as access code and an
// "ADMIN" account is created alongside them. Change the codes before
// giving out the URL.
func Seed(db *gorm.DB) error {
	var familyCount int64
	err := db.Model(&Family{}).Count(&familyCount).Error
	if err != nil {
		return err
	}

	if familyCount == 0 {
		families := make([]Family, 0, len(seedFamilies)+1)
		for _, name := range seedFamilies {
			families = append(families, Family{
				Name:          name,
				PointsAllowed: 800,
				AccessCode:    name,
				Role:          RoleFamily,
			})
		}
		families = append(families, Family{
			Name:       "ADMIN",
			AccessCode: "admin",
			Role:       RoleAdmin,
		})

		err = db.Create(&families).Error
		if err != nil {
			return err
		}

		log.Info().Int("families", len(families)).Msg("Seed")
	}

	var snackCount int64
	err = db.Model(&Snack{}).Count(&snackCount).Error
	if err != nil {
		return err
	}

	if snackCount == 0 {
		snacks := make([]Snack, len(seedSnacks))
		copy(snacks, seedSnacks)

		err = db.Create(&snacks).Error
		if err != nil {
			return err
		}

		log.Info().Int("snacks", len(snacks)).Msg("Seed")
	}

	return nil
}
