package seeds

import (
	"log"

	"gorm.io/gorm"

	qa "problems_service/internals/seeds/qa"
)

func RunAllSeeds(db *gorm.DB, qaFile string) error {
	//* Questions & answers
	if err := qa.SeedQAFromJSON(db, qaFile); err != nil {
		return err
	}
	log.Println("✅ All seeds done")
	return nil
}
