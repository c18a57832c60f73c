// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"ribbon/entities"
)

// OpenSQLite opens the knowledge database, migrates the schema and installs
// the default FAQ set when the store has never been written before. A table
// that exists but was emptied by an admin is left empty.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	fresh := !db.Migrator().HasTable(&entities.FAQEntry{})

	if err := db.AutoMigrate(
		&entities.FAQEntry{},
		&entities.UnansweredQuestion{},
		&entities.ReferenceDocument{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if fresh {
		seed := entities.DefaultFAQ()
		if err := db.Create(&seed).Error; err != nil {
			log.Fatalf("seed faq: %v", err)
		}
		log.Printf("[db] seeded %d default FAQ entries", len(seed))
	}

	return db
}
