package main

// repository.go data access over the store. One set of operations per entity:
// list, insert, delete. There is no update; edits are delete-and-reinsert by
// the caller.

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB(path string) {
	var err error
	db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migrate the schema. The settings table is migrated but has no
	// reader or writer yet.
	if err := db.AutoMigrate(&Project{}, &ResumeEntry{}, &Setting{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
}

func listProjects() ([]Project, error) {
	projects := []Project{}
	if err := db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func insertProject(p *Project) (uint, error) {
	if err := db.Create(p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// deleteProject removes the row matching id. Deleting an id that is not
// there is not an error; the id string is handed to the engine as-is.
func deleteProject(id string) error {
	return db.Delete(&Project{}, "id = ?", id).Error
}

func listResumeEntries() ([]ResumeEntry, error) {
	entries := []ResumeEntry{}
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func insertResumeEntry(e *ResumeEntry) (uint, error) {
	if err := db.Create(e).Error; err != nil {
		return 0, err
	}
	return e.ID, nil
}

func deleteResumeEntry(id string) error {
	return db.Delete(&ResumeEntry{}, "id = ?", id).Error
}
