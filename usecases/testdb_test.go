package usecases

import (
	"moodgut-server/db"
	"moodgut-server/entities"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) db.Database {
	t.Helper()
	d, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AutoMigrate(&entities.User{}, &entities.DailyLog{}); err != nil {
		t.Fatal(err)
	}
	return &db.GormDatabase{DB: d}
}
