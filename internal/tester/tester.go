package tester

import (
	"os"

	"github.com/emrgen/tinytweet/internal/cache"
	"github.com/emrgen/tinytweet/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testPath = "../../.test/"
)

var (
	db *gorm.DB
)

func Setup() {
	RemoveDBFile()

	_ = os.Setenv("ENV", "test")

	err := os.MkdirAll(testPath+"/db", os.ModePerm)
	if err != nil {
		panic(err)
	}

	db, err = gorm.Open(sqlite.Open(testPath+"db/tinytweet.db"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	// single connection so concurrent test writers queue instead of
	// hitting sqlite busy errors
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = model.Migrate(db)
	if err != nil {
		panic(err)
	}
}

func TestDB() *gorm.DB {
	return db
}

func RemoveDBFile() {
	err := os.RemoveAll(testPath)
	if err != nil {
		panic(err)
	}
}

func Cache() cache.EngagementCache {
	return cache.NewNop()
}
