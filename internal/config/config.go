package config

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Env       string
	DBType    string
	DBPath    string
	DBUrl     string
	RedisAddr string
	HTTPPort  string
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first via godotenv autoload.
func LoadConfig() *Config {
	v := viper.New()
	v.SetDefault("ENV", "dev")
	v.SetDefault("DB_TYPE", "sqlite")
	v.SetDefault("DB_PATH", "./.data/tinytweet.db")
	v.SetDefault("DB_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("HTTP_PORT", "4010")
	v.AutomaticEnv()

	return &Config{
		Env:       v.GetString("ENV"),
		DBType:    v.GetString("DB_TYPE"),
		DBPath:    v.GetString("DB_PATH"),
		DBUrl:     v.GetString("DB_URL"),
		RedisAddr: v.GetString("REDIS_ADDR"),
		HTTPPort:  v.GetString("HTTP_PORT"),
	}
}

// GetDb opens the configured database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey on both sqlite and postgres.
func GetDb(cnf *Config) *gorm.DB {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}

	switch cnf.DBType {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cnf.DBUrl), gormConfig)
		if err != nil {
			logrus.Fatalf("error connecting to postgres: %v", err)
		}
		return db
	default:
		db, err := gorm.Open(sqlite.Open(cnf.DBPath), gormConfig)
		if err != nil {
			logrus.Fatalf("error opening sqlite db: %v", err)
		}
		return db
	}
}
