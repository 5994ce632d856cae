package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	Port     string
	MongoURI string
	DBName   string
	Store    string
	LogLevel string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Every key has a default so a bare `go run .` against a
// local MongoDB works.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "1337")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "StudentInformationSystem")
	viper.SetDefault("STORE", "mongo")
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		AppEnv:   viper.GetString("APP_ENV"),
		Port:     viper.GetString("PORT"),
		MongoURI: viper.GetString("MONGO_URI"),
		DBName:   viper.GetString("DB_NAME"),
		Store:    viper.GetString("STORE"),
		LogLevel: viper.GetString("LOG_LEVEL"),
	}
}
