package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

// Env holds everything configured from the process environment, optionally
// seeded from a .env file in the working directory.
type Env struct {
	ServerAddress  string
	ContextTimeout int
	MongoURI       string
	DBName         string
	APIKey         string
	LogLevel       string
	DataDir        string
}

func NewEnv() *Env {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("CONTEXT_TIMEOUT", 10)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "goodbooks")
	v.SetDefault("API_KEY", "secret123")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_DIR", "")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Println("no .env file found, relying on environment and defaults")
	}
	v.AutomaticEnv()

	return &Env{
		ServerAddress:  v.GetString("SERVER_ADDRESS"),
		ContextTimeout: v.GetInt("CONTEXT_TIMEOUT"),
		MongoURI:       v.GetString("MONGO_URI"),
		DBName:         v.GetString("DB_NAME"),
		APIKey:         v.GetString("API_KEY"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DataDir:        v.GetString("DATA_DIR"),
	}
}
