// Package env resolves secrets from the process environment, loading a
// local .env file first when one exists.
package env

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

var (
	RedisPassWord = os.Getenv("REDIS_PASSWORD")
	MongoPassWord = os.Getenv("MONGO_PASSWORD")
)
