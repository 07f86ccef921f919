package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port                    string
	Env                     string
	MongoURI                string
	MongoDatabase           string
	FirebaseCredentialsPath string
	StorageBucket           string
	FeedBatchSize           int
	FriendCodeAttempts      int
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "gymbros"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		FeedBatchSize:           getIntEnv("FEED_BATCH_SIZE", 30),
		FriendCodeAttempts:      getIntEnv("FRIEND_CODE_ATTEMPTS", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
