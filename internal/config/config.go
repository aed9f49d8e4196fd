package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RabbitMQURI      string
	RabbitMQExchange string
	ConsulAddress    string
	ServiceName      string
	ServiceID        string
	ServiceAddress   string
	JWTSecret        string
	JWTExpiryHours   int
	AllowOrigins     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	jwtExpiry, _ := strconv.Atoi(getEnvOrDefault("TOKEN_EXPIRY_HOURS", "24"))

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "3000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "aerosky"),
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvOrDefault("REDIS_PWD", ""),
		RedisDB:          redisDB,
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		ConsulAddress:    getEnvOrDefault("CONSUL_ADDR", ""),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "aerosky-service"),
		ServiceID:        getEnvOrDefault("SERVICE_NAME", "aerosky-service") + "-" + getEnvOrDefault("HOSTNAME", "1"),
		ServiceAddress:   getEnvOrDefault("SERVICE_ADDRESS", "aerosky-service"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "fallback-secret-key"),
		JWTExpiryHours:   jwtExpiry,
		AllowOrigins:     getEnvOrDefault("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
