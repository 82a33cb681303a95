package configprovider

import (
	"fmt"
	"log"
	"os"

	"assettag/providers"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	dbUser          string
	dbPassword      string
	dbHost          string
	dbPort          string
	dbName          string
	serverPort      string
	redisAddr       string
	adminPassword   string
	firebaseCreds   string
	photoBucketName string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = os.Getenv("SERVER_PORT")
	e.redisAddr = os.Getenv("REDIS_ADDR")
	e.adminPassword = os.Getenv("ADMIN_PASSWORD")
	e.firebaseCreds = os.Getenv("FIREBASE_CREDENTIALS")
	e.photoBucketName = os.Getenv("PHOTO_BUCKET")
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetAdminPassword() string {
	return e.adminPassword
}

func (e *EnvConfigProvider) GetFirebaseCredentialsFile() string {
	return e.firebaseCreds
}

func (e *EnvConfigProvider) GetPhotoBucket() string {
	return e.photoBucketName
}
