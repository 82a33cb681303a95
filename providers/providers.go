package providers

import (
	"context"
	"net/http"
	"time"

	"assettag/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserFromContext(r *http.Request) (models.AuthUser, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	GetAdminPassword() string
	GetFirebaseCredentialsFile() string
	GetPhotoBucket() string
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// PhotoStorageProvider stores a photo for an asset slot and returns a stable
// reference URL. The core never interprets the URL.
type PhotoStorageProvider interface {
	StorePhoto(ctx context.Context, assetNumber string, slot models.PhotoSlot, data []byte) (string, error)
}
