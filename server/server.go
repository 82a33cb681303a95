package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"assettag/providers"
	configprovider "assettag/providers/configProvider"
	databaseprovider "assettag/providers/databaseProvider"
	loggerprovider "assettag/providers/loggerProvider"
	middlewareprovider "assettag/providers/middlewareProvider"
	photoprovider "assettag/providers/photoProvider"
	redisprovider "assettag/providers/redisProvider"
	assetservice "assettag/services/asset"
	statsservice "assettag/services/stats"
	userservice "assettag/services/user"
	"assettag/utils"
)

type Server struct {
	Config       providers.ConfigProvider
	DB           providers.DBProvider
	Redis        providers.RedisProvider
	Logger       providers.ZapLoggerProvider
	Middleware   providers.AuthMiddlewareService
	UserHandler  *userservice.UserHandler
	AssetHandler *assetservice.AssetHandler
	StatsHandler *statsservice.StatsHandler
	httpServer   *http.Server
}

func ServerInit() *Server {
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	utils.InitLogger()

	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())

	var rdb providers.RedisProvider
	if cfg.GetRedisAddr() != "" {
		rdb = redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	}

	photos := newPhotoProvider(cfg)
	middleware := middlewareprovider.NewAuthMiddlewareService()

	// repositories
	userRepo := userservice.NewUserRepository(db.DB())
	assetRepo := assetservice.NewAssetRepository(db.DB())
	statsRepo := statsservice.NewStatsRepository(db.DB())

	// services
	userService := userservice.NewUserService(userRepo)
	assetService := assetservice.NewAssetService(assetRepo, db.DB(), photos)
	statsService := statsservice.NewStatsService(statsRepo, rdb)

	// handlers
	userHandler := userservice.NewUserHandler(userService, middleware)
	assetHandler := assetservice.NewAssetHandler(assetService, middleware)
	statsHandler := statsservice.NewStatsHandler(statsService, middleware)

	if pwd := cfg.GetAdminPassword(); pwd != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := userService.EnsureDefaultAdmin(ctx, pwd); err != nil {
			log.Fatalf("failed to seed default admin: %+v", err)
		}
	}

	return &Server{
		Config:       cfg,
		DB:           db,
		Redis:        rdb,
		Logger:       logger,
		Middleware:   middleware,
		UserHandler:  userHandler,
		AssetHandler: assetHandler,
		StatsHandler: statsHandler,
	}
}

func newPhotoProvider(cfg providers.ConfigProvider) providers.PhotoStorageProvider {
	creds := cfg.GetFirebaseCredentialsFile()
	bucket := cfg.GetPhotoBucket()
	if creds == "" || bucket == "" {
		log.Println("Warning: photo bucket not configured, using static URL provider")
		return photoprovider.NewStaticURLProvider("https://photos.local/assets")
	}

	photos, err := photoprovider.NewFirebasePhotoProvider(context.Background(), creds, bucket)
	if err != nil {
		log.Fatalf("failed to init photo storage: %+v", err)
	}
	return photos
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	fmt.Println("server running on", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	fmt.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("error shutting down server: %v", err)
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	if err := s.DB.Close(); err != nil {
		log.Printf("error closing DB: %v", err)
	}

	s.Logger.SyncLogger()
	fmt.Println("Server shutdown complete.")
}
