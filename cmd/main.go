package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/harryneopotter/hanger-on-server/internal/api/http/appctx"
	"github.com/harryneopotter/hanger-on-server/internal/api/http/router"
	"github.com/harryneopotter/hanger-on-server/internal/config"
	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/repository/postgres"
	"github.com/harryneopotter/hanger-on-server/internal/server"
	"github.com/harryneopotter/hanger-on-server/internal/service"
	storage "github.com/harryneopotter/hanger-on-server/internal/storage/minio"
	"github.com/harryneopotter/hanger-on-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	verificationRepo := postgres.NewVerificationTokenRepository(db)
	garmentRepo := postgres.NewGarmentRepository(db)
	imageRepo := postgres.NewGarmentImageRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	transactor := postgres.NewTransactor(db)

	tokenManager := token.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(
		userRepo,
		accountRepo,
		sessionRepo,
		verificationRepo,
		garmentRepo,
		storageClient,
		tokenManager,
		logger.Component("auth"),
		service.AuthConfig{
			SessionTTL:           cfg.Auth.SessionTTL,
			VerificationTokenTTL: cfg.Auth.VerificationTokenTTL,
		},
	)
	wardrobeService := service.NewWardrobe(
		garmentRepo,
		imageRepo,
		tagRepo,
		storageClient,
		transactor,
		logger.Component("wardrobe"),
		cfg.Storage.PublicBaseURL,
	)
	ctxMgr := appctx.NewManager()

	httpServer := registerHTTPServer(authService, wardrobeService, userRepo, ctxMgr, logger.Component("http"), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	authService *service.Auth,
	wardrobeService *service.Wardrobe,
	userStore model.UserStore,
	ctxMgr model.ContextManager,
	logger *logger.Logger,
	addr string,
) *server.HTTPServer {
	r := router.New(authService, wardrobeService, userStore, ctxMgr, logger)

	return server.NewHTTPServer(r.Register(), addr)
}
