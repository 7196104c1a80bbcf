package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/infrastructure/dynamo"
	"github.com/dive-demo-tour/api/internal/infrastructure/resend"
	s3infra "github.com/dive-demo-tour/api/internal/infrastructure/s3"
	transporthttp "github.com/dive-demo-tour/api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap the DynamoDB table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTableKV)
	kv := dynamo.NewKV(dynamoClient, cfg.DynamoTableKV)

	// S3 store for uploaded images.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// Email provider client. With a placeholder API key it stays inert and
	// every send is logged as not configured.
	mailer := resend.NewClient(cfg)

	deps := &transporthttp.Deps{
		RegistrationRepo: dynamo.NewRegistrationRepo(kv),
		EventRepo:        dynamo.NewEventRepo(kv),
		BrandRepo:        dynamo.NewBrandRepo(kv),
		PartnerRepo:      dynamo.NewPartnerRepo(kv),
		ModuleRepo:       dynamo.NewModuleRepo(kv),
		SettingsRepo:     dynamo.NewSettingsRepo(kv),
		S3Store:          s3Store,
		Mailer:           mailer,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
