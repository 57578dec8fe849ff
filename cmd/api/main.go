package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"picprompt/internal/http/handlers"
	"picprompt/internal/http/httpapi"
	"picprompt/internal/infra"
	"picprompt/internal/storage"
	"picprompt/internal/textgen"
	"picprompt/internal/vision"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	awsCfg, err := loadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load aws config")
	}

	detector := vision.NewRekognitionDetector(rekognition.NewFromConfig(awsCfg), vision.RekognitionOptions{
		MaxLabels:     cfg.LabelMax,
		MinConfidence: cfg.LabelMinConfidence,
	})

	generator, err := newGenerator(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build text generator")
	}

	var archive storage.Store
	switch {
	case cfg.ArchiveBucket != "":
		archive = storage.NewS3Store(s3.NewFromConfig(awsCfg), cfg.ArchiveBucket)
		logger.Info().Str("bucket", cfg.ArchiveBucket).Msg("upload archive: s3")
	case cfg.ArchiveDir != "":
		archive, err = storage.NewFileStore(cfg.ArchiveDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init file archive")
		}
		logger.Info().Str("dir", cfg.ArchiveDir).Msg("upload archive: filesystem")
	}

	app := handlers.NewApp(cfg, logger, detector, generator, archive)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("provider", cfg.TextProvider).Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region != "" {
		return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx)
}

func newGenerator(cfg *infra.Config) (textgen.Generator, error) {
	switch cfg.TextProvider {
	case textgen.ProviderGemini:
		return textgen.NewGeminiGenerator(textgen.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
	case textgen.ProviderOpenAI:
		return textgen.NewOpenAIGenerator(textgen.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
		})
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.TextProvider)
	}
}
