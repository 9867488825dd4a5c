package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"usecase-market/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading catalog files from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalog loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 catalog loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads a JSON catalog object from S3 and returns its use cases.
// The source parameter is the full S3 key (including any prefix).
func (l *s3Loader) Load(ctx context.Context, source string) ([]model.UseCase, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", source).
		Msg("loading catalog from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(source),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", source).
			Msg("failed to get catalog object from S3")
		return nil, fmt.Errorf("failed to get catalog object s3://%s/%s: %w", l.bucket, source, err)
	}
	defer result.Body.Close()

	var useCases []model.UseCase
	if err := json.NewDecoder(result.Body).Decode(&useCases); err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", source).
			Msg("failed to decode catalog object")
		return nil, fmt.Errorf("failed to decode catalog object s3://%s/%s: %w", l.bucket, source, err)
	}

	if err := validateUseCases(useCases); err != nil {
		return nil, fmt.Errorf("invalid catalog object s3://%s/%s: %w", l.bucket, source, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", source).
		Int("use_cases", len(useCases)).
		Msg("catalog loaded from S3 successfully")

	return useCases, nil
}
