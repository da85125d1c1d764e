// Package s3service loads and publishes visa catalog documents in S3.
package s3service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/catalog"
	appConfig "visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/utils"
)

// ObjectAPI is the subset of the S3 client the service needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Service handles S3 operations
type Service struct {
	client     ObjectAPI
	bucketName string
}

// NewService creates a new S3 service from the default AWS credential chain.
func NewService(ctx context.Context, appCfg *appConfig.Config) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(appCfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewServiceWithClient(s3.NewFromConfig(cfg), appCfg.S3Bucket), nil
}

// NewServiceWithClient wraps an existing client.
func NewServiceWithClient(client ObjectAPI, bucket string) *Service {
	return &Service{client: client, bucketName: bucket}
}

// DownloadFile downloads a file from S3
func (s *Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to download file from S3",
			zap.String("bucket", s.bucketName),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	utils.GetLogger().Info("Downloaded file from S3",
		zap.String("bucket", s.bucketName),
		zap.String("key", key),
		zap.Int("size", len(data)),
	)

	return data, nil
}

// UploadFile uploads a file to S3
func (s *Service) UploadFile(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to upload file to S3",
			zap.String("bucket", s.bucketName),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to upload file: %w", err)
	}

	utils.GetLogger().Info("Uploaded file to S3",
		zap.String("bucket", s.bucketName),
		zap.String("key", key),
		zap.Int("size", len(data)),
	)

	return nil
}

// PublishCatalog writes a catalog document to key.
func (s *Service) PublishCatalog(ctx context.Context, key string, c *catalog.Catalog, version string) error {
	data, err := catalog.Marshal(c, version)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return s.UploadFile(ctx, key, data, "application/json")
}

// CatalogSource reads the catalog document stored at Key.
type CatalogSource struct {
	Service *Service
	Key     string
}

// Load downloads and parses the catalog document.
func (c CatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	data, err := c.Service.DownloadFile(ctx, c.Key)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog s3://%s/%s: %w", c.Service.bucketName, c.Key, err)
	}

	return cat, nil
}

// Name identifies the source in logs and health output.
func (c CatalogSource) Name() string {
	return "s3://" + c.Service.bucketName + "/" + c.Key
}
