// Package objectstore issues presigned S3 uploads for receiver documents.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"afternote/internal/platform/config"
)

// PresignedUpload is a one-shot PUT target plus the URL the object will be
// readable at afterwards.
type PresignedUpload struct {
	URL     string
	FileURL string
}

type presignPutAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Presigner signs PUT requests against one bucket.
type S3Presigner struct {
	client  presignPutAPI
	bucket  string
	baseURL string
	ttl     time.Duration
}

// NewS3Presigner builds the presign client from static credentials. A custom
// endpoint (MinIO, localstack) switches to path-style addressing.
func NewS3Presigner(ctx context.Context, cfg config.S3Config) (*S3Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Presigner{
		client:  s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		ttl:     ttl,
	}, nil
}

// PresignPut signs a PUT for key with the given content type.
func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return nil, fmt.Errorf("presign put %s: %w", key, err)
	}
	return &PresignedUpload{
		URL:     req.URL,
		FileURL: p.baseURL + "/" + key,
	}, nil
}

func publicBaseURL(cfg config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
