package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/config"
)

type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewS3Storage builds the client from cfg alone. Shared AWS config files and
// AWS_* variables are never consulted.
func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region must not be empty")
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
			o.UsePathStyle = cfg.ForcePathStyle
			// B2 and older MinIO releases reject the CRC32 headers the SDK adds by default.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	client := s3.New(s3.Options{}, opts...)

	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

func (s *S3Storage) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presigning put %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *S3Storage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presigning get %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *S3Storage) GetCORSRules(ctx context.Context) ([]entity.CORSRule, error) {
	out, err := s.client.GetBucketCors(ctx, &s3.GetBucketCorsInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return nil, classifyCORSError("getting bucket cors", err)
	}

	rules := make([]entity.CORSRule, 0, len(out.CORSRules))
	for _, r := range out.CORSRules {
		rules = append(rules, fromS3Rule(r))
	}
	return rules, nil
}

func (s *S3Storage) PutCORSRules(ctx context.Context, rules []entity.CORSRule) error {
	s3Rules := make([]types.CORSRule, 0, len(rules))
	for _, r := range rules {
		s3Rules = append(s3Rules, toS3Rule(r))
	}

	_, err := s.client.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket: aws.String(s.bucket),
		CORSConfiguration: &types.CORSConfiguration{
			CORSRules: s3Rules,
		},
	})
	if err != nil {
		return classifyCORSError("putting bucket cors", err)
	}
	return nil
}

func (s *S3Storage) Bucket() string {
	return s.bucket
}

func fromS3Rule(r types.CORSRule) entity.CORSRule {
	return entity.CORSRule{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: r.AllowedMethods,
		AllowedHeaders: r.AllowedHeaders,
		ExposeHeaders:  r.ExposeHeaders,
		MaxAgeSeconds:  aws.ToInt32(r.MaxAgeSeconds),
	}
}

func toS3Rule(r entity.CORSRule) types.CORSRule {
	rule := types.CORSRule{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: r.AllowedMethods,
		AllowedHeaders: r.AllowedHeaders,
		ExposeHeaders:  r.ExposeHeaders,
	}
	if r.MaxAgeSeconds > 0 {
		rule.MaxAgeSeconds = aws.Int32(r.MaxAgeSeconds)
	}
	return rule
}
