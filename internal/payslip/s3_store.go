package payslip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/shared/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const defaultPresignExpiration = 15 * time.Minute

// S3Store keeps payslips in an S3 compatible bucket (AWS, MinIO). The
// reference saved on the payroll is the object key; downloads get a
// presigned GET URL.
type S3Store struct {
	client            *s3.Client
	presignClient     *s3.PresignClient
	bucket            string
	presignExpiration time.Duration
	logger            *zap.Logger
}

func NewS3Store(cfg config.S3Config, logger *zap.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := cfg.Endpoint
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	expiration := cfg.PresignExpiration
	if expiration <= 0 {
		expiration = defaultPresignExpiration
	}

	return &S3Store{
		client:            client,
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: expiration,
		logger:            logger.Named("payslip.s3"),
	}, nil
}

func (s *S3Store) Bucket() string {
	return s.bucket
}

func (s *S3Store) Save(ctx context.Context, key string, body []byte) (string, error) {
	if key == "" {
		return "", errors.New("payslip key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(ContentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("upload payslip: %w", err)
	}

	s.logger.Debug("payslip uploaded", zap.String("bucket", s.bucket), zap.String("key", key))
	return key, nil
}

func (s *S3Store) URL(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", errors.New("payslip reference is required")
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", fmt.Errorf("presign payslip download: %w", err)
	}
	return req.URL, nil
}

// NewStore picks the backend named by cfg.Storage.
func NewStore(cfg config.PayslipConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Storage {
	case config.PayslipStorageS3:
		store, err := NewS3Store(cfg.S3, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.PayslipStorageLocal, "":
		store, err := NewLocalStore(cfg.Dir, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown payslip storage %q", cfg.Storage)
	}
}
