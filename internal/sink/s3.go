package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 writes objects to a single bucket under an optional key prefix.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3Config holds explicit construction parameters. Empty credentials fall
// back to the default AWS credential chain.
type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string // optional, e.g. MinIO
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool

	// HTTPClient overrides the transport (tests)
	HTTPClient *http.Client
}

// NewS3 creates an S3 sink from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
		// S3-compatible stores commonly reject trailing checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3{client: client, bucket: cfg.Bucket, prefix: strings.Trim(cfg.Prefix, "/")}, nil
}

func (s *S3) Driver() Driver { return DriverS3 }

func (s *S3) objectKey(key string) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return k, nil
	}
	return path.Join(s.prefix, k), nil
}

func (s *S3) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	k, err := s.objectKey(key)
	if err != nil {
		return Info{}, err
	}

	// buffer so the SDK gets a seekable body with a known length
	body, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(k),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if len(opts.Metadata) > 0 {
		input.Metadata = opts.Metadata
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return Info{}, fmt.Errorf("put s3://%s/%s: %w", s.bucket, k, err)
	}

	return Info{Key: k, Location: "s3://" + s.bucket + "/" + k, Size: int64(len(body))}, nil
}
