package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string // S3-compatible endpoint, e.g. MinIO
	AccessKeyID     string
	SecretAccessKey string
	KeyPrefix       string
	PresignTTL      time.Duration
}

// S3Store keeps objects in a bucket; Serve redirects to a presigned GET.
type S3Store struct {
	client    *s3.Client
	presign   *s3.PresignClient
	bucket    string
	keyPrefix string
	ttl       time.Duration
}

func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		presign:   s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		keyPrefix: opts.KeyPrefix,
		ttl:       opts.PresignTTL,
	}, nil
}

func (s *S3Store) key(name string) string {
	return s.keyPrefix + name
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// Delete removes the object. S3 reports success for missing keys, so unlike
// LocalStore this never returns ErrNotFound.
func (s *S3Store) Delete(ctx context.Context, name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var names []string
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.keyPrefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.keyPrefix)
			if ValidName(name) {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func (s *S3Store) Serve(c *gin.Context, name string) {
	if !ValidName(name) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	req, err := s.presign.PresignGetObject(c.Request.Context(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("name", name).Msg("presign get failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, req.URL)
}
