package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"server/config"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
}

func NewS3Storage(bucket string) (*S3Storage, error) {
	cfg := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_KEY != "" {
		cfg.Credentials = credentials.NewStaticCredentials(config.S3_KEY, config.S3_SECRET, "")
	}
	if config.S3_ENDPOINT != "" {
		cfg.Endpoint = aws.String(config.S3_ENDPOINT)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(&cfg)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	client := s3.New(sess)
	return &S3Storage{
		bucket:   bucket,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(key),
		ContentType: &contentType,
		Body:        body,
	})
	return err
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) URL(key string) string {
	if config.S3_ENDPOINT != "" {
		return fmt.Sprintf("%s/%s/%s", config.S3_ENDPOINT, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, config.S3_REGION, key)
}
