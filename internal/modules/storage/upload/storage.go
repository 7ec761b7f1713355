package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/agrotech/core/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage persists an uploaded file and returns its public URL.
type Storage interface {
	Save(ctx context.Context, fh *multipart.FileHeader, fileName, mimeType string) (string, error)
}

// LocalStorage writes uploads under the static directory, which the server
// serves back at /static.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg *config.AppConfig) *LocalStorage {
	return &LocalStorage{
		dir:     cfg.ResolveStaticDir(),
		baseURL: cfg.BaseURL,
	}
}

func (l *LocalStorage) Save(_ context.Context, fh *multipart.FileHeader, fileName, _ string) (string, error) {
	dir := filepath.Join(l.dir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return l.baseURL + "/static/uploads/" + fileName, nil
}

// S3Storage uploads files to an S3-compatible bucket.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg config.UploadConfig) *S3Storage {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID, cfg.S3SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
	return &S3Storage{client: client, bucket: cfg.S3Bucket, publicURL: publicURL}
}

func (s *S3Storage) Save(ctx context.Context, fh *multipart.FileHeader, fileName, mimeType string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := "uploads/" + fileName
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(fh.Size),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// buildFileName produces a collision-free name keeping the original
// extension.
func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
