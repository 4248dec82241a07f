package plet

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gopkg.in/yaml.v3"
)

// StoreConfig holds the S3/MinIO settings used for uploading merged exports.
type StoreConfig struct {
	Bucket          string `yaml:"bucket"`
	EndpointURL     string `yaml:"endpoint_url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
}

// validate checks the fields a client cannot be built without.
func (c *StoreConfig) validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("store config: bucket is required")
	case c.EndpointURL == "":
		return fmt.Errorf("store config: endpoint_url is required")
	case c.AccessKeyID == "" || c.SecretAccessKey == "":
		return fmt.Errorf("store config: credentials are required")
	}
	return nil
}

// LoadStoreConfig reads object-store settings from a YAML file.
func LoadStoreConfig(path string) (*StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store config: %w", err)
	}

	var cfg StoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse store config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StoreConfigFromEnv reads object-store settings from the environment,
// loading a .env file first when one is present:
//
//	PLET_S3_BUCKET, PLET_S3_ENDPOINT, PLET_S3_ACCESS_KEY,
//	PLET_S3_SECRET_KEY, PLET_S3_SESSION_TOKEN (optional)
func StoreConfigFromEnv() (*StoreConfig, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := &StoreConfig{
		Bucket:          os.Getenv("PLET_S3_BUCKET"),
		EndpointURL:     os.Getenv("PLET_S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("PLET_S3_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("PLET_S3_SECRET_KEY"),
		SessionToken:    os.Getenv("PLET_S3_SESSION_TOKEN"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ObjectStore uploads harvest exports to an S3-compatible bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// NewObjectStore creates an object store client from config.
func NewObjectStore(cfg *StoreConfig) (*ObjectStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	endpoint := u.Host
	if endpoint == "" {
		endpoint = cfg.EndpointURL
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		Secure: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the configured bucket if it does not exist.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

// UploadFile uploads a local file under the given object key and returns the
// object URI.
func (s *ObjectStore) UploadFile(ctx context.Context, key, path string) (string, error) {
	contentType := "application/octet-stream"
	switch {
	case hasExt(path, ".csv"):
		contentType = "text/csv"
	case hasExt(path, ".parquet"):
		contentType = "application/vnd.apache.parquet"
	}

	if _, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func hasExt(path, ext string) bool {
	return len(path) >= len(ext) && path[len(path)-len(ext):] == ext
}
