package minio

import (
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
)

// DefaultPresignedExpiry is the default lifetime of presigned URLs.
const DefaultPresignedExpiry = 30 * time.Minute

var (
	ErrEndpointRequired    = errors.New("minio: endpoint is required")
	ErrCredentialsRequired = errors.New("minio: access key and secret key are required")
	ErrBucketRequired      = errors.New("minio: bucket name is required")
	ErrObjectRequired      = errors.New("minio: object name is required")
)

// Config holds MinIO connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      Config
}

// PresignedURLRequest contains the parameters for generating a presigned URL.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// PresignedURLResponse contains the generated presigned URL and its metadata.
type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrCredentialsRequired
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if req == nil || req.BucketName == "" {
		return ErrBucketRequired
	}
	if req.ObjectName == "" {
		return ErrObjectRequired
	}
	return nil
}
