package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

// HealthCheck verifies the MinIO endpoint is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.minioClient.ListBuckets(ctx)
	return err
}

// BucketExists checks whether a bucket exists.
func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.minioClient.BucketExists(ctx, bucketName)
}

// FileExists checks whether an object exists in a bucket.
func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetPresignedDownloadURL generates a time-limited download URL for an object.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}

	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignedExpiry
	}

	url, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, nil)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
