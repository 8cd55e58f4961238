package minio

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return ErrNotConnected
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// DownloadFile opens the object for reading. The caller closes the reader.
func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *FileInfo, error) {
	if err := validateDownloadRequest(req); err != nil {
		return nil, nil, err
	}
	info, err := m.GetFileInfo(ctx, req.BucketName, req.ObjectName)
	if err != nil {
		return nil, nil, err
	}
	object, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "download_file")
	}
	return object, info, nil
}

func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}
	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, handleMinIOError(err, "file_exists")
	}
	return true, nil
}

// ParseObjectURL splits s3://bucket/path into bucket and object name.
func ParseObjectURL(fileURL string) (bucket, objectName string, err error) {
	if !strings.HasPrefix(fileURL, URLScheme) {
		return "", "", ErrInvalidURL
	}
	parts := strings.SplitN(strings.TrimPrefix(fileURL, URLScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidURL
	}
	return parts[0], parts[1], nil
}

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" {
		return ErrAccessKeyRequired
	}
	if cfg.SecretKey == "" {
		return ErrSecretKeyRequired
	}
	return nil
}

func validateDownloadRequest(req *DownloadRequest) error {
	if req == nil || req.BucketName == "" {
		return ErrBucketRequired
	}
	if req.ObjectName == "" {
		return ErrObjectRequired
	}
	return nil
}
