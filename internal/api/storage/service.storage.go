// Package storage upload file của field type "file" lên MinIO và trả về URL lưu vào formData.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"hr_admin/config"
	"hr_admin/internal/common"
	"hr_admin/internal/global"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileService upload file lên MinIO dưới object key ngẫu nhiên
type FileService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// InitMinioClient khởi tạo client MinIO từ config và đảm bảo bucket tồn tại.
// Không cấu hình endpoint → trả về nil (upload file bị tắt, các tính năng khác vẫn chạy).
func InitMinioClient(ctx context.Context, cfg *config.Configuration) (*minio.Client, error) {
	if cfg.MinIO_Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.MinIO_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO_AccessKey, cfg.MinIO_SecretKey, ""),
		Secure: cfg.MinIO_UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("khởi tạo MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO_Bucket)
	if err != nil {
		return nil, fmt.Errorf("kiểm tra bucket '%s': %w", cfg.MinIO_Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO_Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("tạo bucket '%s': %w", cfg.MinIO_Bucket, err)
		}
	}

	return client, nil
}

// NewFileService tạo mới FileService từ client đã init trong global
func NewFileService() (*FileService, error) {
	if global.MinioClient == nil {
		return nil, common.NewError(
			common.ErrCodeStorage,
			"MinIO chưa được cấu hình, tính năng upload file bị tắt",
			common.StatusServiceUnavailable,
			nil,
		)
	}

	return &FileService{
		client:    global.MinioClient,
		bucket:    global.ServerConfig.MinIO_Bucket,
		publicURL: global.ServerConfig.MinIO_PublicURL,
	}, nil
}

// Upload lưu file dưới object key ngẫu nhiên (giữ extension) và trả về URL tải về
func (s *FileService) Upload(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("uploads/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String(), filepath.Ext(fileName))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", common.NewError(
			common.ErrCodeStorage,
			fmt.Sprintf("Lỗi upload file '%s' lên storage: %v", fileName, err),
			common.StatusInternalServerError,
			err,
		)
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName), nil
}
