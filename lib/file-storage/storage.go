package filestorage

import (
	"context"
	s3client "ets-backend/s3"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadFile(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) error
	GetFile(ctx context.Context, key string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

var ErrStorageDisabled = errors.New("file storage is not configured")

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadFile(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) error {
	if i.s3client == nil {
		return ErrStorageDisabled
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, key, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", key)
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	if i.s3client == nil {
		return nil, ErrStorageDisabled
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}
	return body, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	if i.s3client == nil {
		return ErrStorageDisabled
	}
	return s3client.MakeBucket(ctx, i.s3client, i.bucketName)
}

// NewInstance accepts a nil client: every call then fails with ErrStorageDisabled.
func NewInstance(client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   client,
		bucketName: bucketName,
	}
}
