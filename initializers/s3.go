package initializers

import (
	"context"
	"ets-backend/config"
	filestorage "ets-backend/lib/file-storage"
	s3client "ets-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 leaves document storage disabled when no endpoint is configured.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not configured, document storage is disabled")
		filestorage.Instance = filestorage.NewInstance(nil, config.Conf.S3.BucketName)
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("failed to create S3 client")
		filestorage.Instance = filestorage.NewInstance(nil, config.Conf.S3.BucketName)
		return
	}

	s3client.Client = minioClient
	filestorage.Instance = filestorage.NewInstance(minioClient, config.Conf.S3.BucketName)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("S3 connection check failed")
		return
	}
	log.WithField("bucket", config.Conf.S3.BucketName).Info("S3 client initialized")
}
