package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"feedback360-backend/config"
	filestoragestorage "feedback360-backend/lib/file-storage/storage"
	s3client "feedback360-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	filestoragestorage.NewInstance(minioClient)
	if err = filestoragestorage.Instance.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("ошибка подготовки бакета для выгрузок")
	}
	log.Info("S3 клиент успешно инициализирован")
}
