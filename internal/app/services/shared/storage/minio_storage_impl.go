package storage

import (
	"bytes"
	"context"
	"io"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	ObjectName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName, objectName string) contracts.DocumentStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		ObjectName:  objectName,
	}
}

func (m *minioStorage) Driver() string {
	return constvars.StoreDriverMinio
}

func (m *minioStorage) Location() string {
	return m.BucketName + "/" + m.ObjectName
}

func (m *minioStorage) Read(ctx context.Context) ([]byte, bool, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, m.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, exceptions.ErrStoreReadDocument(err, m.Driver())
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrStoreReadDocument(err, m.Driver())
	}
	return data, true, nil
}

func (m *minioStorage) Write(ctx context.Context, data []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		m.ObjectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrStoreWriteDocument(err, m.Driver())
	}
	return nil
}
