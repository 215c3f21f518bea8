package datastores

import (
	"errors"
	"io"

	"github.com/avtools/soundwaves/common/config"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type s3Persister struct {
	client       *minio.Client
	bucket       string
	storageClass string
	publicBase   string
}

func newS3Persister(cfg config.S3Config) (*s3Persister, error) {
	if cfg.Endpoint == "" || cfg.BucketName == "" {
		return nil, errors.New("s3: endpoint and bucketName are required")
	}

	storageClass := cfg.StorageClass
	if storageClass == "" {
		storageClass = "STANDARD"
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Region: cfg.Region,
		Secure: cfg.Ssl,
		Creds:  credentials.NewStaticV4(cfg.AccessKeyId, cfg.AccessSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	return &s3Persister{
		client:       client,
		bucket:       cfg.BucketName,
		storageClass: storageClass,
		publicBase:   cfg.PublicBaseUrl,
	}, nil
}

func (s *s3Persister) Persist(ctx rcontext.RunContext, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx.Context, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		StorageClass: s.storageClass,
	})
	if err != nil {
		return "", err
	}

	if s.publicBase != "" {
		return s.publicBase + name, nil
	}
	return "s3://" + s.bucket + "/" + name, nil
}
