package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MaxAvatarSize is the largest accepted upload
const MaxAvatarSize = 2 << 20

// ErrNotImage is returned for uploads that are not an image
var ErrNotImage = errors.New("avatar must be an image")

// AvatarStore saves profile pictures and returns the URL to show them
type AvatarStore interface {
	Save(ctx context.Context, userID uint, data []byte) (string, error)
}

// DetectImage returns the content type of data when it is an image
func DetectImage(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	return contentType, nil
}

// inlineStore keeps the picture in the user row as a data URL, the way the
// account page stored it before object storage existed.
type inlineStore struct{}

// NewInlineStore creates an AvatarStore that returns data URLs
func NewInlineStore() AvatarStore {
	return inlineStore{}
}

func (inlineStore) Save(_ context.Context, _ uint, data []byte) (string, error) {
	contentType, err := DetectImage(data)
	if err != nil {
		return "", err
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// MinioConfig is what NewMinioStore needs to reach the bucket
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL prefixes object names in the returned URL. Defaults to the
	// endpoint.
	PublicURL string
}

type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects to MinIO and creates the bucket when missing
func NewMinioStore(ctx context.Context, cfg MinioConfig) (AvatarStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.WithField("bucket", cfg.Bucket).Info("created avatar bucket")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	return &minioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *minioStore) Save(ctx context.Context, userID uint, data []byte) (string, error) {
	contentType, err := DetectImage(data)
	if err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(contentType, "image/")
	name := path.Join("users", fmt.Sprint(userID), uuid.NewString()+"."+ext)

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return s.publicURL + "/" + s.bucket + "/" + name, nil
}
