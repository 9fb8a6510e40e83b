package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/logging"
	"github.com/devfolio/backend/internal/config"
)

// ObjectStore is the slice of the storage layer the entity services need.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Remove(ctx context.Context, keys []string) error
	PublicURL(key string) string
	ExtractKey(rawURL string) string
}

// StorageService talks to the S3-compatible bucket holding all site images
type StorageService struct {
	client       *s3.Client
	cfg          *config.Config
	publicPrefix string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	client, err := buildClient(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretAccessKey, cfg.S3UsePathStyle)
	if err != nil {
		return nil, err
	}

	return &StorageService{
		client:       client,
		cfg:          cfg,
		publicPrefix: strings.TrimRight(cfg.StoragePublicURL, "/") + "/",
	}, nil
}

func buildClient(endpoint, region, key, secret string, pathStyle bool) (*s3.Client, error) {
	resolver := awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
		func(service, rgn string, options ...interface{}) (aws.Endpoint, error) {
			if endpoint != "" {
				return aws.Endpoint{URL: endpoint, SigningRegion: region}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}))
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		resolver,
		awsconfig.WithLogger(logging.NewStandardLogger(nil)),
	)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = pathStyle
		if endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
	return client, nil
}

// BuildObjectKey derives the storage key for an uploaded file. The
// timestamp prefix keeps keys unique without renaming the file.
func BuildObjectKey(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)
}

// Upload writes an object to the bucket. Overwrites are refused: a key
// collision fails instead of silently replacing the existing object.
func (s *StorageService) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	uploader := manager.NewUploader(s.client)
	in := &s3.PutObjectInput{
		Bucket:      &s.cfg.StorageBucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
		IfNoneMatch: aws.String("*"),
		ACL:         s3types.ObjectCannedACLPublicRead,
	}
	_, err := uploader.Upload(ctx, in, func(u *manager.Uploader) { u.PartSize = 10 * 1024 * 1024 })
	return err
}

// Remove deletes a batch of objects in one call
func (s *StorageService) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]s3types.ObjectIdentifier, len(keys))
	for i, key := range keys {
		k := key
		objects[i] = s3types.ObjectIdentifier{Key: &k}
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &s.cfg.StorageBucket,
		Delete: &s3types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return err
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return fmt.Errorf("failed to delete %d object(s), first: %s (%s)",
			len(out.Errors), aws.ToString(first.Key), aws.ToString(first.Message))
	}
	return nil
}

// PublicURL derives the public retrieval URL for a key. Pure, no I/O.
func (s *StorageService) PublicURL(key string) string {
	return s.publicPrefix + key
}

// ExtractKey parses a public URL back into its storage key. URLs that do
// not start with the bucket's public-object prefix, including malformed
// ones, yield "" and are skipped by cleanup rather than treated as errors.
func (s *StorageService) ExtractKey(rawURL string) string {
	if rawURL == "" || !strings.HasPrefix(rawURL, s.publicPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(rawURL, s.publicPrefix)
	if rest == "" {
		return ""
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return ""
	}
	return key
}
