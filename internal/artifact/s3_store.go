package artifact

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/getsentry/sentry-go"
)

const artifactContentType = "text/plain; charset=utf-8"

// PutObjectAPI is the subset of the S3 client used by the store
type PutObjectAPI interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// S3Store writes artifacts to an S3 bucket with a single atomic put per save.
// The store relies on the SDK's default timeout and retry behavior.
type S3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Store creates a store around an existing S3 client
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// NewS3StoreFromConfig creates a store with its own S3 client for the region
func NewS3StoreFromConfig(ctx context.Context, region, bucket, prefix string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: load AWS config: %v", ErrSaveFailed, err)
	}

	log.Printf("🪣 S3 artifact store initialized (bucket: %s, prefix: %s)", bucket, prefix)

	return NewS3Store(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// Save writes content under a key derived from the current time and returns
// the s3:// location. The caller treats any error as fatal for the request.
func (s *S3Store) Save(ctx context.Context, content string) (string, error) {
	key := Key(s.prefix, s.now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(content),
		ContentType: aws.String(artifactContentType),
	})
	if err != nil {
		sentry.CaptureException(err)
		return "", fmt.Errorf("%w: put object %s: %v", ErrSaveFailed, key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.Printf("💾 Blog saved to S3: %s", location)
	return location, nil
}
