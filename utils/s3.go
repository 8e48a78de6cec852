package utils

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/thecosmeticshop/backend/config"
)

// Uploader stores images in S3. It is constructed once at startup; handlers
// receive it by reference.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// NewUploader loads the AWS SDK config and builds the S3 client.
func NewUploader(ctx context.Context, cfg appconfig.UploadConfig) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	log.Println("S3 Client Initialized")
	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.AWSRegion,
	}, nil
}

// Upload puts the object and returns its key.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return objectKey, nil
}

// ObjectURL returns the stable public URL for a stored object. Image fields on
// products and banners persist this value, so it must not expire.
func (u *Uploader) ObjectURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, objectKey)
}
