package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2Archive uploads submissions to a Cloudflare R2 bucket.
type R2Archive struct {
	client     putObjectAPI
	bucketName string
}

// NewR2Archive creates an R2Archive client.
// endpoint should be "https://<account-id>.r2.cloudflarestorage.com".
func NewR2Archive(accessKeyID, secretAccessKey, endpoint, bucketName string) *R2Archive {
	cfg := aws.Config{
		Region: "auto",
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		),
		BaseEndpoint: aws.String(endpoint),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// R2 requires path-style addressing
		o.UsePathStyle = true
	})

	return &R2Archive{client: client, bucketName: bucketName}
}

// Record uploads reg as a JSON object keyed by ObjectKey.
func (ra *R2Archive) Record(ctx context.Context, reg *models.Registration) error {
	body, err := encode(reg)
	if err != nil {
		return fmt.Errorf("failed to encode submission %s: %w", reg.ID, err)
	}
	_, err = ra.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ra.bucketName),
		Key:         aws.String(ObjectKey(reg)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}
