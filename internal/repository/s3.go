package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// S3API is the subset of the S3 client used here.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3AnalyticsSink writes each record as a JSON object in a bucket.
type S3AnalyticsSink struct {
	client S3API
	bucket string
}

var _ AnalyticsSink = (*S3AnalyticsSink)(nil)

// NewS3AnalyticsSink creates a sink over bucket.
func NewS3AnalyticsSink(client S3API, bucket string) *S3AnalyticsSink {
	return &S3AnalyticsSink{client: client, bucket: bucket}
}

// WriteRecord puts the record at key.
func (s *S3AnalyticsSink) WriteRecord(ctx context.Context, key string, record *domain.AnalyticsRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal analytics record: %w", err)
	}
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return unavailable("put analytics object", err)
	}
	return nil
}
