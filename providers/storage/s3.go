package storage

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SwiftShip/SwiftShip-Backend/providers"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Provider signs short-lived URLs for KYC documents and waybill files.
// Nothing is proxied through the API; clients upload and download directly.
type S3Provider struct {
	providers.BaseProvider
	client *s3.S3
	bucket string
}

func NewS3Provider(region string, bucket string) (*S3Provider, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create AWS session: %w", err)
	}

	return &S3Provider{
		BaseProvider: providers.BaseProvider{
			Name:   providers.S3,
			Client: &http.Client{Timeout: time.Second * 30},
		},
		client: s3.New(sess),
		bucket: bucket,
	}, nil
}

// PresignUpload returns a URL a client can PUT a document to.
func (p *S3Provider) PresignUpload(key string, contentType string) (string, error) {
	req, _ := p.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})

	url, err := req.Presign(15 * time.Minute)
	if err != nil {
		return "", fmt.Errorf("could not presign upload for %s: %w", key, err)
	}
	return url, nil
}

// PresignDownload returns a URL a reviewer can GET a document from.
func (p *S3Provider) PresignDownload(key string) (string, error) {
	req, _ := p.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(15 * time.Minute)
	if err != nil {
		return "", fmt.Errorf("could not presign download for %s: %w", key, err)
	}
	return url, nil
}
