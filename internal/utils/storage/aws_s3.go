package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

type awsS3 struct {
	client *s3.Client
	bucket string
	region string
}

// NewAwsS3 returns an Uploader backed by an S3 bucket. Credentials and bucket
// come from the AWS_* config values.
func NewAwsS3() Uploader {
	region := os.Getenv("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY"),
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("AWS_S3_BUCKET"),
		region: region,
	}
}

func (a *awsS3) UploadFile(file *multipart.FileHeader, allowed ...string) (string, error) {
	if !ValidExtension(file.Filename, allowed...) {
		return "", ErrInvalidExtension
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := StoredName(file.Filename)
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String("uploads/" + name),
		Body:   src,
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (a *awsS3) DeleteFile(name string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String("uploads/" + name),
	})
	return err
}

// FileLink resolves a stored object name to its public bucket URL.
func (a *awsS3) FileLink(name string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/uploads/%s", a.bucket, a.region, name)
}
