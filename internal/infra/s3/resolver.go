package infra_s3

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ClientType string

const (
	ClientTypeRealS3 ClientType = "real"
	ClientTypeLocal  ClientType = "local"
)

func MustEstablishConn() *s3.Client {
	switch getClientType() {
	case ClientTypeLocal:
		return createLocalClient()
	case ClientTypeRealS3:
		fallthrough
	default:
		return createRealClient()
	}
}

func getClientType() ClientType {
	if os.Getenv("S3_CLIENT_TYPE") == string(ClientTypeLocal) {
		return ClientTypeLocal
	}
	return ClientTypeRealS3
}

func createRealClient() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg)
}

// createLocalClient targets a MinIO-style endpoint for development.
func createLocalClient() *s3.Client {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:9000"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "")),
		config.WithRegion("us-east-1"),
	)
	if err != nil {
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
}
