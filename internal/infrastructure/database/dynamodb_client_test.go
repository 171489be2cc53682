package database

import (
	"context"
	"testing"

	"mcbot/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.AWS{Region: "eu-west-1", AccessKeyID: "local", SecretAccessKey: "local", Endpoint: "http://localhost:8000"}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "eu-west-1" {
		t.Fatalf("expected region eu-west-1, got %s", awsCfg.Region)
	}

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %+v err=%v", creds, err)
	}

	ep, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "eu-west-1")
	if err != nil || ep.URL != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %+v err=%v", ep, err)
	}
	if _, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint("S3", "eu-west-1"); err == nil {
		t.Fatalf("other services must not be redirected")
	}
}
