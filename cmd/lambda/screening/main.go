// Intake screening Lambda entry point, triggered by S3 uploads.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/utils"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	rt, err := handlers.Bootstrap(ctx, cfg, nil)
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}
	defer rt.Close()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		panic("Failed to load AWS config: " + err.Error())
	}

	handler := handlers.NewScreeningHandler(rt.Engine, s3.NewFromConfig(awsCfg))
	lambda.Start(handler.Handle)
}
