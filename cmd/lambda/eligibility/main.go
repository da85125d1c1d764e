// Eligibility API Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	// The catalog is loaded once per cold start.
	rt, err := handlers.Bootstrap(context.Background(), cfg, nil)
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}
	defer rt.Close()

	lambda.Start(handlers.NewLambdaHandler(rt.API).Handle)
}
