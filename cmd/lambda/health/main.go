// Health Check Lambda entry point
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

	rt, err := handlers.Bootstrap(context.Background(), cfg, nil)
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	handler := handlers.NewHealthHandler(rt.API, rt.DB)
	defer handler.Close()

	lambda.Start(handler.Handle)
}
