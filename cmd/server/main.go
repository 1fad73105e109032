package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pdfshorts/backend/internal/container"
	"github.com/pdfshorts/backend/internal/router"
)

func main() {
	_ = godotenv.Load()

	c, err := container.New(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("failed to build container")
	}

	handler := router.New(router.RouterConfig{
		PDFFileHandler: c.PDFFileContainer.Handler,
		ShortsHandler:  c.ShortsContainer.Handler,
		ChatHandler:    c.ChatContainer.Handler,
		EventsHandler:  c.EventsHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler.(*chi.Mux))
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	logrus.WithField("addr", c.Config.Addr).Info("API listening")
	if err := http.ListenAndServe(c.Config.Addr, handler); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
