package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/handlers"
	"todo-serverless-api/pkg/lambda"
)

// handler services one API Gateway invocation. Dependencies are built
// lazily on the first invocation and reused for the life of the process, so
// a missing DATABASE_URL surfaces as a request-time 500, not an init panic.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize dependencies")
		return toAPIGatewayResponse(handlers.InternalErrorResponse()), nil
	}

	req := &lambda.Request{
		Method:          event.HTTPMethod,
		Path:            event.Path,
		Headers:         event.Headers,
		Body:            event.Body,
		IsBase64Encoded: event.IsBase64Encoded,
	}

	router := handlers.NewRouter(container.Todos, container.Logger)
	return toAPIGatewayResponse(router.Dispatch(ctx, req)), nil
}

func toAPIGatewayResponse(resp *lambda.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

func main() {
	awslambda.Start(handler)
}
