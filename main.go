package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/kabore-dev/prepa-concours/internal/container"
	"github.com/kabore-dev/prepa-concours/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		QuizHandler:        c.QuizContainer.Handler,
		AIQuizHandler:      c.AIQuizContainer.Handler,
		SessionHandler:     c.SessionContainer.Handler,
		AttemptHandler:     c.AttemptContainer.Handler,
		TransactionHandler: c.TransactionContainer.Handler,
		FormationHandler:   c.FormationContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
