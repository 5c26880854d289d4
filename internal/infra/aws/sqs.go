package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"packmate-api/pkg/resource"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(options *sqs.Options) {
		// LocalStack endpoint override
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			options.BaseEndpoint = &endpoint
		}
	})
}
