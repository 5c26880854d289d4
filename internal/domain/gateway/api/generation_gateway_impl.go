package api

import (
	"fmt"

	"packmate-api/internal/domain/model"
	"packmate-api/internal/domain/model/external"
	"packmate-api/pkg/http"
)

// GenerationOptions configures the completion call sent to the backend.
type GenerationOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// generationGatewayImpl implements the GenerationGateway interface against a
// chat-completions compatible API
type generationGatewayImpl struct {
	httpClient *http.Client
	options    GenerationOptions
}

// NewGenerationGateway creates a new instance of GenerationGateway with HTTP client
func NewGenerationGateway(baseUrl string, apiKey string, options GenerationOptions, clientOptions http.ClientOptions) GenerationGateway {
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = map[string]string{}
	}
	clientOptions.DefaultHeaders["Authorization"] = "Bearer " + apiKey

	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &generationGatewayImpl{
		httpClient: httpClient,
		options:    options,
	}
}

// Complete sends one chat completion request and returns the raw completion text
func (g *generationGatewayImpl) Complete(instructions string, context string) (string, error) {
	request := external.ChatCompletionRequest{
		Model:          g.options.Model,
		MaxTokens:      g.options.MaxTokens,
		Temperature:    g.options.Temperature,
		ResponseFormat: &external.ResponseFormat{Type: "json_object"},
		Messages: []external.ChatMessage{
			{Role: "system", Content: instructions},
			{Role: "user", Content: context},
		},
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/chat/completions").
		WithBody(request).
		WithSuccessResp(&external.ChatCompletionResponse{}).
		WithErrorResp(&external.ChatErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			errorResponse := errResp.(*external.ChatErrorResponse)
			if errorResponse.Error.Message != "" {
				return "", &model.GenerationFailure{Cause: fmt.Errorf("backend error: %s", errorResponse.Error.Message)}
			}
		}
		return "", &model.GenerationFailure{Cause: err}
	}

	response := successResp.(*external.ChatCompletionResponse)
	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", &model.GenerationFailure{}
	}

	return response.Choices[0].Message.Content, nil
}
