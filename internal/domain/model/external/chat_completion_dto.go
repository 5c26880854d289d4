package external

// ChatCompletionRequest represents a chat completions request to the generative backend
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Messages       []ChatMessage   `json:"messages"`
}

// ResponseFormat constrains the backend output; type "json_object" forces bare JSON
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatMessage is a single role-tagged message of the prompt
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse represents the chat completions response payload
type ChatCompletionResponse struct {
	Choices []ChatChoice `json:"choices"`
}

// ChatChoice is one generated completion
type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

// ChatErrorResponse represents error responses from the generative backend
type ChatErrorResponse struct {
	Error ChatError `json:"error"`
}

// ChatError carries the error detail of a failed completion call
type ChatError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
