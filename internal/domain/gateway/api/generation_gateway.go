package api

// GenerationGateway defines the interface for the generative backend
type GenerationGateway interface {
	// Complete sends the fixed instructions and the variable trip context to
	// the backend and returns the raw text of the completion. A single call,
	// no internal retry; an empty payload is an error.
	Complete(instructions string, context string) (string, error)
}
