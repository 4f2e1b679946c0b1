package types

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// MessageResponse is the success body of POST /api/generate. Message is
// always present, even when the model returned no text.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body of every JSON endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ComposeResponse is the body returned by POST /api/compose.
type ComposeResponse struct {
	Prompt string `json:"prompt"`
}

// GenerationResult is what the form page shows after a submission: at most
// one of Message or Error is set.
type GenerationResult struct {
	Message string
	Error   string
}
