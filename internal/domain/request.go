package domain

// ChatRequest is the inbound chat message.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	Domain    string `json:"domain,omitempty"`
	ModelID   string `json:"model_id,omitempty"`
}

// ChatResponse is returned for a successful turn.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Domain    Domain `json:"domain"`
	ModelUsed string `json:"model_used"`
}

// ModelSummary describes one entry of the backend model catalog.
type ModelSummary struct {
	ModelID                    string   `json:"model_id"`
	ModelName                  string   `json:"model_name"`
	ProviderName               string   `json:"provider_name"`
	InputModalities            []string `json:"input_modalities"`
	OutputModalities           []string `json:"output_modalities"`
	ResponseStreamingSupported bool     `json:"response_streaming_supported"`
}
