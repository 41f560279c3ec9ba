package models

// Envelope is the uniform response wrapper returned by every listing and
// CRUD endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// ChatResponse is the shape returned by the chat endpoint. It always carries
// a message, even when the upstream service failed.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadResponse is the shape returned by the file upload endpoint.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
