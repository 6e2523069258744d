// Package notify carries admin alert messages from the API to the worker
// that emails them out.
package notify

// Alert types understood by the worker.
const (
	TypePasswordResetRequested = "password_reset_requested"
)

// Job is the JSON payload put on the RabbitMQ alert queue.
type Job struct {
	Type     string         `json:"type"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
