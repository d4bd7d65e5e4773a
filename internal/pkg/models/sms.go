package models

// SMSSendResult is the outcome of a single SMS delivery attempt. Gateways never
// return an error for delivery problems; they report them here.
type SMSSendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
