package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// CreatedResponse carries the identifier of a newly created record
type CreatedResponse struct {
	ID int64 `json:"id" example:"42"`
}

// DeletionResponse describes how a record was removed
type DeletionResponse struct {
	Entity   string `json:"entity" example:"staff"`
	ID       int64  `json:"id" example:"7"`
	Strategy string `json:"strategy" example:"detach"`
}
