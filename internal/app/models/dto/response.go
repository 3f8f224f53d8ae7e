package dto

import "time"

// APIResponse is the uniform success envelope returned by every handler.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Registration created successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-02-10T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope with data and a message.
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo carries paging metadata for list endpoints.
type PaginationInfo struct {
	CurrentPage int   `json:"page" example:"1"`
	PageSize    int   `json:"limit" example:"10"`
	TotalItems  int64 `json:"total" example:"142"`
	TotalPages  int   `json:"totalPages" example:"15"`
}
