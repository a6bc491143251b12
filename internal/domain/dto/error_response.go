package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx API response.
//
// Example:
//
//	{"message":"invalid all parameter","error":"strconv.ParseBool: parsing \"maybe\": invalid syntax","timestamp":"2024-10-01T12:00:00Z"}
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid all parameter"`
	ErrorDetails string    `json:"error,omitempty" example:"strconv.ParseBool: parsing \"maybe\": invalid syntax"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
