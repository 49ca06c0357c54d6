package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidQueryError    = "invalid_query"
	HttpInvalidCSVError      = "invalid_csv"
	HttpDatasetNotFoundError = "dataset_not_found"
	HttpPayloadTooLargeError = "payload_too_large"
)

// ErrorResponse is the error response body shared by all handlers.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
