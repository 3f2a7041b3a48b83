package response

// ErrorResponse is the error body for every failed request: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}
