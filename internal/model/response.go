package model

// ErrorBody is the uniform wire shape for failures. Messages stay short
// and never expose verification internals.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
