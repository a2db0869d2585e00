package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse is returned by the liveness routes.
type StatusResponse struct {
	Status string `json:"status"`
}
