package model

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error *APIError `json:"error"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
