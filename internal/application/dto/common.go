package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación (p. ej. eliminaciones).
type MessageResponse struct {
	Message string `json:"message"`
}
