package models

// ErrorCode representa el código de error
type ErrorCode string

const (
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrorCodeRateLimited    ErrorCode = "RATE_LIMITED"
	ErrorCodeInternal       ErrorCode = "INTERNAL"
)

// ErrorResponse representa la respuesta de error estandarizada
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo representa la información del error
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(code),
			Message: message,
		},
	}
}

// NewValidationError crea un error de request inválido
func NewValidationError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInvalidRequest, message)
}

// NewUnauthorizedError crea un error de autenticación
func NewUnauthorizedError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeUnauthorized, message)
}

// NewRateLimitedError crea un error de rate limiting
func NewRateLimitedError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeRateLimited, message)
}

// NewInternalError crea un error interno del servidor
func NewInternalError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInternal, message)
}
