package models

// LoginRequest representa el request de autenticación
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse representa la respuesta con el token de acceso
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
