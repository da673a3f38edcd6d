package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Missing lista los permisos faltantes cuando el error es de autorización.
	Missing []string `json:"missing,omitempty"`
	// RedirectTo indica adónde debe navegar el cliente (login o home).
	RedirectTo string `json:"redirect_to,omitempty"`
}
