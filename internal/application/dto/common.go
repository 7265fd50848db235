package dto

// ErrorResponse cuerpo de error HTTP (solo para 401/403/500; los 400/404 del
// contrato de tareas van sin cuerpo).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
