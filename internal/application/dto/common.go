package dto

// MessageResponse es el sobre estándar de la API para errores y
// acknowledgements de mutación: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// Mensajes literales del contrato de la API. Clientes existentes dependen del
// texto exacto, no solo del código de estado.
const (
	MsgNoToken       = "Access denied. No token provided."
	MsgInvalidToken  = "Invalid Token"
	MsgNoPermissions = "You don't have permissions to access this resource."
	MsgTeapot        = "I'm a teapot. Don't ask me to brew coffee."
	MsgSuccess       = "The operation was successful."
	MsgBadLogin      = "Invalid email or password"
	MsgListFailure   = "There was an issue processing your request."
)
