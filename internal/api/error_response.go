package api

// Error codes carried alongside HTTP status so clients can branch on the
// failure kind rather than parse messages.
const (
	CodeValidation      = "VALIDATION"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL"
)

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"proposal not found"`
}
