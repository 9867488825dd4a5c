package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeUseCaseNotFound = "USE_CASE_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeAuthRequired    = "AUTH_REQUIRED"
	ErrCodeSelfPurchase    = "SELF_PURCHASE"
	ErrCodeEmailExists     = "EMAIL_EXISTS"
	ErrCodeBadCredentials  = "BAD_CREDENTIALS"
	ErrCodePaymentFailed   = "PAYMENT_FAILED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUseCaseNotFound = NewDomainError(ErrCodeUseCaseNotFound, "Use case not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrAuthRequired    = NewDomainError(ErrCodeAuthRequired, "Please sign in to purchase this use case")
	ErrSelfPurchase    = NewDomainError(ErrCodeSelfPurchase, "You cannot purchase your own use case")
	ErrEmailExists     = NewDomainError(ErrCodeEmailExists, "An account with this email already exists")
	ErrBadCredentials  = NewDomainError(ErrCodeBadCredentials, "Invalid email or password")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must be a positive decimal amount")
)
