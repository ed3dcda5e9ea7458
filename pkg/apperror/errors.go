package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the closed taxonomy callers branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindDenied
	KindTransient
	KindCorruption
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindDenied:
		return "DENIED"
	case KindTransient:
		return "TRANSIENT"
	case KindCorruption:
		return "CORRUPTION"
	default:
		return "UNKNOWN"
	}
}

// AppError is a structured error carrying a stable machine code.
type AppError struct {
	Kind       Kind           `json:"-"`
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches denial context (balance, limit, role) so callers can
// render a user-facing message without a second lookup.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf extracts the Kind from any error in the chain, KindUnknown otherwise.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// CodeOf extracts the machine code from any error in the chain.
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// ---- Not found ----

func ErrWalletNotFound() *AppError {
	return New(KindNotFound, "WALLET_NOT_FOUND", "Wallet not found", http.StatusNotFound)
}

func ErrMemberNotFound() *AppError {
	return New(KindNotFound, "MEMBER_NOT_FOUND", "Wallet membership not found", http.StatusNotFound)
}

func ErrInviteNotFound() *AppError {
	return New(KindNotFound, "INVITE_NOT_FOUND", "Invite session not found or expired", http.StatusNotFound)
}

func ErrDefaultWalletNotSet() *AppError {
	return New(KindNotFound, "DEFAULT_WALLET_NOT_SET", "User has no default wallet", http.StatusNotFound)
}

// ---- Idempotency ----

func ErrIdempotencyConflict() *AppError {
	return New(KindConflict, "IDEMPOTENCY_CONFLICT", "Idempotency key reused with a different payload", http.StatusConflict)
}

func ErrIdempotencyInProgress() *AppError {
	return New(KindConflict, "IDEMPOTENCY_IN_PROGRESS", "Request with the same idempotency key is still processing", http.StatusConflict)
}

// ---- Conflict ----

func ErrWalletNotActive() *AppError {
	return New(KindConflict, "WALLET_NOT_ACTIVE", "Wallet is not in ACTIVE status", http.StatusConflict)
}

func ErrAlreadyInvited() *AppError {
	return New(KindConflict, "USER_ALREADY_INVITED", "A live invite already exists for this recipient", http.StatusConflict)
}

// ---- Denied ----

func ErrForbidden(message string) *AppError {
	return New(KindDenied, "FORBIDDEN", message, http.StatusForbidden)
}

func ErrRoleNotAllowed() *AppError {
	return New(KindDenied, "ROLE_NOT_ALLOWED", "Member role is not allowed to perform this action", http.StatusForbidden)
}

func ErrMaxMembersReached() *AppError {
	return New(KindDenied, "MAX_MEMBERS_REACHED", "Wallet member limit reached", http.StatusUnprocessableEntity)
}

func ErrInviteNotVerified() *AppError {
	return New(KindDenied, "INVITE_NOT_VERIFIED", "Invite is not verified for this account", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(KindDenied, "INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Validation ----

func Validation(message string) *AppError {
	return New(KindDenied, "VALIDATION_FAILED", message, http.StatusBadRequest)
}

// ---- Transient & corruption ----

func ErrDatabase(err error) *AppError {
	return Wrap(KindTransient, "SYS_DB", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEventLog(err error) *AppError {
	return Wrap(KindTransient, "SYS_EVENT_LOG", "Event log unavailable", http.StatusServiceUnavailable, err)
}

func ErrSessionStore(err error) *AppError {
	return Wrap(KindTransient, "SYS_SESSION_STORE", "Session store unavailable", http.StatusServiceUnavailable, err)
}

// ErrCorruptPayload marks stored state that fails to deserialize. Invite
// lookups surface it as NotFound (fail closed); kept distinct for logging.
func ErrCorruptPayload(err error) *AppError {
	return Wrap(KindCorruption, "SYS_CORRUPT_PAYLOAD", "Stored payload failed to deserialize", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a transient system error.
func InternalError(err error) *AppError {
	return Wrap(KindTransient, "SYS_INTERNAL", "Internal server error", http.StatusInternalServerError, err)
}
