package domain

import "errors"

// Error kinds. Every error the core returns on purpose unwraps to exactly one of these;
// anything else is an internal failure.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflict with current state")
)

// Error a kind-tagged domain error. Message is safe to show to API clients.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Invalid builds a validation error.
func Invalid(code, msg string) error { return &Error{Kind: ErrInvalidInput, Code: code, Message: msg} }

// NotFound builds a not-found error.
func NotFound(code, msg string) error { return &Error{Kind: ErrNotFound, Code: code, Message: msg} }

// Conflict builds a uniqueness error.
func Conflict(code, msg string) error { return &Error{Kind: ErrConflict, Code: code, Message: msg} }

// Forbidden builds an authorization error.
func Forbidden(code, msg string) error { return &Error{Kind: ErrForbidden, Code: code, Message: msg} }

// Unauthenticated builds a missing-identity error.
func Unauthenticated(code, msg string) error {
	return &Error{Kind: ErrUnauthenticated, Code: code, Message: msg}
}

// KindOf returns the kind sentinel err belongs to, or nil for internal errors.
func KindOf(err error) error {
	for _, kind := range []error{ErrInvalidInput, ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Tender applications.
var (
	ErrTenderIDRequired      = Invalid("TENDER_ID_REQUIRED", "tender id required")
	ErrAlreadyApplied        = Conflict("ALREADY_APPLIED", "already applied")
	ErrTenderNotFound        = NotFound("TENDER_NOT_FOUND", "tender not found")
	ErrTenderNotOpen         = Invalid("TENDER_NOT_OPEN", "tender not accepting applications")
	ErrApplicationIDRequired = Invalid("APPLICATION_ID_REQUIRED", "application id required")
	ErrApplicationNotFound   = NotFound("APPLICATION_NOT_FOUND", "application not found")
	ErrApplicationNotPending = Invalid("APPLICATION_NOT_PENDING", "cannot delete a non-pending application")
)

// Users and accounts.
var (
	ErrUserNotFound             = NotFound("USER_NOT_FOUND", "user not found")
	ErrEmailAlreadyExists       = Conflict("EMAIL_EXISTS", "user with this email already exists")
	ErrAdminUndeletable         = Forbidden("ADMIN_UNDELETABLE", "admin accounts cannot be deleted")
	ErrAdminRoleLocked          = Forbidden("ADMIN_ROLE_LOCKED", "admin accounts cannot change role")
	ErrCurrentPasswordIncorrect = Invalid("CURRENT_PASSWORD_INCORRECT", "current password incorrect")
	ErrPasswordMismatch         = Invalid("PASSWORD_MISMATCH", "passwords don't match")
	ErrNoChanges                = Invalid("NO_CHANGES", "no data to update")
	ErrInvalidCredentials       = Unauthenticated("INVALID_CREDENTIALS", "invalid credentials")
	ErrAccountDeactivated       = Forbidden("ACCOUNT_DEACTIVATED", "account is deactivated")
)

// Authorization.
var (
	ErrActorRequired = Unauthenticated("UNAUTHORIZED", "authentication required")
	ErrNotPermitted  = Forbidden("FORBIDDEN", "insufficient permissions")
)

// Documents.
var (
	ErrFileRequired     = Invalid("FILE_REQUIRED", "no file provided")
	ErrFileTooLarge     = Invalid("FILE_TOO_LARGE", "file size must be less than 10MB")
	ErrFileTypeRejected = Invalid("FILE_TYPE_NOT_ALLOWED", "file type not allowed, use PDF or Word documents")
	ErrDocumentKind     = Invalid("INVALID_FILE_TYPE", `invalid file type, must be "document" or "report"`)
)
