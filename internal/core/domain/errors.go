package domain

import "errors"

// ErrorKind classifies every failure the core can produce. Front ends
// branch on the kind; the message is what they show the user.
type ErrorKind string

const (
	// KindValidation marks bad user input. Recoverable, retry is up to
	// the front end.
	KindValidation ErrorKind = "validation"
	// KindCatalogueLoad marks a missing or corrupt room inventory file.
	KindCatalogueLoad ErrorKind = "catalogue_load"
	// KindStorage marks an I/O or data failure in the reservation store.
	KindStorage ErrorKind = "storage"
	// KindNotFound marks a cancel or lookup for an unknown reference.
	KindNotFound ErrorKind = "not_found"
)

// Error carries a machine-checkable kind next to the human-readable
// message. Cause, when set, is the underlying I/O or parse error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewCatalogueLoadError(message string, cause error) *Error {
	return &Error{Kind: KindCatalogueLoad, Message: message, Cause: cause}
}

func NewStorageError(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Cause: cause}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// HasKind reports whether err is (or wraps) a core Error of the given kind.
func HasKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
