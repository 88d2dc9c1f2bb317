package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid ID")
	ErrIDMustBeEmpty    = errors.New("ID must not be set for new records")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidStatus    = errors.New("status code must be within 100..599")
	ErrNegativeDelay    = errors.New("delay must not be negative")
	ErrInvalidRate      = errors.New("rate must be within 0..1")
	ErrFaultHasNoEffect = errors.New("fault must set a status code, a delay or drop")
)
