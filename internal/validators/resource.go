package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-resource-client/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the server-assigned identifier of a post or user.
	FieldID = "id"

	// FieldNewRecord enforces that the identifier is still zero, as it must
	// be for records that are about to be created.
	FieldNewRecord = "new_record"

	// FieldUserID targets the author reference of a post.
	FieldUserID = "user_id"

	// FieldTitle targets the headline of a post.
	FieldTitle = "title"

	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldUsername targets the login name of a user.
	FieldUsername = "username"

	// FieldEmail targets the e-mail address of a user. An empty address is
	// accepted.
	FieldEmail = "email"

	// FieldStatusCode targets the injected status of a fault.
	FieldStatusCode = "status_code"

	// FieldDelay targets the injected delay of a fault.
	FieldDelay = "delay"

	// FieldRate targets the trigger probability of a fault.
	FieldRate = "rate"

	// FieldEffect requires a fault to do something observable.
	FieldEffect = "effect"
)

// ResourceValidator implements the Validator interface for the resource
// service models: Post, User and Fault.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ResourceValidator struct {
}

// NewResourceValidator constructs a new ResourceValidator
// and returns it as the Validator interface.
func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Fault:
		return v.validateFault(value, fields...)
	case *models.Fault:
		return v.validateFault(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePost validates a Post.
//
// Default validated fields (when none specified): UserID, Title.
func (v *ResourceValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if post.ID <= 0 {
				return ErrInvalidID
			}
		case FieldNewRecord:
			if post.ID != 0 {
				return ErrIDMustBeEmpty
			}
		case FieldUserID:
			if post.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(post.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates a User.
//
// Default validated fields (when none specified): Name, Username, Email.
func (v *ResourceValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID <= 0 {
				return ErrInvalidID
			}
		case FieldNewRecord:
			if user.ID != 0 {
				return ErrIDMustBeEmpty
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if user.Email == "" {
				continue
			}
			if _, err := mail.ParseAddress(user.Email); err != nil {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFault validates a Fault registered on the fixture server.
//
// Default validated fields (when none specified): every fault field.
func (v *ResourceValidator) validateFault(fault models.Fault, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatusCode, FieldDelay, FieldRate, FieldEffect}
	}

	for _, f := range fields {
		switch f {
		case FieldStatusCode:
			if fault.StatusCode != 0 && (fault.StatusCode < 100 || fault.StatusCode > 599) {
				return ErrInvalidStatus
			}
		case FieldDelay:
			if fault.DelayMS < 0 {
				return ErrNegativeDelay
			}
		case FieldRate:
			if fault.Rate < 0 || fault.Rate > 1 {
				return ErrInvalidRate
			}
		case FieldEffect:
			if fault.StatusCode == 0 && fault.DelayMS == 0 && !fault.Drop {
				return ErrFaultHasNoEffect
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
