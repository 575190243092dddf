package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/apexglitch/crm/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the required customer name attribute.
	FieldName = "name"

	// FieldEmail targets the required customer email attribute.
	FieldEmail = "email"

	// FieldColumns targets the full key set of the payload against the
	// authoritative customer column allow-list.
	FieldColumns = "columns"
)

// CustomerValidator implements the Validator interface for customer payloads.
// A payload is the client-supplied field set of a create or update request;
// every key must be a known customer column and the required attributes must
// carry non-empty values.
type CustomerValidator struct {
}

func NewCustomerValidator() Validator {
	return &CustomerValidator{}
}

func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CustomerFields:
		return v.validateCustomerFields(ctx, value, fields...)
	case map[string]any:
		return v.validateCustomerFields(ctx, models.CustomerFields(value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustomerValidator) validateCustomerFields(_ context.Context, payload models.CustomerFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldColumns, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldColumns:
			if len(payload) == 0 {
				return ErrEmptyPayload
			}
			for key := range payload {
				if !models.KnownCustomerColumn(key) {
					return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
				}
			}
		case FieldName:
			if strings.TrimSpace(payload.String(models.CustomerColumnName)) == "" {
				return ErrMissingName
			}
		case FieldEmail:
			if strings.TrimSpace(payload.String(models.CustomerColumnEmail)) == "" {
				return ErrMissingEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
