// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Apex Glitch

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexglitch/crm/models"
)

func validCustomerPayload() models.CustomerFields {
	return models.CustomerFields{
		"name":    "Acme Corp",
		"email":   "ops@acme.test",
		"phone":   "555-0100",
		"company": "Acme",
	}
}

func TestNewCustomerValidator(t *testing.T) {
	v := NewCustomerValidator()
	require.NotNil(t, v)
}

func TestCustomerValidate_Dispatch(t *testing.T) {
	v := NewCustomerValidator()
	ctx := context.Background()

	t.Run("customer fields", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validCustomerPayload()))
	})

	t.Run("plain map", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, map[string]any{
			"name":  "Acme Corp",
			"email": "ops@acme.test",
		}))
	})

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestCustomerValidate(t *testing.T) {
	v := NewCustomerValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		payload models.CustomerFields
		fields  []string
		wantErr error
	}{
		{
			name:    "valid payload",
			payload: validCustomerPayload(),
		},
		{
			name:    "empty payload",
			payload: models.CustomerFields{},
			wantErr: ErrEmptyPayload,
		},
		{
			name: "missing name",
			payload: models.CustomerFields{
				"email": "ops@acme.test",
			},
			wantErr: ErrMissingName,
		},
		{
			name: "blank name",
			payload: models.CustomerFields{
				"name":  "   ",
				"email": "ops@acme.test",
			},
			wantErr: ErrMissingName,
		},
		{
			name: "missing email",
			payload: models.CustomerFields{
				"name": "Acme Corp",
			},
			wantErr: ErrMissingEmail,
		},
		{
			name: "unknown column",
			payload: models.CustomerFields{
				"name":     "Acme Corp",
				"email":    "ops@acme.test",
				"password": "injected",
			},
			wantErr: ErrUnknownColumn,
		},
		{
			name: "id is not a writable column",
			payload: models.CustomerFields{
				"id":    99,
				"name":  "Acme Corp",
				"email": "ops@acme.test",
			},
			wantErr: ErrUnknownColumn,
		},
		{
			name: "field scoping skips unscoped checks",
			payload: models.CustomerFields{
				"phone": "555-0100",
			},
			fields: []string{FieldColumns},
		},
		{
			name:    "unknown validation field",
			payload: validCustomerPayload(),
			fields:  []string{"no-such-field"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.payload, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
