package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name: "valid donor",
			req:  RegisterRequest{Email: "donor@example.com", Password: "secret123", Role: "DONOR"},
		},
		{
			name: "valid ngo",
			req:  RegisterRequest{Email: "ngo@example.com", Password: "secret123", Role: "NGO"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "secret123", Role: "DONOR"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Email: "donor@example.com", Role: "DONOR"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing role",
			req:     RegisterRequest{Email: "donor@example.com", Password: "secret123"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "admin role is not self-service",
			req:     RegisterRequest{Email: "admin@example.com", Password: "secret123", Role: "ADMIN"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "unknown role",
			req:     RegisterRequest{Email: "x@example.com", Password: "secret123", Role: "VOLUNTEER"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Email: "donor@example.com", Password: "ab1", Role: "DONOR"},
			wantErr: errWeakPassword,
		},
		{
			name:    "password without digits",
			req:     RegisterRequest{Email: "donor@example.com", Password: "onlyletters", Role: "DONOR"},
			wantErr: errWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "donor@example.com", Password: "secret123"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "not-an-email", Password: "secret123"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "donor@example.com"}).Validate())
}
