package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{name: "valid", request: LoginRequest{Email: "admin@example.com", Password: "x"}},
		{name: "unknown email shape still allowed", request: LoginRequest{Email: "admin", Password: "x"}},
		{name: "missing email", request: LoginRequest{Password: "x"}, wantErr: true},
		{name: "blank email", request: LoginRequest{Email: "   ", Password: "x"}, wantErr: true},
		{name: "missing password", request: LoginRequest{Email: "admin@example.com"}, wantErr: true},
		{
			name:    "password too long",
			request: LoginRequest{Email: "admin@example.com", Password: strings.Repeat("a", 129)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request SetupRequest
		wantErr bool
	}{
		{name: "valid", request: SetupRequest{Email: "admin@example.com", Password: "Sup3r-Secret!pw"}},
		{name: "invalid email", request: SetupRequest{Email: "admin", Password: "Sup3r-Secret!pw"}, wantErr: true},
		{name: "email with whitespace", request: SetupRequest{Email: " admin@example.com", Password: "Sup3r-Secret!pw"}, wantErr: true},
		{name: "short password", request: SetupRequest{Email: "admin@example.com", Password: "Ab1!"}, wantErr: true},
		{name: "no special character", request: SetupRequest{Email: "admin@example.com", Password: "Sup3rSecretpw"}, wantErr: true},
		{name: "legacy default password", request: SetupRequest{Email: "admin@example.com", Password: "admin123"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
