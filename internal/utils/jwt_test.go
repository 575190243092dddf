package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexglitch/crm/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "crm-server"
)

func testUser() models.User {
	return models.User{
		ID:    42,
		Email: "admin@crm.local",
		Role:  models.RoleAdmin,
	}
}

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "admin@crm.local", token.Email)
	assert.Equal(t, models.RoleAdmin, token.Role)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser(), tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "admin@crm.local", parsed.Email)
	assert.Equal(t, models.RoleAdmin, parsed.Role)

	principal := parsed.Principal()
	assert.True(t, principal.IsAdmin())
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("other-service", testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUser(), -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "too many parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
