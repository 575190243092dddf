package models

// RegisterRequest is the body of the bootstrap-admin and create-admin
// endpoints. SecretCode must match the configured admin secret.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	SecretCode string `json:"secretCode"`
}

// CredentialsRequest is the body of the open user registration and login
// endpoints.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of the self-service password change
// endpoint. CurrentPassword must match the stored hash before the new one is
// accepted.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangeEmailRequest is the body of the self-service email change endpoint.
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

// LoginResponse carries the signed session token and the public-safe
// projection of the authenticated account.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// AdminExistsResponse answers the public bootstrap probe: whether any
// administrator account has already been created.
type AdminExistsResponse struct {
	AdminExists bool `json:"adminExists"`
}
