package auth

import (
	"context"
)

// AuthService defines authentication business logic.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates a user account. Admin only.
	Register(ctx context.Context, req RegisterRequest) (MeResponse, error)

	Me(ctx context.Context, userID string) (MeResponse, error)
}
