package auth

import (
	"context"
)

// AuthService exchanges credentials for an authenticated principal. The
// core only ever sees the resulting principal and role; token mechanics
// live in the jwt package.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
