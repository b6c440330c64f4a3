package user

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed   = apperror.Conflict("email already used")
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")
	ErrInactiveUser       = apperror.Forbidden("user is inactive")
	ErrEmailRequired      = apperror.BadRequest("email is required")
	ErrNameRequired       = apperror.BadRequest("name is required")
	ErrPasswordTooShort   = apperror.BadRequest("password must be at least 8 characters")
)

// User is an account that can sign in. Role is auth.RoleAdmin or auth.RoleUser.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
