package dto

import (
	"time"

	"github.com/rneelams/TaskManager---backend/internal/auth/domain"
)

// UserOutput is the client-visible user document. The password hash and the
// session list never leave the server.
type UserOutput struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
