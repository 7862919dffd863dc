package response

import (
	"time"

	"helper-booking/internal/data/entity"
)

// AuthResponse is the top-level body of register/login. Token and user
// sit beside the success flag, matching what clients consume directly.
type AuthResponse struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse is the body of GET/PUT profile
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Role      entity.UserRole `json:"role"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token, msg string) *AuthResponse {
	return &AuthResponse{
		Success: true,
		Msg:     msg,
		Token:   token,
		User:    UserToResponse(user),
	}
}
