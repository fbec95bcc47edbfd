package response

import "github.com/mealbridge/mealbridge-api/internal/domain"

// RegisterResponse is the public view of a user; the password hash is never
// part of any response.
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  RegisterResponse `json:"user"`
}

func NewRegisterResponse(user domain.User) RegisterResponse {
	return RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
