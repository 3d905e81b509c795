package response

import "github.com/google/uuid"

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}
