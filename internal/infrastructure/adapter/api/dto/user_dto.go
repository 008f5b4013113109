package dto

import (
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// UserResponse is the caller's profile
type UserResponse struct {
	ID         uint64    `json:"id"`
	SocialType string    `json:"socialType"`
	Nickname   string    `json:"nickname"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserResponse maps a user
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		SocialType: string(u.SocialType),
		Nickname:   u.Nickname,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
	}
}

// CategoryResponse is one category in the requested language
type CategoryResponse struct {
	ID          uint64 `json:"id"`
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
}
