package dto

import (
	"anoa.com/redsocial/internal/model"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// GetToken requests a token-only response, without the user profile.
	GetToken bool `json:"gettoken"`
}

type UserWithRelations struct {
	User *model.User `json:"user"`
	// Following: the caller follows this user. Followed: this user follows
	// the caller back.
	Following bool `json:"following"`
	Followed  bool `json:"followed"`
}

type PaginatedUsers struct {
	Total int64         `json:"total"`
	Pages int           `json:"pages"`
	Page  int           `json:"page"`
	Users []*model.User `json:"users"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Nickname string    `json:"nickname"`
	Image    *string   `json:"image,omitempty"`
}

type UserSearchResult struct {
	Total int64         `json:"total"`
	Pages int           `json:"pages"`
	Page  int           `json:"page"`
	Users []UserSummary `json:"users"`
}

type CountersResponse struct {
	Following    int64 `json:"following"`
	Followed     int64 `json:"followed"`
	Publications int64 `json:"publications"`
}
