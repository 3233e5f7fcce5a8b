package dto

import (
	"anoa.com/redsocial/internal/model"
	"github.com/google/uuid"
)

type CreateFollowRequest struct {
	Followed string `json:"followed" binding:"required,uuid"`
}

// PaginatedFollows carries one page of edges plus the relation sets used to
// decorate the listing (see config.RelationDecoration for whose sets).
type PaginatedFollows struct {
	Total          int64           `json:"total"`
	Pages          int             `json:"pages"`
	Follows        []*model.Follow `json:"follows"`
	UsersFollowing []uuid.UUID     `json:"users_following"`
	UsersFollowMe  []uuid.UUID     `json:"users_follow_me"`
}
