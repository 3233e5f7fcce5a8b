package dto

import "anoa.com/redsocial/internal/model"

type CreateMessageRequest struct {
	Text     string `json:"text" binding:"required"`
	Receiver string `json:"receiver" binding:"required,uuid"`
}

type PaginatedMessages struct {
	Total    int64            `json:"total"`
	Pages    int              `json:"pages"`
	Messages []*model.Message `json:"messages"`
}
