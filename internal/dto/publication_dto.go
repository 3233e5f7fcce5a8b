package dto

import "anoa.com/redsocial/internal/model"

type CreatePublicationRequest struct {
	Text string `json:"text" binding:"required"`
}

type PaginatedPublications struct {
	TotalItems   int64                `json:"total_items"`
	Publications []*model.Publication `json:"publications"`
	Page         int                  `json:"page"`
	ItemsPerPage int                  `json:"items_per_page"`
	Pages        int                  `json:"pages"`
}
