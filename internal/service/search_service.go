package service

import (
	"context"
	"encoding/json"
	"log"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
)

const usersIndex = "users"

// UserSearchService keeps the user directory searchable. With no
// Meilisearch client configured it falls back to a SQL pattern search.
type UserSearchService interface {
	IndexUser(ctx context.Context, user *model.User) error
	Search(ctx context.Context, query string, page int) (*dto.UserSearchResult, error)
}

type userSearchService struct {
	client meilisearch.ServiceManager
	users  repository.UserRepository
}

func NewUserSearchService(client meilisearch.ServiceManager, users repository.UserRepository) UserSearchService {
	s := &userSearchService{
		client: client,
		users:  users,
	}

	if client != nil {
		s.initIndex()
	}

	return s
}

func (s *userSearchService) initIndex() {
	searchable := []string{"nickname", "name", "surname"}
	if _, err := s.client.Index(usersIndex).UpdateSearchableAttributes(&searchable); err != nil {
		log.Printf("failed to update users searchable attributes: %v", err)
	}
}

type meiliUserDoc struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Nickname string  `json:"nickname"`
	Image    *string `json:"image,omitempty"`
}

func (s *userSearchService) IndexUser(ctx context.Context, user *model.User) error {
	if s.client == nil {
		return nil
	}

	doc := meiliUserDoc{
		ID:       user.ID.String(),
		Name:     user.Name,
		Surname:  user.Surname,
		Nickname: user.Nickname,
		Image:    user.Image,
	}

	_, err := s.client.Index(usersIndex).AddDocuments([]meiliUserDoc{doc}, strPtr("id"))
	return err
}

func (s *userSearchService) Search(ctx context.Context, query string, page int) (*dto.UserSearchResult, error) {
	if page < 1 {
		page = 1
	}

	if s.client == nil {
		return s.searchSQL(ctx, query, page)
	}

	resp, err := s.client.Index(usersIndex).Search(query, &meilisearch.SearchRequest{
		Offset: int64(dto.Offset(page, dto.ItemsPerPage)),
		Limit:  int64(dto.ItemsPerPage),
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}

	var docs []meiliUserDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	users := make([]dto.UserSummary, 0, len(docs))
	for _, doc := range docs {
		users = append(users, summaryFromDoc(doc))
	}

	total := resp.EstimatedTotalHits
	return &dto.UserSearchResult{
		Total: total,
		Pages: dto.TotalPages(total, dto.ItemsPerPage),
		Page:  page,
		Users: users,
	}, nil
}

func (s *userSearchService) searchSQL(ctx context.Context, query string, page int) (*dto.UserSearchResult, error) {
	matches, total, err := s.users.SearchByName(ctx, query, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	users := make([]dto.UserSummary, 0, len(matches))
	for _, user := range matches {
		users = append(users, dto.UserSummary{
			ID:       user.ID,
			Name:     user.Name,
			Surname:  user.Surname,
			Nickname: user.Nickname,
			Image:    user.Image,
		})
	}

	return &dto.UserSearchResult{
		Total: total,
		Pages: dto.TotalPages(total, dto.ItemsPerPage),
		Page:  page,
		Users: users,
	}, nil
}

func summaryFromDoc(doc meiliUserDoc) dto.UserSummary {
	summary := dto.UserSummary{
		Name:     doc.Name,
		Surname:  doc.Surname,
		Nickname: doc.Nickname,
		Image:    doc.Image,
	}
	if id, err := uuid.Parse(doc.ID); err == nil {
		summary.ID = id
	}
	return summary
}

func strPtr(s string) *string {
	return &s
}
