package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	// GetWithRelations returns the target profile decorated with the
	// caller's relation to it.
	GetWithRelations(ctx context.Context, callerID, targetID uuid.UUID) (*dto.UserWithRelations, error)
	List(ctx context.Context, page int) (*dto.PaginatedUsers, error)
	// Counters reports follow and publication counts for one user.
	Counters(ctx context.Context, userID uuid.UUID) (*dto.CountersResponse, error)
}

type userService struct {
	users        repository.UserRepository
	follows      repository.FollowRepository
	publications repository.PublicationRepository
}

func NewUserService(users repository.UserRepository, follows repository.FollowRepository, publications repository.PublicationRepository) UserService {
	return &userService{
		users:        users,
		follows:      follows,
		publications: publications,
	}
}

func (s *userService) GetWithRelations(ctx context.Context, callerID, targetID uuid.UUID) (*dto.UserWithRelations, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user does not exist: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	following, err := s.follows.Exists(ctx, callerID, targetID)
	if err != nil {
		return nil, err
	}

	followed, err := s.follows.Exists(ctx, targetID, callerID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.UserWithRelations{
		User:      user,
		Following: following,
		Followed:  followed,
	}, nil
}

func (s *userService) List(ctx context.Context, page int) (*dto.PaginatedUsers, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.users.FindPage(ctx, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.Password = ""
	}

	return &dto.PaginatedUsers{
		Total: total,
		Pages: dto.TotalPages(total, dto.ItemsPerPage),
		Page:  page,
		Users: users,
	}, nil
}

func (s *userService) Counters(ctx context.Context, userID uuid.UUID) (*dto.CountersResponse, error) {
	following, err := s.follows.CountByFollower(ctx, userID)
	if err != nil {
		return nil, err
	}

	followed, err := s.follows.CountByFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}

	publications, err := s.publications.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CountersResponse{
		Following:    following,
		Followed:     followed,
		Publications: publications,
	}, nil
}
