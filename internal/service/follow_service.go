package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowService interface {
	Create(ctx context.Context, followerID, followedID uuid.UUID) (*model.Follow, error)
	// Delete is idempotent from the caller's view: removing a missing edge
	// is still an ack.
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
	ListFollowing(ctx context.Context, callerID, subjectID uuid.UUID, page int) (*dto.PaginatedFollows, error)
	ListFollowers(ctx context.Context, callerID, subjectID uuid.UUID, page int) (*dto.PaginatedFollows, error)
	// MyFollows lists the caller's edges without pagination; followedSide
	// flips to the edges where the caller is the one being followed.
	MyFollows(ctx context.Context, callerID uuid.UUID, followedSide bool) ([]*model.Follow, error)
}

type followService struct {
	follows   repository.FollowRepository
	users     repository.UserRepository
	relations RelationService
	// decoration picks whose relation sets decorate listings: "caller"
	// reproduces the source behavior, "subject" the arguably intended one.
	decoration string
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, relations RelationService, decoration string) FollowService {
	if decoration != "subject" {
		decoration = "caller"
	}

	return &followService{
		follows:    follows,
		users:      users,
		relations:  relations,
		decoration: decoration,
	}
}

func (s *followService) Create(ctx context.Context, followerID, followedID uuid.UUID) (*model.Follow, error) {
	if followerID == followedID {
		return nil, fmt.Errorf("cannot follow yourself: %w", apperror.ErrBadRequest)
	}

	if _, err := s.users.FindByID(ctx, followedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user to follow does not exist: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	follow := &model.Follow{
		UserID:     followerID,
		FollowedID: followedID,
	}

	if err := s.follows.Create(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("already following this user: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	return follow, nil
}

func (s *followService) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	_, err := s.follows.DeleteEdge(ctx, followerID, followedID)
	return err
}

func (s *followService) ListFollowing(ctx context.Context, callerID, subjectID uuid.UUID, page int) (*dto.PaginatedFollows, error) {
	if page < 1 {
		page = 1
	}

	follows, total, err := s.follows.FindByFollower(ctx, subjectID, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, callerID, subjectID, follows, total)
}

func (s *followService) ListFollowers(ctx context.Context, callerID, subjectID uuid.UUID, page int) (*dto.PaginatedFollows, error) {
	if page < 1 {
		page = 1
	}

	follows, total, err := s.follows.FindByFollowed(ctx, subjectID, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, callerID, subjectID, follows, total)
}

func (s *followService) decorate(ctx context.Context, callerID, subjectID uuid.UUID, follows []*model.Follow, total int64) (*dto.PaginatedFollows, error) {
	decorationUser := callerID
	if s.decoration == "subject" {
		decorationUser = subjectID
	}

	relations, err := s.relations.ResolveRelations(ctx, decorationUser)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedFollows{
		Total:          total,
		Pages:          dto.TotalPages(total, dto.ItemsPerPage),
		Follows:        follows,
		UsersFollowing: relations.Following,
		UsersFollowMe:  relations.FollowedBy,
	}, nil
}

func (s *followService) MyFollows(ctx context.Context, callerID uuid.UUID, followedSide bool) ([]*model.Follow, error) {
	if followedSide {
		return s.follows.FindAllByFollowed(ctx, callerID)
	}
	return s.follows.FindAllByFollower(ctx, callerID)
}
