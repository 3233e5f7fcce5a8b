package service

import (
	"context"

	"anoa.com/redsocial/internal/repository"
	"github.com/google/uuid"
)

// Relations holds the two sides of a user's follow graph: the accounts the
// user follows and the accounts following the user.
type Relations struct {
	Following  []uuid.UUID `json:"following"`
	FollowedBy []uuid.UUID `json:"followed"`
}

type RelationService interface {
	// ResolveRelations reads both edge sets. If either query fails the
	// whole call fails; callers treat it as one atomic read.
	ResolveRelations(ctx context.Context, userID uuid.UUID) (*Relations, error)
	// VisibilityScope is the set of authors whose publications appear in
	// the user's feed: everyone they follow plus themselves.
	VisibilityScope(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type relationService struct {
	follows repository.FollowRepository
}

func NewRelationService(follows repository.FollowRepository) RelationService {
	return &relationService{follows: follows}
}

func (s *relationService) ResolveRelations(ctx context.Context, userID uuid.UUID) (*Relations, error) {
	following, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	followedBy, err := s.follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Relations{
		Following:  following,
		FollowedBy: followedBy,
	}, nil
}

func (s *relationService) VisibilityScope(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	following, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	scope := make([]uuid.UUID, 0, len(following)+1)
	for _, id := range following {
		if id == userID {
			continue
		}
		scope = append(scope, id)
	}

	// Self is always visible, followed or not.
	return append(scope, userID), nil
}
