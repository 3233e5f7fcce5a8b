package repository

import (
	"context"

	"anoa.com/redsocial/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	// DeleteEdge removes the follower->followed edge and reports how many
	// rows matched.
	DeleteEdge(ctx context.Context, followerID, followedID uuid.UUID) (int64, error)
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	FindByFollower(ctx context.Context, followerID uuid.UUID, offset, limit int) ([]*model.Follow, int64, error)
	FindByFollowed(ctx context.Context, followedID uuid.UUID, offset, limit int) ([]*model.Follow, int64, error)
	FindAllByFollower(ctx context.Context, followerID uuid.UUID) ([]*model.Follow, error)
	FindAllByFollowed(ctx context.Context, followedID uuid.UUID) ([]*model.Follow, error)
	FollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	FollowerIDs(ctx context.Context, followedID uuid.UUID) ([]uuid.UUID, error)
	CountByFollower(ctx context.Context, followerID uuid.UUID) (int64, error)
	CountByFollowed(ctx context.Context, followedID uuid.UUID) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) DeleteEdge(ctx context.Context, followerID, followedID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{})

	return res.RowsAffected, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *followRepository) FindByFollower(ctx context.Context, followerID uuid.UUID, offset, limit int) ([]*model.Follow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ?", followerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []*model.Follow
	if err := r.db.WithContext(ctx).
		Preload("Followed").
		Where("user_id = ?", followerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}

func (r *followRepository) FindByFollowed(ctx context.Context, followedID uuid.UUID, offset, limit int) ([]*model.Follow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", followedID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []*model.Follow
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("followed_id = ?", followedID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}

func (r *followRepository) FindAllByFollower(ctx context.Context, followerID uuid.UUID) ([]*model.Follow, error) {
	var follows []*model.Follow
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Followed").
		Where("user_id = ?", followerID).
		Find(&follows).Error; err != nil {
		return nil, err
	}

	return follows, nil
}

func (r *followRepository) FindAllByFollowed(ctx context.Context, followedID uuid.UUID) ([]*model.Follow, error) {
	var follows []*model.Follow
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Followed").
		Where("followed_id = ?", followedID).
		Find(&follows).Error; err != nil {
		return nil, err
	}

	return follows, nil
}

func (r *followRepository) FollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *followRepository) FollowerIDs(ctx context.Context, followedID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", followedID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *followRepository) CountByFollower(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ?", followerID).
		Count(&count).Error

	return count, err
}

func (r *followRepository) CountByFollowed(ctx context.Context, followedID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", followedID).
		Count(&count).Error

	return count, err
}
