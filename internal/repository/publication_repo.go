package repository

import (
	"context"

	"anoa.com/redsocial/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublicationRepository interface {
	Create(ctx context.Context, publication *model.Publication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Publication, error)
	// FindByAuthors returns publications by any of the given authors,
	// newest first, with the author preloaded.
	FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]*model.Publication, int64, error)
	// DeleteByIDAndAuthor removes the publication only when it belongs to
	// the author and reports how many rows matched.
	DeleteByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (int64, error)
	UpdateFile(ctx context.Context, id uuid.UUID, file string) error
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}

type publicationRepository struct {
	db *gorm.DB
}

func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *model.Publication) error {
	return r.db.WithContext(ctx).Create(publication).Error
}

func (r *publicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Publication, error) {
	var publication model.Publication
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&publication).Error; err != nil {
		return nil, err
	}

	return &publication, nil
}

func (r *publicationRepository) FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]*model.Publication, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Publication{}).
		Where("user_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var publications []*model.Publication
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&publications).Error; err != nil {
		return nil, 0, err
	}

	return publications, total, nil
}

func (r *publicationRepository) DeleteByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, authorID).
		Delete(&model.Publication{})

	return res.RowsAffected, res.Error
}

func (r *publicationRepository) UpdateFile(ctx context.Context, id uuid.UUID, file string) error {
	return r.db.WithContext(ctx).Model(&model.Publication{}).
		Where("id = ?", id).
		Update("file", file).Error
}

func (r *publicationRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Publication{}).
		Where("user_id = ?", authorID).
		Count(&count).Error

	return count, err
}
