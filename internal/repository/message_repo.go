package repository

import (
	"context"

	"anoa.com/redsocial/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByReceiver(ctx context.Context, receiverID uuid.UUID, offset, limit int) ([]*model.Message, int64, error)
	FindByEmitter(ctx context.Context, emitterID uuid.UUID, offset, limit int) ([]*model.Message, int64, error)
	CountUnviewed(ctx context.Context, receiverID uuid.UUID) (int64, error)
	// MarkViewed flags every unviewed message for the receiver as viewed
	// and reports how many rows changed.
	MarkViewed(ctx context.Context, receiverID uuid.UUID) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID, offset, limit int) ([]*model.Message, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver_id = ?", receiverID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*model.Message
	if err := r.db.WithContext(ctx).
		Preload("Emitter").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *messageRepository) FindByEmitter(ctx context.Context, emitterID uuid.UUID, offset, limit int) ([]*model.Message, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("emitter_id = ?", emitterID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*model.Message
	if err := r.db.WithContext(ctx).
		Preload("Emitter").
		Preload("Receiver").
		Where("emitter_id = ?", emitterID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *messageRepository) CountUnviewed(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver_id = ? AND viewed = ?", receiverID, false).
		Count(&count).Error

	return count, err
}

func (r *messageRepository) MarkViewed(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver_id = ? AND viewed = ?", receiverID, false).
		Update("viewed", true)

	return res.RowsAffected, res.Error
}
