package messageRepo

import (
	"context"

	"github.com/campusmatch/backend/internal/entity"
	"gorm.io/gorm"
)

type IMessageRepo interface {
	CreateMessage(ctx context.Context, msg *entity.Message) (*entity.Message, error)
	ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error)
}

type MessageRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMessageRepo {
	return &MessageRepo{
		db: db,
	}
}

func (r *MessageRepo) CreateMessage(ctx context.Context, msg *entity.Message) (*entity.Message, error) {
	result := r.db.WithContext(ctx).Create(msg)
	return msg, result.Error
}

// ListByMatch returns the match's messages in ascending timestamp order.
// Equal timestamps fall back to the store's scan order.
func (r *MessageRepo) ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error) {
	var messages []entity.Message
	result := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("timestamp ASC").
		Find(&messages)
	return messages, result.Error
}
