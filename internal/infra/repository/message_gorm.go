package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/message"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) CreateMessage(
	ctx context.Context,
	m *models.Message,
) error {
	return httperr.Store("create message", r.db.WithContext(ctx).Create(m).Error)
}

func (r *MessageGormRepository) ListMessages(
	ctx context.Context,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&msgs).Error; err != nil {
		return nil, httperr.Store("list messages", err)
	}
	return msgs, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
