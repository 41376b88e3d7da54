package message

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const DefaultSender = "Anonymous"

type Repository interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	ListMessages(ctx context.Context) ([]models.Message, error)
}
