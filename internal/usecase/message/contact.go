package message

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/message"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ContactInput struct {
	Name    string
	Subject string
	Message string
}

type CreateMessage struct {
	repo domain.Repository
}

func NewCreateMessage(repo domain.Repository) *CreateMessage {
	return &CreateMessage{repo: repo}
}

func (uc *CreateMessage) Execute(
	ctx context.Context,
	in ContactInput,
) (*models.Message, error) {

	subject := strings.TrimSpace(in.Subject)
	body := strings.TrimSpace(in.Message)
	if subject == "" || body == "" {
		return nil, httperr.ErrValidation("missing_fields", "subject and message are required")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = domain.DefaultSender
	}

	m := &models.Message{
		Name:    name,
		Subject: subject,
		Message: body,
	}
	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(ctx context.Context) ([]models.Message, error) {
	return uc.repo.ListMessages(ctx)
}
