package message_test

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	uc "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/message"
)

func TestContact_DefaultsAndOrder(t *testing.T) {
	repo := repository.NewMessageGormRepository(dbtest.New(t))
	create := uc.NewCreateMessage(repo)
	ctx := context.Background()

	first, err := create.Execute(ctx, uc.ContactInput{Subject: "Parking", Message: "Where do I park?"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Name != "Anonymous" {
		t.Errorf("expected Anonymous, got %q", first.Name)
	}

	if _, err := create.Execute(ctx, uc.ContactInput{Name: "Ravi", Subject: "Hours", Message: "Open on Sunday?"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	msgs, err := uc.NewListMessages(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Name != "Ravi" {
		t.Errorf("expected newest first, got %q", msgs[0].Name)
	}
}

func TestContact_RequiresSubjectAndMessage(t *testing.T) {
	create := uc.NewCreateMessage(repository.NewMessageGormRepository(dbtest.New(t)))

	_, err := create.Execute(context.Background(), uc.ContactInput{Subject: "Only subject"})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
