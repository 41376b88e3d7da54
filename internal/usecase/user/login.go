package user

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type LoginInput struct {
	Mobile string
	Name   *string
	Age    *int
}

// Login looks the mobile number up and registers a patient on first use.
type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, error) {

	mobile := strings.TrimSpace(in.Mobile)
	if mobile == "" {
		return nil, httperr.ErrValidation("mobile_required", "Mobile number required")
	}

	u, err := uc.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}
	if name == "" || in.Age == nil {
		return nil, httperr.ErrValidation(
			"registration_incomplete",
			"Name and Age required for new registration",
		)
	}
	if *in.Age < 0 {
		return nil, httperr.ErrValidation("invalid_age", "age must not be negative")
	}

	age := *in.Age
	return uc.repo.GetOrCreatePatient(ctx, &models.User{
		Name:   name,
		Age:    &age,
		Mobile: mobile,
	})
}
