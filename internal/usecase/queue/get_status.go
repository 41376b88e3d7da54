package queue

import (
	"context"
	"strconv"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetQueueStatus struct {
	repo              domain.Repository
	cache             domain.Cache
	minutesPerPatient int
}

func NewGetQueueStatus(
	repo domain.Repository,
	cache domain.Cache,
	minutesPerPatient int,
) *GetQueueStatus {
	return &GetQueueStatus{
		repo:              repo,
		cache:             cache,
		minutesPerPatient: minutesPerPatient,
	}
}

func (uc *GetQueueStatus) Execute(ctx context.Context) (domain.Status, error) {
	if s, ok := uc.cache.Get(ctx); ok {
		return *s, nil
	}

	doctors, err := uc.repo.ListDoctors(ctx)
	if err != nil {
		return domain.Status{}, err
	}

	minutes, err := uc.waitMinutes(ctx)
	if err != nil {
		return domain.Status{}, err
	}

	s := domain.Aggregate(doctors, minutes)
	uc.cache.Set(ctx, s)
	return s, nil
}

// waitMinutes prefers the configured value, then the wait_time setting.
func (uc *GetQueueStatus) waitMinutes(ctx context.Context) (int, error) {
	if uc.minutesPerPatient > 0 {
		return uc.minutesPerPatient, nil
	}

	raw, err := uc.repo.GetSetting(ctx, models.SettingWaitTime)
	if err != nil {
		return 0, err
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n, nil
	}
	return domain.DefaultWaitMinutesPerPatient, nil
}
