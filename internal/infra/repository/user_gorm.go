package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// FindByMobile returns (nil, nil) when nobody registered the number yet.
func (r *UserGormRepository) FindByMobile(
	ctx context.Context,
	mobile string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("mobile = ?", mobile).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Store("find user", err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetOrCreatePatient(
	ctx context.Context,
	u *models.User,
) (*models.User, error) {

	u.Role = models.RolePatient

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mobile"}},
			DoNothing: true,
		}).
		Create(u).Error; err != nil {
		return nil, httperr.Store("create patient", err)
	}

	var stored models.User
	if err := r.db.WithContext(ctx).
		Where("mobile = ?", u.Mobile).
		First(&stored).Error; err != nil {
		return nil, httperr.Store("read patient", err)
	}
	return &stored, nil
}

func (r *UserGormRepository) CreateDoctor(
	ctx context.Context,
	u *models.User,
) error {

	u.Role = models.RoleDoctor

	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("mobile_already_registered", "Mobile number already registered")
	}
	return httperr.Store("create doctor", err)
}

func (r *UserGormRepository) ListByRole(
	ctx context.Context,
	role string,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, httperr.Store("list users", err)
	}
	return users, nil
}

func (r *UserGormRepository) CountByRole(
	ctx context.Context,
	role string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&count).Error; err != nil {
		return 0, httperr.Store("count users", err)
	}
	return count, nil
}

func (r *UserGormRepository) DeleteByRole(
	ctx context.Context,
	id uint,
	role string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, role).
		Delete(&models.User{})

	if res.Error != nil {
		return httperr.Store("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(role+"_not_found", "User not found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
