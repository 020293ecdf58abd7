package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return httperr.ErrConflict(domain.CodeEmailTaken)
	}
	return err
}

// UserExists reports whether a user row with id is present.
func (r *UserGormRepository) UserExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserName returns the display name of a user.
func (r *UserGormRepository) UserName(
	ctx context.Context,
	id uint,
) (string, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Select("name").
		First(&u, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return u.Name, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
