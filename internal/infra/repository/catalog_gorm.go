package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/voicedoc/clinic-api/internal/domain/catalog"
	"github.com/voicedoc/clinic-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *CatalogGormRepository) ListDoctorsBySubject(
	ctx context.Context,
	subjectID uint,
	limit int,
	offset int,
) ([]models.Doctor, int64, error) {

	base := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("subject_id = ?", subjectID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []models.Doctor
	if err := base.
		Preload("User").
		Preload("Hospital").
		Preload("Subject").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&doctors).Error; err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

var _ domain.Repository = (*CatalogGormRepository)(nil)
