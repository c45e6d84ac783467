package upload

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, u *Upload) error
	ListByTraineeID(ctx context.Context, traineeID int64) ([]Upload, error)
	ListFilePaths(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) ListByTraineeID(ctx context.Context, traineeID int64) ([]Upload, error) {
	uploads := make([]Upload, 0)
	err := r.db.WithContext(ctx).
		Where("trainee_id = ?", traineeID).
		Order("uploaded_at DESC").Order("id DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *repository) ListFilePaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Model(&Upload{}).Pluck("filepath", &paths).Error
	return paths, err
}
