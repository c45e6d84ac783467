package trainee

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Trainee, error)
	Create(ctx context.Context, t *Trainee) error
	// Update overwrites the mutable columns and reports how many rows matched.
	Update(ctx context.Context, id int64, t *Trainee) (int64, error)
	ListProgress(ctx context.Context, traineeID int64) ([]ProgressEntry, error)
	CreateProgress(ctx context.Context, p *ProgressEntry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Trainee, error) {
	var t Trainee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTraineeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Trainee) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if err != nil && isUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

func (r *repository) Update(ctx context.Context, id int64, t *Trainee) (int64, error) {
	// A map (not a struct) so nil fields are written as NULL instead of skipped.
	res := r.db.WithContext(ctx).Model(&Trainee{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       t.Name,
		"age":        t.Age,
		"weight":     t.Weight,
		"height":     t.Height,
		"goal":       t.Goal,
		"membership": t.Membership,
	})
	return res.RowsAffected, res.Error
}

func (r *repository) ListProgress(ctx context.Context, traineeID int64) ([]ProgressEntry, error) {
	entries := make([]ProgressEntry, 0)
	err := r.db.WithContext(ctx).
		Where("trainee_id = ?", traineeID).
		Order("date ASC").Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) CreateProgress(ctx context.Context, p *ProgressEntry) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
