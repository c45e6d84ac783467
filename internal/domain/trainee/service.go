package trainee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"traineetracker/internal/pkg/utils"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the trainee and its progress entries ordered by date.
func (s *Service) Get(ctx context.Context, id int64) (*Profile, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTraineeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get trainee %d: %w", id, err)
	}

	progress, err := s.repo.ListProgress(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list progress for trainee %d: %w", id, err)
	}

	return &Profile{Trainee: t, Progress: progress}, nil
}

// Create inserts a trainee; goal and membership default to "" and the
// numeric fields to NULL.
func (s *Service) Create(ctx context.Context, req *CreateTraineeRequest) (int64, error) {
	t := &Trainee{
		Name:       utils.StringPtr(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Age:        req.Age,
		Weight:     req.Weight,
		Height:     req.Height,
		Goal:       utils.StringPtr(utils.StringOr(req.Goal, "")),
		Membership: utils.StringPtr(utils.StringOr(req.Membership, "")),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return 0, err
		}
		return 0, fmt.Errorf("create trainee: %w", err)
	}
	return t.ID, nil
}

// Update overwrites all mutable fields. An unknown id is not an error: the
// store matches zero rows and the caller still sees success.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateTraineeRequest) error {
	affected, err := s.repo.Update(ctx, id, &Trainee{
		Name:       req.Name,
		Age:        req.Age,
		Weight:     req.Weight,
		Height:     req.Height,
		Goal:       req.Goal,
		Membership: req.Membership,
	})
	if err != nil {
		return fmt.Errorf("update trainee %d: %w", id, err)
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Warn().Int64("trainee_id", id).Msg("update matched no trainee")
	}
	return nil
}

// AddProgress records a progress entry. The trainee id is not checked for
// existence.
func (s *Service) AddProgress(ctx context.Context, traineeID int64, req *AddProgressRequest) (int64, error) {
	p := &ProgressEntry{
		TraineeID: traineeID,
		Date:      req.Date,
		Weight:    req.Weight,
		Chest:     req.Chest,
		Back:      req.Back,
		Legs:      req.Legs,
		Notes:     utils.StringOr(req.Notes, ""),
	}

	if err := s.repo.CreateProgress(ctx, p); err != nil {
		return 0, fmt.Errorf("add progress for trainee %d: %w", traineeID, err)
	}
	return p.ID, nil
}
