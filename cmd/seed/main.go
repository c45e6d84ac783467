package main

import (
	"context"
	"math/rand"
	"time"

	"traineetracker/internal/config"
	"traineetracker/internal/database"
	"traineetracker/internal/domain/trainee"
	"traineetracker/internal/pkg/logger"

	"github.com/rs/zerolog/log"
)

type seedTrainee struct {
	name       string
	email      string
	age        int
	weight     float64
	height     float64
	goal       string
	membership string
}

var trainees = []seedTrainee{
	{"Omar Haddad", "omar@example.com", 29, 92.4, 181, "fat loss", "gold"},
	{"Lina Saleh", "lina@example.com", 34, 61.0, 165, "strength", "silver"},
	{"Karim Nasser", "karim@example.com", 22, 70.2, 176, "muscle gain", "basic"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	l := logger.Setup(cfg.AppEnv)
	ctx := l.WithContext(context.Background())

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	if err := database.Migrate(ctx, db); err != nil {
		l.Fatal().Err(err).Msg("migrations failed")
	}

	// Cleanup old data. Uploads are left alone: their files live outside the DB.
	l.Info().Msg("cleaning old data")
	for _, table := range []string{"progress", "trainees"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			l.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	svc := trainee.NewService(trainee.NewRepository(db))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now().AddDate(0, -3, 0)

	for _, s := range trainees {
		s := s
		id, err := svc.Create(ctx, &trainee.CreateTraineeRequest{
			Name:       s.name,
			Email:      s.email,
			Age:        &s.age,
			Weight:     &s.weight,
			Height:     &s.height,
			Goal:       &s.goal,
			Membership: &s.membership,
		})
		if err != nil {
			l.Fatal().Err(err).Str("email", s.email).Msg("create trainee failed")
		}

		// one measurement per week, drifting towards the goal
		weight := s.weight
		for week := 0; week < 12; week++ {
			weight += rng.Float64()*1.2 - 0.8
			w := round1(weight)
			chest := round1(95 + rng.Float64()*10)
			back := round1(40 + rng.Float64()*5)
			legs := round1(55 + rng.Float64()*6)
			if _, err := svc.AddProgress(ctx, id, &trainee.AddProgressRequest{
				Date:   start.AddDate(0, 0, 7*week).Format("2006-01-02"),
				Weight: &w,
				Chest:  &chest,
				Back:   &back,
				Legs:   &legs,
			}); err != nil {
				l.Fatal().Err(err).Int64("trainee_id", id).Msg("add progress failed")
			}
		}
		l.Info().Int64("id", id).Str("email", s.email).Msg("trainee seeded")
	}

	l.Info().Int("trainees", len(trainees)).Msg("seed completed")
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
