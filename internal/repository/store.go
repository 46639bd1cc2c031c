package repository

import (
	"time"

	"github.com/luizavanter/guialmeidapersonal/internal/config"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// Store bundles every collection the dev server serves.
type Store struct {
	Users         *UserRepository
	RefreshTokens *RefreshTokenRepository

	Students        *Collection
	Appointments    *Collection
	ChangeRequests  *Collection
	Exercises       *Collection
	WorkoutPlans    *Collection
	WorkoutLogs     *Collection
	BodyAssessments *Collection
	EvolutionPhotos *Collection
	Goals           *Collection
	Plans           *Collection
	Subscriptions   *Collection
	Payments        *Collection
	Messages        *Collection
	Notifications   *Collection
}

func NewStore() *Store {
	return &Store{
		Users:           NewUserRepository(),
		RefreshTokens:   NewRefreshTokenRepository(refreshTokenTTL),
		Students:        NewCollection(),
		Appointments:    NewCollection(),
		ChangeRequests:  NewCollection(),
		Exercises:       NewCollection(),
		WorkoutPlans:    NewCollection(),
		WorkoutLogs:     NewCollection(),
		BodyAssessments: NewCollection(),
		EvolutionPhotos: NewCollection(),
		Goals:           NewCollection(),
		Plans:           NewCollection(),
		Subscriptions:   NewCollection(),
		Payments:        NewCollection(),
		Messages:        NewCollection(),
		Notifications:   NewCollection(),
	}
}

// Seed creates the default accounts configured via environment, so a fresh
// dev server is immediately usable from the clients. Missing credentials
// skip the matching account.
func (s *Store) Seed(cfg *config.Config) error {
	if cfg.DefaultTrainerEmail != "" && cfg.DefaultTrainerPassword != "" {
		if _, err := s.Users.Create(cfg.DefaultTrainerEmail, cfg.DefaultTrainerPassword, "trainer", "Guilherme Almeida"); err != nil {
			return err
		}
	}
	if cfg.DefaultStudentEmail != "" && cfg.DefaultStudentPassword != "" {
		student, err := s.Users.Create(cfg.DefaultStudentEmail, cfg.DefaultStudentPassword, "student", "Aluno Demonstração")
		if err != nil {
			return err
		}
		s.Students.Insert(Doc{
			"user_id": student.ID,
			"status":  "active",
		})
	}
	return nil
}
