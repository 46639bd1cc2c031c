package stores

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type AssessmentInput struct {
	StudentID      string   `json:"student_id,omitempty"`
	AssessmentDate string   `json:"assessment_date,omitempty"`
	WeightKg       *float64 `json:"weight_kg,omitempty"`
	HeightCm       *float64 `json:"height_cm,omitempty"`
	BodyFat        *float64 `json:"body_fat_percentage,omitempty"`
	MuscleMassKg   *float64 `json:"muscle_mass_kg,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

type GoalInput struct {
	StudentID    string   `json:"student_id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	Deadline     string   `json:"deadline,omitempty"`
	Status       string   `json:"status,omitempty"`
}

type EvolutionStore struct {
	mu          sync.RWMutex
	api         Doer
	assessments []models.BodyAssessment
	photos      []models.EvolutionPhoto
	goals       []models.Goal
	loading     bool
	err         error
}

func NewEvolutionStore(api Doer) *EvolutionStore {
	return &EvolutionStore{api: api}
}

func (s *EvolutionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *EvolutionStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *EvolutionStore) Assessments() []models.BodyAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BodyAssessment(nil), s.assessments...)
}

func (s *EvolutionStore) Photos() []models.EvolutionPhoto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.EvolutionPhoto(nil), s.photos...)
}

func (s *EvolutionStore) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Goal(nil), s.goals...)
}

func (s *EvolutionStore) FetchAssessments(ctx context.Context, filters url.Values) ([]models.BodyAssessment, error) {
	s.begin()

	var assessments []models.BodyAssessment
	if err := s.api.Get(ctx, "/body-assessments", filters, &assessments); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.assessments = assessments
	s.loading = false
	s.mu.Unlock()
	return append([]models.BodyAssessment(nil), assessments...), nil
}

func (s *EvolutionStore) CreateAssessment(ctx context.Context, input AssessmentInput) (*models.BodyAssessment, error) {
	s.begin()

	var created models.BodyAssessment
	if err := s.api.Post(ctx, "/body-assessments", map[string]any{"body_assessment": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.assessments = append(s.assessments, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *EvolutionStore) FetchPhotos(ctx context.Context, filters url.Values) ([]models.EvolutionPhoto, error) {
	s.begin()

	var photos []models.EvolutionPhoto
	if err := s.api.Get(ctx, "/evolution-photos", filters, &photos); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.photos = photos
	s.loading = false
	s.mu.Unlock()
	return append([]models.EvolutionPhoto(nil), photos...), nil
}

func (s *EvolutionStore) FetchGoals(ctx context.Context, filters url.Values) ([]models.Goal, error) {
	s.begin()

	var goals []models.Goal
	if err := s.api.Get(ctx, "/goals", filters, &goals); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.goals = goals
	s.loading = false
	s.mu.Unlock()
	return append([]models.Goal(nil), goals...), nil
}

func (s *EvolutionStore) CreateGoal(ctx context.Context, input GoalInput) (*models.Goal, error) {
	s.begin()

	var created models.Goal
	if err := s.api.Post(ctx, "/goals", map[string]any{"goal": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.goals = append(s.goals, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *EvolutionStore) UpdateGoal(ctx context.Context, id string, input GoalInput) (*models.Goal, error) {
	s.begin()

	var updated models.Goal
	if err := s.api.Put(ctx, "/goals/"+id, input, &updated); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i] = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	result := updated
	return &result, nil
}

// LatestAssessment returns the most recent assessment by date, or nil
// when none have been fetched.
func (s *EvolutionStore) LatestAssessment() *models.BodyAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.BodyAssessment
	for i := range s.assessments {
		a := &s.assessments[i]
		if latest == nil || a.AssessedAt.After(latest.AssessedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil
	}
	result := *latest
	return &result
}

// WeightHistory returns the assessments carrying a weight, sorted ascending
// by date for charting. BodyFatHistory and MuscleMassHistory are the same
// series over their measurements.
func (s *EvolutionStore) WeightHistory() []models.BodyAssessment {
	return s.history(func(a models.BodyAssessment) bool { return a.Weight != nil })
}

func (s *EvolutionStore) BodyFatHistory() []models.BodyAssessment {
	return s.history(func(a models.BodyAssessment) bool { return a.BodyFat != nil })
}

func (s *EvolutionStore) MuscleMassHistory() []models.BodyAssessment {
	return s.history(func(a models.BodyAssessment) bool { return a.MuscleMass != nil })
}

func (s *EvolutionStore) history(keep func(models.BodyAssessment) bool) []models.BodyAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var history []models.BodyAssessment
	for _, a := range s.assessments {
		if keep(a) {
			history = append(history, a)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].AssessedAt.Before(history[j].AssessedAt)
	})
	return history
}

func (s *EvolutionStore) ActiveGoals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []models.Goal
	for _, g := range s.goals {
		if g.Status == "active" {
			active = append(active, g)
		}
	}
	return active
}

func (s *EvolutionStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *EvolutionStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
