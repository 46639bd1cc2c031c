package stores

import (
	"context"
	"net/url"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type WorkoutPlanInput struct {
	StudentID   string             `json:"student_id,omitempty"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status,omitempty"`
	Exercises   []WorkoutItemInput `json:"exercises,omitempty"`
}

type WorkoutItemInput struct {
	ExerciseID  string `json:"exercise_id"`
	Sets        int    `json:"sets,omitempty"`
	Reps        string `json:"reps,omitempty"`
	RestSeconds int    `json:"rest_seconds,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Order       int    `json:"order,omitempty"`
}

type WorkoutLogInput struct {
	WorkoutPlanID string `json:"workout_plan_id"`
	ExerciseID    string `json:"exercise_id,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type WorkoutsStore struct {
	mu        sync.RWMutex
	api       Doer
	plans     []models.WorkoutPlan
	current   *models.WorkoutPlan
	exercises []models.Exercise
	logs      []models.WorkoutLog
	loading   bool
	err       error
}

func NewWorkoutsStore(api Doer) *WorkoutsStore {
	return &WorkoutsStore{api: api}
}

func (s *WorkoutsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *WorkoutsStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *WorkoutsStore) Plans() []models.WorkoutPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WorkoutPlan(nil), s.plans...)
}

func (s *WorkoutsStore) Current() *models.WorkoutPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

func (s *WorkoutsStore) Exercises() []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Exercise(nil), s.exercises...)
}

func (s *WorkoutsStore) Logs() []models.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WorkoutLog(nil), s.logs...)
}

func (s *WorkoutsStore) FetchPlans(ctx context.Context, filters url.Values) ([]models.WorkoutPlan, error) {
	s.begin()

	var plans []models.WorkoutPlan
	if err := s.api.Get(ctx, "/workout-plans", filters, &plans); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.plans = plans
	s.loading = false
	s.mu.Unlock()
	return append([]models.WorkoutPlan(nil), plans...), nil
}

func (s *WorkoutsStore) FetchPlan(ctx context.Context, id string) (*models.WorkoutPlan, error) {
	s.begin()

	var plan models.WorkoutPlan
	if err := s.api.Get(ctx, "/workout-plans/"+id, nil, &plan); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.current = &plan
	s.loading = false
	s.mu.Unlock()
	result := plan
	return &result, nil
}

func (s *WorkoutsStore) CreatePlan(ctx context.Context, input WorkoutPlanInput) (*models.WorkoutPlan, error) {
	s.begin()

	var created models.WorkoutPlan
	if err := s.api.Post(ctx, "/workout-plans", map[string]any{"workout_plan": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.plans = append(s.plans, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *WorkoutsStore) UpdatePlan(ctx context.Context, id string, input WorkoutPlanInput) (*models.WorkoutPlan, error) {
	s.begin()

	var updated models.WorkoutPlan
	if err := s.api.Put(ctx, "/workout-plans/"+id, input, &updated); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans[i] = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	result := updated
	return &result, nil
}

func (s *WorkoutsStore) DeletePlan(ctx context.Context, id string) error {
	s.begin()

	if err := s.api.Delete(ctx, "/workout-plans/"+id); err != nil {
		s.finish(err)
		return err
	}

	s.mu.Lock()
	kept := s.plans[:0]
	for _, p := range s.plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.plans = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *WorkoutsStore) FetchExercises(ctx context.Context, filters url.Values) ([]models.Exercise, error) {
	s.begin()

	var exercises []models.Exercise
	if err := s.api.Get(ctx, "/exercises", filters, &exercises); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.exercises = exercises
	s.loading = false
	s.mu.Unlock()
	return append([]models.Exercise(nil), exercises...), nil
}

func (s *WorkoutsStore) FetchLogs(ctx context.Context, filters url.Values) ([]models.WorkoutLog, error) {
	s.begin()

	var logs []models.WorkoutLog
	if err := s.api.Get(ctx, "/workout-logs", filters, &logs); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.logs = logs
	s.loading = false
	s.mu.Unlock()
	return append([]models.WorkoutLog(nil), logs...), nil
}

func (s *WorkoutsStore) LogWorkout(ctx context.Context, input WorkoutLogInput) (*models.WorkoutLog, error) {
	s.begin()

	var created models.WorkoutLog
	if err := s.api.Post(ctx, "/workout-logs", map[string]any{"workout_log": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.logs = append(s.logs, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

// ActivePlans filters the cached plans down to those a student can train
// with today.
func (s *WorkoutsStore) ActivePlans() []models.WorkoutPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []models.WorkoutPlan
	for _, p := range s.plans {
		if p.Status == "active" {
			active = append(active, p)
		}
	}
	return active
}

func (s *WorkoutsStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *WorkoutsStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
