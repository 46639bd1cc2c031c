package stores

import (
	"context"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type ProfileInput struct {
	EmergencyContact string `json:"emergency_contact_name,omitempty"`
	EmergencyPhone   string `json:"emergency_contact_phone,omitempty"`
	MedicalNotes     string `json:"medical_conditions,omitempty"`
	Goals            string `json:"goals_description,omitempty"`
}

// ProfileStore caches the authenticated student's own record, served from
// the dedicated /students/profile endpoint rather than the per-id routes.
type ProfileStore struct {
	mu      sync.RWMutex
	api     Doer
	profile *models.Student
	loading bool
	err     error
}

func NewProfileStore(api Doer) *ProfileStore {
	return &ProfileStore{api: api}
}

func (s *ProfileStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ProfileStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ProfileStore) Profile() *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	profile := *s.profile
	return &profile
}

func (s *ProfileStore) FetchProfile(ctx context.Context) (*models.Student, error) {
	s.begin()

	var profile models.Student
	if err := s.api.Get(ctx, "/students/profile", nil, &profile); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.profile = &profile
	s.loading = false
	s.mu.Unlock()
	result := profile
	return &result, nil
}

// UpdateProfile sends the partial update unwrapped and replaces the cache
// with the server's version of the record.
func (s *ProfileStore) UpdateProfile(ctx context.Context, input ProfileInput) (*models.Student, error) {
	s.begin()

	var updated models.Student
	if err := s.api.Put(ctx, "/students/profile", input, &updated); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.profile = &updated
	s.loading = false
	s.mu.Unlock()
	result := updated
	return &result, nil
}

func (s *ProfileStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *ProfileStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
