package stores

import (
	"context"
	"net/url"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type StudentInput struct {
	UserID           string `json:"user_id,omitempty"`
	Status           string `json:"status,omitempty"`
	EmergencyContact string `json:"emergency_contact_name,omitempty"`
	EmergencyPhone   string `json:"emergency_contact_phone,omitempty"`
	MedicalNotes     string `json:"medical_conditions,omitempty"`
	Goals            string `json:"goals_description,omitempty"`
}

type StudentsStore struct {
	mu       sync.RWMutex
	api      Doer
	students []models.Student
	current  *models.Student
	meta     *models.PaginationMeta
	loading  bool
	err      error
}

func NewStudentsStore(api Doer) *StudentsStore {
	return &StudentsStore{api: api}
}

func (s *StudentsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *StudentsStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *StudentsStore) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Student(nil), s.students...)
}

func (s *StudentsStore) Current() *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

func (s *StudentsStore) FetchStudents(ctx context.Context, filters url.Values) ([]models.Student, error) {
	s.begin()

	var students []models.Student
	meta, err := s.api.GetPage(ctx, "/students", filters, &students)
	if err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.students = students
	s.meta = meta
	s.loading = false
	s.mu.Unlock()
	return append([]models.Student(nil), students...), nil
}

// Meta is the pagination meta of the latest FetchStudents, nil before the
// first fetch or when the server sent none.
func (s *StudentsStore) Meta() *models.PaginationMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil
	}
	meta := *s.meta
	return &meta
}

func (s *StudentsStore) FetchStudent(ctx context.Context, id string) (*models.Student, error) {
	s.begin()

	var student models.Student
	if err := s.api.Get(ctx, "/students/"+id, nil, &student); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.current = &student
	s.loading = false
	s.mu.Unlock()
	result := student
	return &result, nil
}

func (s *StudentsStore) CreateStudent(ctx context.Context, input StudentInput) (*models.Student, error) {
	s.begin()

	var created models.Student
	if err := s.api.Post(ctx, "/students", map[string]any{"student": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.students = append(s.students, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *StudentsStore) UpdateStudent(ctx context.Context, id string, input StudentInput) (*models.Student, error) {
	s.begin()

	var updated models.Student
	if err := s.api.Put(ctx, "/students/"+id, input, &updated); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.students {
		if s.students[i].ID == id {
			s.students[i] = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	result := updated
	return &result, nil
}

func (s *StudentsStore) DeleteStudent(ctx context.Context, id string) error {
	s.begin()

	if err := s.api.Delete(ctx, "/students/"+id); err != nil {
		s.finish(err)
		return err
	}

	s.mu.Lock()
	kept := s.students[:0]
	for _, st := range s.students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.students = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *StudentsStore) ActiveStudents() []models.Student {
	return s.byStatus("active")
}

func (s *StudentsStore) InactiveStudents() []models.Student {
	return s.byStatus("inactive")
}

func (s *StudentsStore) TotalStudents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

func (s *StudentsStore) byStatus(status string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Student
	for _, st := range s.students {
		if st.Status == status {
			matched = append(matched, st)
		}
	}
	return matched
}

func (s *StudentsStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *StudentsStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
