package stores

import (
	"context"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type AppointmentInput struct {
	StudentID       string    `json:"student_id,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Type            string    `json:"appointment_type,omitempty"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type ScheduleStore struct {
	mu           sync.RWMutex
	api          Doer
	appointments []models.Appointment
	current      *models.Appointment
	meta         *models.PaginationMeta
	loading      bool
	err          error
}

func NewScheduleStore(api Doer) *ScheduleStore {
	return &ScheduleStore{api: api}
}

func (s *ScheduleStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ScheduleStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ScheduleStore) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

func (s *ScheduleStore) Current() *models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

func (s *ScheduleStore) FetchAppointments(ctx context.Context, filters url.Values) ([]models.Appointment, error) {
	s.begin()

	var appointments []models.Appointment
	meta, err := s.api.GetPage(ctx, "/appointments", filters, &appointments)
	if err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.appointments = appointments
	s.meta = meta
	s.loading = false
	s.mu.Unlock()
	return append([]models.Appointment(nil), appointments...), nil
}

// Meta is the pagination meta of the latest FetchAppointments, nil before
// the first fetch or when the server sent none.
func (s *ScheduleStore) Meta() *models.PaginationMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil
	}
	meta := *s.meta
	return &meta
}

func (s *ScheduleStore) FetchAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	s.begin()

	var appointment models.Appointment
	if err := s.api.Get(ctx, "/appointments/"+id, nil, &appointment); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.current = &appointment
	s.loading = false
	s.mu.Unlock()
	result := appointment
	return &result, nil
}

func (s *ScheduleStore) CreateAppointment(ctx context.Context, input AppointmentInput) (*models.Appointment, error) {
	s.begin()

	var created models.Appointment
	// The backend expects the payload wrapped under an "appointment" key.
	if err := s.api.Post(ctx, "/appointments", map[string]any{"appointment": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *ScheduleStore) UpdateAppointment(ctx context.Context, id string, input AppointmentInput) (*models.Appointment, error) {
	s.begin()

	var updated models.Appointment
	if err := s.api.Put(ctx, "/appointments/"+id, input, &updated); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i] = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	result := updated
	return &result, nil
}

func (s *ScheduleStore) DeleteAppointment(ctx context.Context, id string) error {
	s.begin()

	if err := s.api.Delete(ctx, "/appointments/"+id); err != nil {
		s.finish(err)
		return err
	}

	s.mu.Lock()
	kept := s.appointments[:0]
	for _, a := range s.appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.appointments = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

// RequestChange files the thin "request change" call and refetches the
// collection so the caller sees any server-side effect.
func (s *ScheduleStore) RequestChange(ctx context.Context, req models.AppointmentChangeRequest) error {
	s.begin()

	if err := s.api.Post(ctx, "/appointments/change-request", req, nil); err != nil {
		s.finish(err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	_, err := s.FetchAppointments(ctx, nil)
	return err
}

// UpcomingAppointments returns the future, non-cancelled appointments sorted
// ascending by start time.
func (s *ScheduleStore) UpcomingAppointments(now time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var upcoming []models.Appointment
	for _, a := range s.appointments {
		if isUpcoming(a, now) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})
	return upcoming
}

// PastAppointments is the exact complement of UpcomingAppointments, newest
// first.
func (s *ScheduleStore) PastAppointments(now time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var past []models.Appointment
	for _, a := range s.appointments {
		if !isUpcoming(a, now) {
			past = append(past, a)
		}
	}
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartTime.After(past[j].StartTime)
	})
	return past
}

func (s *ScheduleStore) NextAppointment(now time.Time) *models.Appointment {
	upcoming := s.UpcomingAppointments(now)
	if len(upcoming) == 0 {
		return nil
	}
	next := upcoming[0]
	return &next
}

func (s *ScheduleStore) TodayAppointments(now time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var today []models.Appointment
	for _, a := range s.appointments {
		if !a.StartTime.IsZero() && sameDay(a.StartTime, now) {
			today = append(today, a)
		}
	}
	return today
}

func isUpcoming(a models.Appointment, now time.Time) bool {
	return !a.StartTime.IsZero() && a.StartTime.After(now) && a.Status != "cancelled"
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (s *ScheduleStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *ScheduleStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
