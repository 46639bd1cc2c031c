package stores

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type SubscriptionInput struct {
	StudentID string `json:"student_id"`
	PlanID    string `json:"plan_id"`
	StartDate string `json:"start_date,omitempty"`
	AutoRenew bool   `json:"auto_renew,omitempty"`
}

type PaymentInput struct {
	SubscriptionID string   `json:"subscription_id"`
	Amount         *float64 `json:"amount,omitempty"`
	Method         string   `json:"method,omitempty"`
	Status         string   `json:"status,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

type FinanceStore struct {
	mu            sync.RWMutex
	api           Doer
	plans         []models.Plan
	subscriptions []models.Subscription
	payments      []models.Payment
	paymentsMeta  *models.PaginationMeta
	loading       bool
	err           error
}

func NewFinanceStore(api Doer) *FinanceStore {
	return &FinanceStore{api: api}
}

func (s *FinanceStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *FinanceStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *FinanceStore) Plans() []models.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Plan(nil), s.plans...)
}

func (s *FinanceStore) Subscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Subscription(nil), s.subscriptions...)
}

func (s *FinanceStore) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

func (s *FinanceStore) FetchPlans(ctx context.Context, filters url.Values) ([]models.Plan, error) {
	s.begin()

	var plans []models.Plan
	if err := s.api.Get(ctx, "/plans", filters, &plans); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.plans = plans
	s.loading = false
	s.mu.Unlock()
	return append([]models.Plan(nil), plans...), nil
}

func (s *FinanceStore) FetchSubscriptions(ctx context.Context, filters url.Values) ([]models.Subscription, error) {
	s.begin()

	var subscriptions []models.Subscription
	if err := s.api.Get(ctx, "/subscriptions", filters, &subscriptions); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.subscriptions = subscriptions
	s.loading = false
	s.mu.Unlock()
	return append([]models.Subscription(nil), subscriptions...), nil
}

func (s *FinanceStore) CreateSubscription(ctx context.Context, input SubscriptionInput) (*models.Subscription, error) {
	s.begin()

	var created models.Subscription
	if err := s.api.Post(ctx, "/subscriptions", map[string]any{"subscription": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.subscriptions = append(s.subscriptions, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

func (s *FinanceStore) FetchPayments(ctx context.Context, filters url.Values) ([]models.Payment, error) {
	s.begin()

	var payments []models.Payment
	meta, err := s.api.GetPage(ctx, "/payments", filters, &payments)
	if err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.payments = payments
	s.paymentsMeta = meta
	s.loading = false
	s.mu.Unlock()
	return append([]models.Payment(nil), payments...), nil
}

// PaymentsMeta is the pagination meta of the latest FetchPayments, nil
// before the first fetch or when the server sent none.
func (s *FinanceStore) PaymentsMeta() *models.PaginationMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.paymentsMeta == nil {
		return nil
	}
	meta := *s.paymentsMeta
	return &meta
}

func (s *FinanceStore) CreatePayment(ctx context.Context, input PaymentInput) (*models.Payment, error) {
	s.begin()

	var created models.Payment
	if err := s.api.Post(ctx, "/payments", map[string]any{"payment": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.payments = append(s.payments, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

// ActiveSubscriptions filters the cached subscriptions to those currently
// billing.
func (s *FinanceStore) ActiveSubscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []models.Subscription
	for _, sub := range s.subscriptions {
		if sub.Status == "active" {
			active = append(active, sub)
		}
	}
	return active
}

// MonthRevenue sums payments marked paid within the month containing now.
func (s *FinanceStore) MonthRevenue(now time.Time) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, p := range s.payments {
		if p.Status != "paid" || p.PaidAt == nil {
			continue
		}
		if p.PaidAt.Year() == now.Year() && p.PaidAt.Month() == now.Month() {
			total += p.Amount
		}
	}
	return total
}

// OverduePayments returns pending payments whose due date has passed.
func (s *FinanceStore) OverduePayments(now time.Time) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var overdue []models.Payment
	for _, p := range s.payments {
		if p.Status == "pending" && p.DueDate != nil && p.DueDate.Before(now) {
			overdue = append(overdue, p)
		}
	}
	return overdue
}

func (s *FinanceStore) PendingPayments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.Payment
	for _, p := range s.payments {
		if p.Status == "pending" {
			pending = append(pending, p)
		}
	}
	return pending
}

func (s *FinanceStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *FinanceStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
