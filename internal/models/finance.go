package models

import (
	"encoding/json"
	"time"
)

type Plan struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	Duration        int       `json:"duration"`
	DurationType    string    `json:"durationType"`
	SessionsPerWeek int       `json:"sessionsPerWeek,omitempty"`
	Features        []string  `json:"features,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	p.ID = r.string("id")
	p.Name = r.string("name")
	p.Description = r.string("description")
	p.Price = r.float("price")
	if p.Price == 0 {
		if cents := r.float("price_cents", "priceCents"); cents != 0 {
			p.Price = cents / 100
		}
	}
	p.Currency = r.string("currency")
	if p.Currency == "" {
		p.Currency = "BRL"
	}
	p.Duration = r.int("duration")
	p.DurationType = r.string("duration_type", "durationType")
	if p.DurationType == "" {
		p.DurationType = "months"
	}
	p.SessionsPerWeek = r.int("sessions_per_week", "sessionsPerWeek")
	p.Features = nil
	r.object(&p.Features, "features")
	p.Active = r.bool("active")
	p.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	p.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}

type Subscription struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	PlanID    string    `json:"planId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	AutoRenew bool      `json:"autoRenew"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Plan      *Plan     `json:"plan,omitempty"`
	Student   *Student  `json:"student,omitempty"`
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	s.ID = r.string("id")
	s.StudentID = r.string("student_id", "studentId")
	s.PlanID = r.string("plan_id", "planId")
	s.StartDate = r.time("start_date", "startDate")
	s.EndDate = r.time("end_date", "endDate")
	s.Status = r.string("status")
	if s.Status == "" {
		s.Status = "pending"
	}
	s.AutoRenew = r.bool("auto_renew", "autoRenew")
	s.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	s.UpdatedAt = r.time("updated_at", "updatedAt")

	var plan Plan
	if r.object(&plan, "plan") {
		s.Plan = &plan
	}
	var student Student
	if r.object(&student, "student") {
		s.Student = &student
	}
	return nil
}

type Payment struct {
	ID             string        `json:"id"`
	SubscriptionID string        `json:"subscriptionId"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Status         string        `json:"status"`
	Method         string        `json:"method,omitempty"`
	PaidAt         *time.Time    `json:"paidAt,omitempty"`
	DueDate        *time.Time    `json:"dueDate,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Subscription   *Subscription `json:"subscription,omitempty"`
}

// Amount comes either as a decimal or as amount_cents depending on the
// backend revision.
func (p *Payment) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	p.ID = r.string("id")
	p.SubscriptionID = r.string("subscription_id", "subscriptionId")
	p.Amount = r.float("amount")
	if p.Amount == 0 {
		if cents := r.float("amount_cents", "amountCents"); cents != 0 {
			p.Amount = cents / 100
		}
	}
	p.Currency = r.string("currency")
	if p.Currency == "" {
		p.Currency = "BRL"
	}
	p.Status = r.string("status")
	if p.Status == "" {
		p.Status = "pending"
	}
	p.Method = r.string("method", "payment_method", "paymentMethod")
	p.PaidAt = r.timePtr("paid_at", "paidAt")
	p.DueDate = r.timePtr("due_date", "dueDate")
	p.Notes = r.string("notes")
	p.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	p.UpdatedAt = r.time("updated_at", "updatedAt")

	var subscription Subscription
	if r.object(&subscription, "subscription") {
		p.Subscription = &subscription
	}
	return nil
}
