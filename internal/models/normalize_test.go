package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestAppointmentNormalizationIsIdempotent(t *testing.T) {
	snake := []byte(`{
		"id": "apt-1",
		"trainer_id": "tr-1",
		"student_id": "st-1",
		"scheduled_at": "2026-04-10T09:00:00Z",
		"duration_minutes": 90,
		"appointment_type": "assessment",
		"status": "scheduled",
		"inserted_at": "2026-04-01T12:00:00Z",
		"updated_at": "2026-04-02T12:00:00Z"
	}`)
	camel := []byte(`{
		"id": "apt-1",
		"trainerId": "tr-1",
		"studentId": "st-1",
		"scheduledAt": "2026-04-10T09:00:00Z",
		"durationMinutes": 90,
		"appointmentType": "assessment",
		"status": "scheduled",
		"createdAt": "2026-04-01T12:00:00Z",
		"updatedAt": "2026-04-02T12:00:00Z"
	}`)

	var a, b Appointment
	if err := json.Unmarshal(snake, &a); err != nil {
		t.Fatalf("Unmarshal snake: %v", err)
	}
	if err := json.Unmarshal(camel, &b); err != nil {
		t.Fatalf("Unmarshal camel: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected identical canonical output, got\n%+v\nvs\n%+v", a, b)
	}

	// Feeding canonical output back through decode changes nothing.
	reencoded, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var c Appointment
	if err := json.Unmarshal(reencoded, &c); err != nil {
		t.Fatalf("Unmarshal reencoded: %v", err)
	}
	if !reflect.DeepEqual(a, c) {
		t.Errorf("Expected stable round through canonical form, got\n%+v\nvs\n%+v", a, c)
	}
}

func TestAppointmentDerivesStartAndEndTime(t *testing.T) {
	var a Appointment
	err := json.Unmarshal([]byte(`{
		"id": "apt-2",
		"scheduled_at": "2026-04-10T09:00:00Z",
		"duration_minutes": 45
	}`), &a)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	start := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	if !a.StartTime.Equal(start) {
		t.Errorf("Expected start %v, got %v", start, a.StartTime)
	}
	if !a.EndTime.Equal(start.Add(45 * time.Minute)) {
		t.Errorf("Expected end %v, got %v", start.Add(45*time.Minute), a.EndTime)
	}
}

func TestAppointmentDefaults(t *testing.T) {
	var a Appointment
	if err := json.Unmarshal([]byte(`{"id": "apt-3"}`), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if a.Status != "scheduled" {
		t.Errorf("Expected default status scheduled, got %q", a.Status)
	}
	if a.DurationMinutes != 60 {
		t.Errorf("Expected default duration 60, got %d", a.DurationMinutes)
	}
	if !a.StartTime.IsZero() || !a.EndTime.IsZero() {
		t.Errorf("Expected zero times without scheduled_at")
	}
}

func TestUserFullNameSplitting(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{
		"id": "u-1",
		"email": "maria@example.com",
		"role": "student",
		"full_name": "Maria da Silva"
	}`), &u)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if u.FirstName != "Maria" {
		t.Errorf("Expected first name Maria, got %q", u.FirstName)
	}
	if u.LastName != "da Silva" {
		t.Errorf("Expected last name, got %q", u.LastName)
	}
	if u.Locale != "pt-BR" {
		t.Errorf("Expected default locale pt-BR, got %q", u.Locale)
	}

	var v User
	err = json.Unmarshal([]byte(`{
		"id": "u-1",
		"email": "maria@example.com",
		"role": "student",
		"firstName": "Maria",
		"lastName": "da Silva"
	}`), &v)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.FullName != "Maria da Silva" {
		t.Errorf("Expected joined full name, got %q", v.FullName)
	}
}

func TestStudentFieldAliases(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{
		"id": "st-1",
		"user_id": "u-1",
		"emergency_contact_name": "Joana",
		"emergency_contact_phone": "11 99999-0000",
		"medical_conditions": "asthma",
		"goals_description": "lose weight",
		"user": {"id": "u-1", "email": "x@y.com", "role": "student", "full_name": "X Y"}
	}`), &s)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if s.EmergencyContact != "Joana" || s.EmergencyPhone != "11 99999-0000" {
		t.Errorf("Expected emergency contact aliases resolved, got %+v", s)
	}
	if s.MedicalNotes != "asthma" || s.Goals != "lose weight" {
		t.Errorf("Expected medical/goals aliases resolved, got %+v", s)
	}
	if s.Status != "active" {
		t.Errorf("Expected default status active, got %q", s.Status)
	}
	if s.User == nil || s.User.FirstName != "X" {
		t.Errorf("Expected nested user normalized, got %+v", s.User)
	}
}

func TestBodyAssessmentAliases(t *testing.T) {
	snake := []byte(`{
		"id": "ba-1",
		"student_id": "st-1",
		"assessment_date": "2026-02-01T08:00:00Z",
		"weight_kg": 82.5,
		"body_fat_percentage": 18.2
	}`)
	camel := []byte(`{
		"id": "ba-1",
		"studentId": "st-1",
		"assessedAt": "2026-02-01T08:00:00Z",
		"weight": 82.5,
		"bodyFat": 18.2
	}`)

	var a, b BodyAssessment
	if err := json.Unmarshal(snake, &a); err != nil {
		t.Fatalf("Unmarshal snake: %v", err)
	}
	if err := json.Unmarshal(camel, &b); err != nil {
		t.Fatalf("Unmarshal camel: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected identical canonical assessments, got\n%+v\nvs\n%+v", a, b)
	}
	if a.Weight == nil || *a.Weight != 82.5 {
		t.Errorf("Expected weight 82.5, got %v", a.Weight)
	}
}

func TestPaymentAmountCents(t *testing.T) {
	var p Payment
	err := json.Unmarshal([]byte(`{
		"id": "pay-1",
		"amount_cents": 15990,
		"status": "paid",
		"paid_at": "2026-03-01T10:00:00Z"
	}`), &p)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.Amount != 159.90 {
		t.Errorf("Expected amount 159.90, got %v", p.Amount)
	}
	if p.Currency != "BRL" {
		t.Errorf("Expected default currency BRL, got %q", p.Currency)
	}
	if p.PaidAt == nil {
		t.Errorf("Expected paid_at parsed")
	}
}

func TestMessageReadFlag(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{
		"id": "m-1",
		"sender_id": "u-1",
		"receiver_id": "u-2",
		"content": "see you tomorrow",
		"read": true,
		"inserted_at": "2026-03-01T10:00:00Z"
	}`), &m)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if m.RecipientID != "u-2" {
		t.Errorf("Expected receiver_id alias resolved, got %q", m.RecipientID)
	}
	if m.Body != "see you tomorrow" {
		t.Errorf("Expected content alias resolved, got %q", m.Body)
	}
	if !m.Read() {
		t.Errorf("Expected legacy read flag honored")
	}

	var unread Message
	if err := json.Unmarshal([]byte(`{"id": "m-2", "body": "hi"}`), &unread); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if unread.Read() {
		t.Errorf("Expected message without read_at to be unread")
	}
}

func TestWorkoutPlanExercisesAlias(t *testing.T) {
	var w WorkoutPlan
	err := json.Unmarshal([]byte(`{
		"id": "wp-1",
		"name": "Hypertrophy A",
		"status": "active",
		"workout_exercises": [
			{"id": "we-1", "exercise_id": "ex-1", "day_of_week": 1, "sets": 4, "reps": "8-12", "order": 1}
		]
	}`), &w)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(w.Exercises) != 1 {
		t.Fatalf("Expected workout_exercises alias resolved, got %d entries", len(w.Exercises))
	}
	if w.Exercises[0].ExerciseID != "ex-1" || w.Exercises[0].Sets != 4 {
		t.Errorf("Expected nested exercise normalized, got %+v", w.Exercises[0])
	}
}
