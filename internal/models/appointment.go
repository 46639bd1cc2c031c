package models

import (
	"encoding/json"
	"time"
)

const defaultAppointmentMinutes = 60

type Appointment struct {
	ID              string    `json:"id"`
	TrainerID       string    `json:"trainerId"`
	StudentID       string    `json:"studentId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"appointmentType,omitempty"`
	Location        string    `json:"location,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Student         *Student  `json:"student,omitempty"`
}

// Older payloads carry scheduled_at + duration_minutes, newer ones
// startTime/endTime. StartTime and EndTime are always populated after decode.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	a.ID = r.string("id")
	a.TrainerID = r.string("trainer_id", "trainerId")
	a.StudentID = r.string("student_id", "studentId")
	a.Type = r.string("appointment_type", "appointmentType")
	a.Location = r.string("location")
	a.Status = r.string("status")
	if a.Status == "" {
		a.Status = "scheduled"
	}
	a.Notes = r.string("notes")
	a.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	a.UpdatedAt = r.time("updated_at", "updatedAt")

	a.ScheduledAt = r.time("scheduled_at", "scheduledAt", "startTime", "start_time")
	a.DurationMinutes = r.int("duration_minutes", "durationMinutes")
	if a.DurationMinutes == 0 {
		a.DurationMinutes = defaultAppointmentMinutes
	}
	a.StartTime = a.ScheduledAt
	if !a.StartTime.IsZero() {
		a.EndTime = a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
	} else {
		a.EndTime = time.Time{}
	}

	var student Student
	if r.object(&student, "student") {
		a.Student = &student
	}
	return nil
}

// AppointmentChangeRequest is the thin "request change" call; the platform has
// no client-side scheduling logic beyond it.
type AppointmentChangeRequest struct {
	AppointmentID string    `json:"appointment_id"`
	RequestedTime time.Time `json:"requested_time,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}
