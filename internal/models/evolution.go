package models

import (
	"encoding/json"
	"time"
)

type BodyAssessment struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"studentId"`
	AssessedAt time.Time `json:"assessedAt"`
	Weight     *float64  `json:"weight,omitempty"`
	Height     *float64  `json:"height,omitempty"`
	BodyFat    *float64  `json:"bodyFat,omitempty"`
	MuscleMass *float64  `json:"muscleMass,omitempty"`
	BMI        *float64  `json:"bmi,omitempty"`
	Chest      *float64  `json:"chest,omitempty"`
	Waist      *float64  `json:"waist,omitempty"`
	Hips       *float64  `json:"hips,omitempty"`
	LeftArm    *float64  `json:"leftArm,omitempty"`
	RightArm   *float64  `json:"rightArm,omitempty"`
	LeftThigh  *float64  `json:"leftThigh,omitempty"`
	RightThigh *float64  `json:"rightThigh,omitempty"`
	LeftCalf   *float64  `json:"leftCalf,omitempty"`
	RightCalf  *float64  `json:"rightCalf,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (b *BodyAssessment) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	b.ID = r.string("id")
	b.StudentID = r.string("student_id", "studentId")
	b.AssessedAt = r.time("assessment_date", "assessed_at", "assessedAt", "assessmentDate")
	b.Weight = r.floatPtr("weight_kg", "weight", "weightKg")
	b.Height = r.floatPtr("height_cm", "height", "heightCm")
	b.BodyFat = r.floatPtr("body_fat_percentage", "body_fat", "bodyFat")
	b.MuscleMass = r.floatPtr("muscle_mass_kg", "muscle_mass", "muscleMass")
	b.BMI = r.floatPtr("bmi")
	b.Chest = r.floatPtr("chest_cm", "chest")
	b.Waist = r.floatPtr("waist_cm", "waist")
	b.Hips = r.floatPtr("hips_cm", "hips")
	b.LeftArm = r.floatPtr("left_arm_cm", "left_arm", "leftArm")
	b.RightArm = r.floatPtr("right_arm_cm", "right_arm", "rightArm")
	b.LeftThigh = r.floatPtr("left_thigh_cm", "left_thigh", "leftThigh")
	b.RightThigh = r.floatPtr("right_thigh_cm", "right_thigh", "rightThigh")
	b.LeftCalf = r.floatPtr("left_calf_cm", "left_calf", "leftCalf")
	b.RightCalf = r.floatPtr("right_calf_cm", "right_calf", "rightCalf")
	b.Notes = r.string("notes")
	b.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	b.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}

type EvolutionPhoto struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	PhotoURL  string    `json:"photoUrl"`
	PhotoType string    `json:"photoType"`
	TakenAt   time.Time `json:"takenAt"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *EvolutionPhoto) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	p.ID = r.string("id")
	p.StudentID = r.string("student_id", "studentId")
	p.PhotoURL = r.string("photo_url", "photoUrl")
	p.PhotoType = r.string("photo_type", "photoType")
	if p.PhotoType == "" {
		p.PhotoType = "other"
	}
	p.TakenAt = r.time("taken_at", "takenAt")
	p.Notes = r.string("notes")
	p.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	p.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}

type Goal struct {
	ID           string     `json:"id"`
	StudentID    string     `json:"studentId"`
	Type         string     `json:"type"`
	TargetValue  *float64   `json:"targetValue,omitempty"`
	CurrentValue *float64   `json:"currentValue,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	g.ID = r.string("id")
	g.StudentID = r.string("student_id", "studentId")
	g.Type = r.string("type", "goal_type", "goalType")
	g.TargetValue = r.floatPtr("target_value", "targetValue")
	g.CurrentValue = r.floatPtr("current_value", "currentValue")
	g.Unit = r.string("unit", "target_unit", "targetUnit")
	g.Deadline = r.timePtr("deadline", "target_date", "targetDate")
	g.Status = r.string("status")
	if g.Status == "" {
		g.Status = "active"
	}
	g.Notes = r.string("notes")
	g.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	g.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}
