package models

import (
	"encoding/json"
	"time"
)

type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	MuscleGroup  string    `json:"muscleGroup"`
	Equipment    string    `json:"equipment,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	e.ID = r.string("id")
	e.Name = r.string("name")
	e.Description = r.string("description")
	e.MuscleGroup = r.string("muscle_group", "muscleGroup")
	e.Equipment = r.string("equipment")
	e.VideoURL = r.string("video_url", "videoUrl")
	e.ThumbnailURL = r.string("thumbnail_url", "thumbnailUrl")
	e.Difficulty = r.string("difficulty")
	e.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	e.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}

type WorkoutPlan struct {
	ID            string            `json:"id"`
	TrainerID     string            `json:"trainerId"`
	StudentID     string            `json:"studentId,omitempty"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	DurationWeeks int               `json:"durationWeeks,omitempty"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Exercises     []WorkoutExercise `json:"exercises,omitempty"`
}

func (w *WorkoutPlan) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	w.ID = r.string("id")
	w.TrainerID = r.string("trainer_id", "trainerId")
	w.StudentID = r.string("student_id", "studentId")
	w.Name = r.string("name")
	w.Description = r.string("description")
	w.DurationWeeks = r.int("duration_weeks", "durationWeeks")
	w.Status = r.string("status")
	if w.Status == "" {
		w.Status = "draft"
	}
	w.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	w.UpdatedAt = r.time("updated_at", "updatedAt")

	w.Exercises = nil
	r.object(&w.Exercises, "exercises", "workout_exercises", "workoutExercises")
	return nil
}

type WorkoutExercise struct {
	ID            string    `json:"id"`
	WorkoutPlanID string    `json:"workoutPlanId"`
	ExerciseID    string    `json:"exerciseId"`
	DayOfWeek     int       `json:"dayOfWeek"`
	Sets          int       `json:"sets"`
	Reps          string    `json:"reps,omitempty"`
	Duration      int       `json:"duration,omitempty"`
	Rest          int       `json:"rest,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Order         int       `json:"order"`
	Exercise      *Exercise `json:"exercise,omitempty"`
}

func (w *WorkoutExercise) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	w.ID = r.string("id")
	w.WorkoutPlanID = r.string("workout_plan_id", "workoutPlanId")
	w.ExerciseID = r.string("exercise_id", "exerciseId")
	w.DayOfWeek = r.int("day_of_week", "dayOfWeek")
	w.Sets = r.int("sets")
	w.Reps = r.string("reps")
	w.Duration = r.int("duration")
	w.Rest = r.int("rest", "rest_seconds", "restSeconds")
	w.Notes = r.string("notes")
	w.Order = r.int("order", "position")

	var exercise Exercise
	if r.object(&exercise, "exercise") {
		w.Exercise = &exercise
	}
	return nil
}

type WorkoutLog struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"studentId"`
	WorkoutPlanID string    `json:"workoutPlanId"`
	ExerciseID    string    `json:"exerciseId"`
	CompletedAt   time.Time `json:"completedAt"`
	Sets          int       `json:"sets"`
	Reps          string    `json:"reps,omitempty"`
	Weight        *float64  `json:"weight,omitempty"`
	Duration      int       `json:"duration,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Rating        int       `json:"rating,omitempty"`
}

func (w *WorkoutLog) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	w.ID = r.string("id")
	w.StudentID = r.string("student_id", "studentId")
	w.WorkoutPlanID = r.string("workout_plan_id", "workoutPlanId")
	w.ExerciseID = r.string("exercise_id", "exerciseId")
	w.CompletedAt = r.time("completed_at", "completedAt")
	w.Sets = r.int("sets")
	w.Reps = r.string("reps")
	w.Weight = r.floatPtr("weight", "weight_kg", "weightKg")
	w.Duration = r.int("duration")
	w.Notes = r.string("notes")
	w.Rating = r.int("rating")
	return nil
}
