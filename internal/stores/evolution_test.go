package stores

import (
	"context"
	"testing"
)

func TestLatestAssessmentAndWeightHistory(t *testing.T) {
	api := newStubDoer()
	api.respond("GET", "/body-assessments", `[
		{"id": "b1", "assessment_date": "2025-01-10", "weight_kg": 82.5},
		{"id": "b2", "assessment_date": "2025-03-10", "weight_kg": 80.1},
		{"id": "b3", "assessment_date": "2025-02-10"}
	]`)

	store := NewEvolutionStore(api)
	if _, err := store.FetchAssessments(context.Background(), nil); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	latest := store.LatestAssessment()
	if latest == nil || latest.ID != "b2" {
		t.Errorf("latest = %+v, want b2", latest)
	}

	history := store.WeightHistory()
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2 (b3 has no weight)", len(history))
	}
	if history[0].ID != "b1" || history[1].ID != "b2" {
		t.Errorf("history order = %s,%s, want b1,b2", history[0].ID, history[1].ID)
	}
}

func TestActiveGoals(t *testing.T) {
	api := newStubDoer()
	api.respond("GET", "/goals", `[
		{"id": "g1", "title": "Perder 5kg"},
		{"id": "g2", "title": "Supino 100kg", "status": "completed"}
	]`)

	store := NewEvolutionStore(api)
	if _, err := store.FetchGoals(context.Background(), nil); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	// g1 defaults to active at the decode boundary.
	active := store.ActiveGoals()
	if len(active) != 1 || active[0].ID != "g1" {
		t.Errorf("active = %+v, want only g1", active)
	}
}

func TestCreateAssessmentWrapsPayload(t *testing.T) {
	api := newStubDoer()
	api.respond("POST", "/body-assessments", `{"id": "b9", "assessment_date": "2025-03-15"}`)

	store := NewEvolutionStore(api)
	weight := 79.5
	created, err := store.CreateAssessment(context.Background(), AssessmentInput{
		StudentID:      "s1",
		AssessmentDate: "2025-03-15",
		WeightKg:       &weight,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "b9" {
		t.Errorf("unexpected assessment: %+v", created)
	}

	body := api.lastBody(t, "POST", "/body-assessments")
	if _, ok := body["body_assessment"]; !ok {
		t.Error("expected payload wrapped under body_assessment key")
	}
}
