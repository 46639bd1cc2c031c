package stores

import (
	"context"
	"sync"
	"time"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

// DashboardSummary is the aggregate the trainer home screen renders.
// Sections that failed to load are zero-valued; Errs carries what went
// wrong per section.
type DashboardSummary struct {
	TotalStudents     int
	ActiveStudents    int
	TodayAppointments []models.Appointment
	NextAppointment   *models.Appointment
	MonthRevenue      float64
	UnreadMessages    int
	Errs              []error
}

// DashboardStore fans out to the section stores in parallel and tolerates
// partial failure: one slow or broken endpoint must not blank the whole
// dashboard.
type DashboardStore struct {
	students *StudentsStore
	schedule *ScheduleStore
	finance  *FinanceStore
	messages *MessagesStore
}

func NewDashboardStore(students *StudentsStore, schedule *ScheduleStore, finance *FinanceStore, messages *MessagesStore) *DashboardStore {
	return &DashboardStore{
		students: students,
		schedule: schedule,
		finance:  finance,
		messages: messages,
	}
}

// Refresh loads every section concurrently and assembles the summary from
// whatever succeeded. userID scopes the unread-message count.
func (d *DashboardStore) Refresh(ctx context.Context, userID string, now time.Time) (*DashboardSummary, error) {
	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		_, errs[0] = d.students.FetchStudents(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = d.schedule.FetchAppointments(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[2] = d.finance.FetchPayments(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[3] = d.messages.FetchMessages(ctx, nil)
	}()
	wg.Wait()

	summary := &DashboardSummary{}
	for _, err := range errs {
		if err != nil {
			summary.Errs = append(summary.Errs, err)
		}
	}

	if errs[0] == nil {
		summary.TotalStudents = d.students.TotalStudents()
		summary.ActiveStudents = len(d.students.ActiveStudents())
	}
	if errs[1] == nil {
		summary.TodayAppointments = d.schedule.TodayAppointments(now)
		summary.NextAppointment = d.schedule.NextAppointment(now)
	}
	if errs[2] == nil {
		summary.MonthRevenue = d.finance.MonthRevenue(now)
	}
	if errs[3] == nil {
		summary.UnreadMessages = d.messages.UnreadCount(userID)
	}

	if len(summary.Errs) == 4 {
		return summary, summary.Errs[0]
	}
	return summary, nil
}

// StudentDashboardSummary is the student home screen counterpart.
type StudentDashboardSummary struct {
	NextAppointment  *models.Appointment
	ActivePlan       *models.WorkoutPlan
	ActiveGoals      []models.Goal
	LatestAssessment *models.BodyAssessment
	UnreadMessages   int
	Errs             []error
}

type StudentDashboardStore struct {
	schedule  *ScheduleStore
	workouts  *WorkoutsStore
	evolution *EvolutionStore
	messages  *MessagesStore
}

func NewStudentDashboardStore(schedule *ScheduleStore, workouts *WorkoutsStore, evolution *EvolutionStore, messages *MessagesStore) *StudentDashboardStore {
	return &StudentDashboardStore{
		schedule:  schedule,
		workouts:  workouts,
		evolution: evolution,
		messages:  messages,
	}
}

func (d *StudentDashboardStore) Refresh(ctx context.Context, userID string, now time.Time) (*StudentDashboardSummary, error) {
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() {
		defer wg.Done()
		_, errs[0] = d.schedule.FetchAppointments(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = d.workouts.FetchPlans(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[2] = d.evolution.FetchGoals(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[3] = d.evolution.FetchAssessments(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		_, errs[4] = d.messages.FetchMessages(ctx, nil)
	}()
	wg.Wait()

	summary := &StudentDashboardSummary{}
	for _, err := range errs {
		if err != nil {
			summary.Errs = append(summary.Errs, err)
		}
	}

	if errs[0] == nil {
		summary.NextAppointment = d.schedule.NextAppointment(now)
	}
	if errs[1] == nil {
		if active := d.workouts.ActivePlans(); len(active) > 0 {
			plan := active[0]
			summary.ActivePlan = &plan
		}
	}
	if errs[2] == nil {
		summary.ActiveGoals = d.evolution.ActiveGoals()
	}
	if errs[3] == nil {
		summary.LatestAssessment = d.evolution.LatestAssessment()
	}
	if errs[4] == nil {
		summary.UnreadMessages = d.messages.UnreadCount(userID)
	}

	if len(summary.Errs) == 5 {
		return summary, summary.Errs[0]
	}
	return summary, nil
}
