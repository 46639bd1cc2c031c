// Command gacli is a terminal client for the coaching platform: it drives
// the same API surface as the web apps, which makes it a convenient way to
// exercise the client stack against the dev server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/luizavanter/guialmeidapersonal/internal/api"
	"github.com/luizavanter/guialmeidapersonal/internal/config"
	"github.com/luizavanter/guialmeidapersonal/internal/guard"
	"github.com/luizavanter/guialmeidapersonal/internal/session"
	"github.com/luizavanter/guialmeidapersonal/internal/stores"
	"github.com/luizavanter/guialmeidapersonal/pkg/utils"
)

type app struct {
	session  *session.Manager
	auth     *stores.AuthStore
	schedule *stores.ScheduleStore
	students *stores.StudentsStore
	finance  *stores.FinanceStore
	messages *stores.MessagesStore
	board    *stores.DashboardStore
	guard    *guard.Guard
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := session.NewFileStore(cfg.StateDir)
	if err != nil {
		log.Fatalf("Failed to open state dir: %v", err)
	}
	sess := session.NewManager(store, cfg.Locale)

	client := api.New(cfg.APIBaseURL, sess, api.WithSessionExpiredHook(func() {
		fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
	}))

	authStore := stores.NewAuthStore(client, sess, "")
	studentsStore := stores.NewStudentsStore(client)
	scheduleStore := stores.NewScheduleStore(client)
	financeStore := stores.NewFinanceStore(client)
	messagesStore := stores.NewMessagesStore(client)

	a := &app{
		session:  sess,
		auth:     authStore,
		schedule: scheduleStore,
		students: studentsStore,
		finance:  financeStore,
		messages: messagesStore,
		board:    stores.NewDashboardStore(studentsStore, scheduleStore, financeStore, messagesStore),
		guard:    guard.New(authStore),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "login":
		err = a.login(ctx)
	case "logout":
		a.auth.Logout(ctx)
		fmt.Println("Logged out.")
	case "me":
		err = a.me(ctx)
	case "appointments":
		err = a.appointments(ctx)
	case "dashboard":
		err = a.dashboard(ctx)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: gacli <command>

Commands:
  login         Sign in and persist the session
  logout        Sign out and clear the stored session
  me            Show the current account
  appointments  List upcoming appointments
  dashboard     Show the trainer dashboard summary`)
}

func (a *app) login(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, stores.LoginCredentials{
		Email:    strings.TrimSpace(email),
		Password: string(password),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

// requireUser gates a command the way the web apps gate a route.
func (a *app) requireUser(ctx context.Context, path string) error {
	decision := a.guard.Check(ctx, guard.Route{Path: path, RequiresAuth: true})
	if !decision.Allowed {
		return fmt.Errorf("not signed in, run: gacli login")
	}
	return nil
}

func (a *app) me(ctx context.Context) error {
	if err := a.requireUser(ctx, "/me"); err != nil {
		return err
	}

	user := a.session.User()
	fmt.Printf("%s <%s>\nRole: %s\nLocale: %s\n", user.FullName, user.Email, user.Role, user.Locale)
	return nil
}

func (a *app) appointments(ctx context.Context) error {
	if err := a.requireUser(ctx, "/appointments"); err != nil {
		return err
	}

	if _, err := a.schedule.FetchAppointments(ctx, nil); err != nil {
		return err
	}

	upcoming := a.schedule.UpcomingAppointments(time.Now())
	if len(upcoming) == 0 {
		fmt.Println("No upcoming appointments.")
		return nil
	}
	for _, appt := range upcoming {
		fmt.Printf("%s  %-12s %s\n", utils.FormatDateTime(appt.StartTime), appt.Status, appt.Location)
	}
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	if err := a.requireUser(ctx, "/dashboard"); err != nil {
		return err
	}

	user := a.session.User()
	summary, err := a.board.Refresh(ctx, user.ID, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Students: %d (%d active)\n", summary.TotalStudents, summary.ActiveStudents)
	fmt.Printf("Today: %d appointment(s)\n", len(summary.TodayAppointments))
	if summary.NextAppointment != nil {
		fmt.Printf("Next: %s\n", utils.FormatDateTime(summary.NextAppointment.StartTime))
	}
	fmt.Printf("Revenue this month: %s\n", utils.FormatCurrency(summary.MonthRevenue))
	fmt.Printf("Unread messages: %d\n", summary.UnreadMessages)
	for _, sectionErr := range summary.Errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", sectionErr)
	}
	return nil
}
