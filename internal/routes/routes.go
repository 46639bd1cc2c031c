package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/config"
	"github.com/luizavanter/guialmeidapersonal/internal/handlers"
	"github.com/luizavanter/guialmeidapersonal/internal/middleware"
	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, store *repository.Store) error {
	authHandler := handlers.NewAuthHandler(store.Users, store.RefreshTokens, cfg.JWTSecret)
	scheduleHandler := handlers.NewScheduleHandler(store.Appointments, store.ChangeRequests)
	messageHandler := handlers.NewMessageHandler(store.Messages)
	profileHandler := handlers.NewProfileHandler(store.Students)

	students := handlers.NewResourceHandler(store.Students, "student")
	appointments := handlers.NewResourceHandler(store.Appointments, "appointment")
	exercises := handlers.NewResourceHandler(store.Exercises, "exercise")
	workoutPlans := handlers.NewResourceHandler(store.WorkoutPlans, "workout_plan")
	workoutLogs := handlers.NewResourceHandler(store.WorkoutLogs, "workout_log")
	assessments := handlers.NewResourceHandler(store.BodyAssessments, "body_assessment")
	photos := handlers.NewResourceHandler(store.EvolutionPhotos, "evolution_photo")
	goals := handlers.NewResourceHandler(store.Goals, "goal")
	plans := handlers.NewResourceHandler(store.Plans, "plan")
	subscriptions := handlers.NewResourceHandler(store.Subscriptions, "subscription")
	payments := handlers.NewResourceHandler(store.Payments, "payment")
	messages := handlers.NewResourceHandler(store.Messages, "message").WithOwnerField("sender_id")
	notifications := handlers.NewResourceHandler(store.Notifications, "notification")

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.AuthRequired(cfg.JWTSecret), authHandler.Logout)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	protected := api.Group("", middleware.AuthRequired(cfg.JWTSecret))

	studentRoutes := protected.Group("/students")
	studentRoutes.Get("/profile", profileHandler.Show)
	studentRoutes.Put("/profile", profileHandler.Update)
	studentRoutes.Get("", students.List)
	studentRoutes.Post("", students.Create)
	studentRoutes.Get("/:id", students.Get)
	studentRoutes.Put("/:id", students.Update)
	studentRoutes.Delete("/:id", students.Delete)

	registerResource(protected, "/exercises", exercises)
	registerResource(protected, "/workout-plans", workoutPlans)
	registerResource(protected, "/workout-logs", workoutLogs)
	registerResource(protected, "/body-assessments", assessments)
	registerResource(protected, "/evolution-photos", photos)
	registerResource(protected, "/goals", goals)
	registerResource(protected, "/plans", plans)
	registerResource(protected, "/subscriptions", subscriptions)
	registerResource(protected, "/payments", payments)
	registerResource(protected, "/notifications", notifications)

	appts := protected.Group("/appointments")
	appts.Post("/change-request", scheduleHandler.RequestChange)
	appts.Get("", appointments.List)
	appts.Post("", appointments.Create)
	appts.Get("/:id", appointments.Get)
	appts.Put("/:id", appointments.Update)
	appts.Delete("/:id", appointments.Delete)

	msgs := protected.Group("/messages")
	msgs.Get("", messages.List)
	msgs.Post("", messages.Create)
	msgs.Get("/:id", messages.Get)
	msgs.Put("/:id/read", messageHandler.MarkRead)
	msgs.Put("/:id", messages.Update)
	msgs.Delete("/:id", messages.Delete)

	return registerDocsRoutes(app, cfg)
}

func registerResource(router fiber.Router, prefix string, h *handlers.ResourceHandler) {
	group := router.Group(prefix)
	group.Get("", h.List)
	group.Post("", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
