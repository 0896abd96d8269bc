// main.go
package main

import (
	"log"
	"os"
	"time"

	"fitarena/database"
	"fitarena/handlers"
	"fitarena/handlers/admin"
	"fitarena/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	database.InitDB()
	defer database.CloseDB()

	if err := database.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	handlers.InitHandlers()
	admin.InitAdminHandlers()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	api.Post("/register", middleware.AuthRateLimitMiddleware(), handlers.Register)
	api.Post("/login", middleware.AuthRateLimitMiddleware(), handlers.Login)

	// Gym routes
	api.Get("/gyms", handlers.ListGyms)
	api.Get("/gyms/:id", handlers.GetGym)
	api.Post("/gyms", middleware.AuthMiddleware, middleware.GymOwnerMiddleware, handlers.CreateGym)
	api.Put("/gyms/:id", middleware.AuthMiddleware, middleware.GymOwnerMiddleware, handlers.UpdateGym)
	api.Get("/gym", middleware.AuthMiddleware, middleware.GymOwnerMiddleware, handlers.MyGym)

	// Gym challenges
	api.Post("/gym_challenges", middleware.AuthMiddleware, middleware.GymOwnerMiddleware, handlers.CreateGymChallenge)
	api.Get("/gym_challenges", middleware.AuthMiddleware, handlers.ListGymChallenges)

	// User (community) challenges
	api.Post("/challenge_clients", middleware.AuthMiddleware, handlers.CreateUserChallenge)
	api.Get("/challenge_clients", middleware.AuthMiddleware, handlers.ListMyChallenges)

	// Challenge discovery. Static paths before the :id wildcard.
	api.Get("/challenges/explore", handlers.ExploreChallenges)
	api.Get("/challenges/trending", handlers.TrendingChallenges)
	api.Get("/challenges/search", handlers.SearchChallenges)
	api.Get("/challenges/recommended", middleware.AuthMiddleware, handlers.RecommendedChallenges)
	api.Get("/challenges/my-participations", middleware.AuthMiddleware, handlers.MyParticipations)
	api.Get("/challenges/my-stats", middleware.AuthMiddleware, handlers.MyParticipationStats)
	api.Get("/challenges/:id", handlers.GetChallenge)
	api.Put("/challenges/:id", middleware.AuthMiddleware, handlers.UpdateChallenge)
	api.Delete("/challenges/:id", middleware.AuthMiddleware, handlers.DeleteChallenge)
	api.Post("/challenges/:id/start", middleware.AuthMiddleware, handlers.StartChallenge)
	api.Post("/challenges/:id/claim", middleware.AuthMiddleware, handlers.ClaimChallenge)

	// Invitations
	api.Post("/challenge_invitations", middleware.AuthMiddleware, handlers.SendInvitation)
	api.Get("/challenge_invitations/sent", middleware.AuthMiddleware, handlers.SentInvitations)
	api.Get("/challenge_invitations/received", middleware.AuthMiddleware, handlers.ReceivedInvitations)
	api.Get("/challenge_invitations/stats", middleware.AuthMiddleware, handlers.InvitationStats)
	api.Post("/challenge_invitations/:id/respond", middleware.AuthMiddleware, handlers.RespondToInvitation)
	api.Delete("/challenge_invitations/:id", middleware.AuthMiddleware, handlers.CancelInvitation)

	// Group challenges
	api.Post("/group_challenges", middleware.AuthMiddleware, handlers.CreateGroupChallenge)
	api.Get("/group_challenges", middleware.AuthMiddleware, handlers.MyGroupChallenges)
	api.Get("/group_challenges/:id", middleware.AuthMiddleware, handlers.GetGroupChallenge)
	api.Post("/group_challenges/:id/join", middleware.AuthMiddleware, handlers.JoinGroupChallenge)

	// Training
	api.Post("/training_sessions", middleware.AuthMiddleware, handlers.LogTrainingSession)
	api.Get("/training_sessions", middleware.AuthMiddleware, handlers.ListTrainingSessions)
	api.Get("/training_sessions/:id", middleware.AuthMiddleware, handlers.GetTrainingSession)
	api.Put("/training_sessions/:id", middleware.AuthMiddleware, handlers.UpdateTrainingSession)
	api.Delete("/training_sessions/:id", middleware.AuthMiddleware, handlers.DeleteTrainingSession)
	api.Get("/training_stats", middleware.AuthMiddleware, handlers.TrainingStats)

	// Leaderboard
	api.Get("/leaderboard", middleware.AuthMiddleware, handlers.Leaderboard)
	api.Get("/leaderboard/my-rank", middleware.AuthMiddleware, handlers.MyRank)

	// Exercises
	api.Get("/exercises", handlers.ListExercises)
	api.Get("/exercises/:id", handlers.GetExercise)

	// Gamification
	gamification := api.Group("/gamification", middleware.AuthMiddleware)
	gamification.Get("/dashboard", handlers.GamificationDashboard)
	gamification.Get("/badges", handlers.ListBadges)
	gamification.Get("/my-badges", handlers.MyBadges)
	gamification.Get("/rewards", handlers.ListRewards)
	gamification.Get("/my-rewards", handlers.MyRewards)
	gamification.Get("/level", handlers.MyLevel)
	gamification.Get("/streak", handlers.MyStreak)
	gamification.Post("/rewards/:id/claim", handlers.ClaimReward)

	// Admin surface
	adminGroup := api.Group("/admin", middleware.AuthMiddleware, middleware.AdminMiddleware)
	adminGroup.Get("/users", admin.ListUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id/role", admin.ChangeUserRole)
	adminGroup.Put("/users/:id/activate", admin.ActivateUser)
	adminGroup.Put("/users/:id/deactivate", admin.DeactivateUser)
	adminGroup.Delete("/users/:id", admin.DeleteUser)
	adminGroup.Get("/users/:id/badges", admin.UserBadges)
	adminGroup.Get("/users/:id/rewards", admin.UserRewards)
	adminGroup.Put("/users/:id/rewards/:rewardId/deactivate", admin.DeactivateUserReward)

	adminGroup.Get("/gyms", admin.ListGyms)
	adminGroup.Get("/gyms/pending", admin.PendingGyms)
	adminGroup.Get("/gyms/:id", admin.GetGym)
	adminGroup.Put("/gyms/:id/approve", admin.ApproveGym)
	adminGroup.Put("/gyms/:id/reject", admin.RejectGym)
	adminGroup.Delete("/gyms/:id", admin.DeleteGym)

	adminGroup.Get("/badges", admin.ListBadges)
	adminGroup.Post("/badges", admin.CreateBadge)
	adminGroup.Put("/badges/:id", admin.UpdateBadge)
	adminGroup.Delete("/badges/:id", admin.DeleteBadge)
	adminGroup.Post("/badges/:id/award", admin.AwardBadge)

	adminGroup.Get("/rewards", admin.ListRewards)
	adminGroup.Post("/rewards", admin.CreateReward)
	adminGroup.Put("/rewards/:id", admin.UpdateReward)
	adminGroup.Delete("/rewards/:id", admin.DeleteReward)

	adminGroup.Post("/exercises", admin.CreateExercise)
	adminGroup.Put("/exercises/:id", admin.UpdateExercise)
	adminGroup.Delete("/exercises/:id", admin.DeleteExercise)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := getEnv("PORT", "3000")

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
