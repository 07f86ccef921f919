package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/handlers"
	"github.com/gymbros-app/backend/internal/middleware"
	"github.com/gymbros-app/backend/internal/repositories"
	"github.com/gymbros-app/backend/pkg/config"
	"github.com/gymbros-app/backend/pkg/media"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, firebaseAuthClient *auth.Client, uploader *media.Uploader, cfg *config.Config) {
	db := mgClient.Database(cfg.MongoDatabase)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	requestRepo := repositories.NewMongoFriendRequestRepository(db)
	workoutRepo := repositories.NewMongoWorkoutRepository(db)
	calorieRepo := repositories.NewMongoCalorieRepository(db)
	transactor := repositories.NewMongoTransactor(mgClient)
	watcher := repositories.NewMongoActivityWatcher(db)

	// --- Initialize core services ---
	graph := gymbros.NewFriendGraph(userRepo, requestRepo, transactor)
	discovery := gymbros.NewDiscovery(userRepo, gymbros.WithCodeAttempts(cfg.FriendCodeAttempts))
	feed := gymbros.NewFeedBuilder(userRepo, workoutRepo, calorieRepo,
		gymbros.WithBatchSize(cfg.FeedBatchSize),
		gymbros.WithWatcher(watcher),
	)

	// --- Protected routes (require Firebase authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Firebase authentication middleware applied to /api/v1 group.")

	// User profile and discovery routes
	userHandler := handlers.NewUserHandler(userRepo, discovery, uploader)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Friend graph routes
	friendHandler := handlers.NewFriendHandler(graph)
	friendHandler.RegisterFriendRoutes(api)
	log.Println("Friend routes configured.")

	// Workout routes
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)
	workoutHandler.RegisterWorkoutRoutes(api)
	log.Println("Workout routes configured.")

	// Calorie routes
	calorieHandler := handlers.NewCalorieHandler(calorieRepo)
	calorieHandler.RegisterCalorieRoutes(api)
	log.Println("Calorie routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(userRepo, feed)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	log.Println("All routes configured.")
}
