package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// WorkoutHandler handles workout-logging HTTP requests
type WorkoutHandler struct {
	workouts gymbros.WorkoutStore
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workouts gymbros.WorkoutStore) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// RegisterWorkoutRoutes registers workout-related routes
func (h *WorkoutHandler) RegisterWorkoutRoutes(g *echo.Group) {
	g.POST("/workouts", h.CreateWorkout)
	g.GET("/workouts/today", h.GetTodayWorkouts)
}

// CreateWorkout logs a workout for the authenticated user
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string) // Get Firebase UID from middleware

	var req models.CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record := &models.WorkoutRecord{
		OwnerID:     firebaseUID,
		MuscleGroup: req.MuscleGroup,
		Completed:   req.Completed,
		Stats:       req.Stats,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}

	if err := h.workouts.Create(c.Request().Context(), record); err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// GetTodayWorkouts lists the authenticated user's workouts for the current local day
func (h *WorkoutHandler) GetTodayWorkouts(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	start, end := gymbros.DayBounds(time.Now())
	records, err := h.workouts.ListForOwnersBetween(c.Request().Context(), []string{firebaseUID}, start, end)
	if err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusOK, records)
}
