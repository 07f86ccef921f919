package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// CalorieHandler handles calorie-logging HTTP requests
type CalorieHandler struct {
	calories gymbros.CalorieStore
}

// NewCalorieHandler creates a new CalorieHandler
func NewCalorieHandler(calories gymbros.CalorieStore) *CalorieHandler {
	return &CalorieHandler{calories: calories}
}

// RegisterCalorieRoutes registers calorie-related routes
func (h *CalorieHandler) RegisterCalorieRoutes(g *echo.Group) {
	g.POST("/calories", h.CreateEntry)
	g.GET("/calories/today", h.GetTodayEntries)
}

// CreateEntry logs a calorie entry for the authenticated user
func (h *CalorieHandler) CreateEntry(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string) // Get Firebase UID from middleware

	var req models.CreateCalorieEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry := &models.CalorieEntry{
		OwnerID:     firebaseUID,
		Amount:      req.Amount,
		Description: req.Description,
		Macros:      req.Macros,
	}
	if req.Day != nil {
		entry.Day = *req.Day
	}

	if err := h.calories.Create(c.Request().Context(), entry); err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// GetTodayEntries lists the authenticated user's calorie entries for the
// current local day along with the running total
func (h *CalorieHandler) GetTodayEntries(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	start, end := gymbros.DayBounds(time.Now())
	entries, err := h.calories.ListForOwnersBetween(c.Request().Context(), []string{firebaseUID}, start, end)
	if err != nil {
		return domainHTTPError(err)
	}

	total := 0
	for _, entry := range entries {
		total += entry.Amount
	}
	return c.JSON(http.StatusOK, echo.Map{
		"entries": entries,
		"total":   total,
	})
}
