package handlers

import (
	"net/http"
	"time"

	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	users gymbros.UserStore
	feed  *gymbros.FeedBuilder
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(users gymbros.UserStore, feed *gymbros.FeedBuilder) *FeedHandler {
	return &FeedHandler{users: users, feed: feed}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns today's ranked activity feed for the caller's friends
func (h *FeedHandler) GetFeed(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string) // Get Firebase UID from middleware

	user, err := h.users.GetByID(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}

	entries, err := h.feed.BuildFeed(c.Request().Context(), user.FriendIDs, time.Now())
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"entries": entries,
		},
	})
}
