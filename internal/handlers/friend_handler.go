package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// FriendHandler handles HTTP requests related to the friend graph
type FriendHandler struct {
	graph *gymbros.FriendGraph
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(graph *gymbros.FriendGraph) *FriendHandler {
	return &FriendHandler{graph: graph}
}

// RegisterFriendRoutes registers friendship-related routes
func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.POST("/friends/request", h.SendFriendRequest)
	g.GET("/friends/requests/pending", h.GetPendingFriendRequests)
	g.GET("/friends/requests/sent", h.GetSentFriendRequests)
	g.PUT("/friends/request/:id/status", h.UpdateFriendRequestStatus)
	g.GET("/friends", h.GetFriends)
	g.DELETE("/friends/:id", h.DeleteFriend) // Unfriend
}

// SendFriendRequest handles sending a friend request
func (h *FriendHandler) SendFriendRequest(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string) // Get Firebase UID from middleware

	var req models.SendFriendRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	friendRequest, err := h.graph.SendFriendRequest(c.Request().Context(), firebaseUID, req.RecipientID)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, friendRequest)
}

// GetPendingFriendRequests retrieves pending requests addressed to the
// authenticated user
func (h *FriendHandler) GetPendingFriendRequests(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	requests, err := h.graph.ListPendingIncoming(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GetSentFriendRequests retrieves pending requests the authenticated user has sent
func (h *FriendHandler) GetSentFriendRequests(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	requests, err := h.graph.ListPendingOutgoing(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// UpdateFriendRequestStatus accepts or rejects a friend request
func (h *FriendHandler) UpdateFriendRequestStatus(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	requestID := c.Param("id")

	var req models.UpdateFriendRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	friendRequest, err := h.graph.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return domainHTTPError(err)
	}

	// Ensure the authenticated user is the recipient of the request
	if friendRequest.RecipientID != firebaseUID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this friend request")
	}

	if req.Status == string(models.FriendRequestStatusAccepted) {
		err = h.graph.AcceptFriendRequest(c.Request().Context(), requestID)
	} else {
		err = h.graph.RejectFriendRequest(c.Request().Context(), requestID)
	}
	if err != nil {
		return domainHTTPError(err)
	}

	friendRequest.Status = models.FriendRequestStatus(req.Status)
	return c.JSON(http.StatusOK, friendRequest)
}

// GetFriends retrieves the list of friends for the authenticated user
func (h *FriendHandler) GetFriends(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	friends, err := h.graph.ListFriends(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}

	compact := make([]models.UserCompact, len(friends))
	for i := range friends {
		compact[i] = friends[i].ToCompact()
	}
	return c.JSON(http.StatusOK, compact)
}

// DeleteFriend handles unfriending
func (h *FriendHandler) DeleteFriend(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	friendID := c.Param("id")

	if err := h.graph.RemoveFriend(c.Request().Context(), firebaseUID, friendID); err != nil {
		return domainHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
