package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"github.com/gymbros-app/backend/pkg/media"
	"github.com/labstack/echo/v4"
)

// maxAvatarBytes caps profile picture uploads at 5 MiB
const maxAvatarBytes = 5 << 20

// UserHandler handles HTTP requests related to user profiles and discovery
type UserHandler struct {
	users     gymbros.UserStore
	discovery *gymbros.Discovery
	uploader  *media.Uploader
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users gymbros.UserStore, discovery *gymbros.Discovery, uploader *media.Uploader) *UserHandler {
	return &UserHandler{users: users, discovery: discovery, uploader: uploader}
}

// RegisterUserRoutes registers profile and discovery routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/users/register", h.Register) // Create profile after first sign-in
	g.GET("/profile", h.GetProfile)       // Get own profile
	g.PUT("/profile", h.UpdateProfile)    // Update own profile
	g.POST("/profile/avatar", h.UploadAvatar)
	g.GET("/users/lookup", h.LookupUser) // Resolve a (name, code) pair
}

// Register creates the profile document for the authenticated user and
// assigns a fresh friend code
func (h *UserHandler) Register(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string) // Get Firebase UID from middleware

	var req models.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.users.GetByID(c.Request().Context(), firebaseUID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Profile already exists")
	} else if !errors.Is(err, gymbros.ErrNotFound) {
		return domainHTTPError(err)
	}

	code, err := h.discovery.GenerateUniqueCode(c.Request().Context())
	if err != nil {
		return domainHTTPError(err)
	}

	user := &models.User{
		ID:          firebaseUID,
		DisplayName: req.DisplayName,
		FriendCode:  code,
		FriendIDs:   []string{},
	}
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	user, err := h.users.GetByID(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.GetByID(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if err := h.users.Update(c.Request().Context(), user); err != nil {
		return domainHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UploadAvatar stores a new profile picture and saves its URL on the user
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	user, err := h.users.GetByID(c.Request().Context(), firebaseUID)
	if err != nil {
		return domainHTTPError(err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}
	if fileHeader.Size > maxAvatarBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}

	url, err := h.uploader.Upload(c.Request().Context(), data, "avatars")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user.PhotoURL = url
	if err := h.users.Update(c.Request().Context(), user); err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"photo_url": url})
}

// LookupUser resolves an exact (name, code) pair to a user. Zero matches is
// not an error; the response carries a null user.
func (h *UserHandler) LookupUser(c echo.Context) error {
	name := c.QueryParam("name")
	code := c.QueryParam("code")

	user, err := h.discovery.ResolveByNameAndCode(c.Request().Context(), name, code)
	if err != nil {
		return domainHTTPError(err)
	}
	if user == nil {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user.ToCompact()})
}
